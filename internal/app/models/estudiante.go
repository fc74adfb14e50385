package models

import (
	"time"

	"github.com/google/uuid"
)

// Estudiante represents a student enrolled in an academic program.
// A student row is created at most once per documento; every service record
// references it through estudiante_id.
type Estudiante struct {
	ID                uuid.UUID `json:"id"`
	Documento         string    `json:"documento"`
	TipoDocumento     string    `json:"tipo_documento"`
	Nombres           string    `json:"nombres"`
	Apellidos         string    `json:"apellidos"`
	Correo            string    `json:"correo"`
	Telefono          string    `json:"telefono"`
	Direccion         string    `json:"direccion"`
	ProgramaAcademico string    `json:"programa_academico"`
	Semestre          int       `json:"semestre"`
	Estrato           int       `json:"estrato"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

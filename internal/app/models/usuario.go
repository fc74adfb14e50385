package models

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is a staff account of the permanencia program (coordinators,
// docentes). Password hashes never leave the API.
type Usuario struct {
	ID           uuid.UUID `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Rol          string    `json:"rol"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Usuario roles.
const (
	RolAdministrador = "Administrador"
	RolCoordinador   = "Coordinador"
	RolDocente       = "Docente"
)

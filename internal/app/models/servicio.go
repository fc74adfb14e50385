package models

import (
	"time"

	"github.com/google/uuid"
)

// Servicio is a catalog entry for a permanencia support service
// (Psicología, Tutoría, etc.).
type Servicio struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Tipo        string    `json:"tipo"`
	Estado      bool      `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

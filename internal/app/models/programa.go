package models

import (
	"time"

	"github.com/google/uuid"
)

// Programa is a catalog entry for an academic program.
type Programa struct {
	ID        uuid.UUID `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	Facultad  string    `json:"facultad"`
	Nivel     string    `json:"nivel"`
	Modalidad string    `json:"modalidad"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

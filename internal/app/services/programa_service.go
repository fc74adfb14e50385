package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
	"github.com/davidrv/permanencia/internal/pkg/validation"
)

// ProgramaStore is the persistence surface the academic program service needs.
type ProgramaStore interface {
	Create(ctx context.Context, p *models.Programa) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Programa, error)
	GetByCodigo(ctx context.Context, codigo string) (*models.Programa, error)
	GetAll(ctx context.Context) ([]*models.Programa, error)
	GetByFacultad(ctx context.Context, facultad string) ([]*models.Programa, error)
	GetByNivel(ctx context.Context, nivel string) ([]*models.Programa, error)
	GetActivos(ctx context.Context) ([]*models.Programa, error)
	Update(ctx context.Context, p *models.Programa) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProgramaService handles academic program operations.
type ProgramaService struct {
	programas ProgramaStore
}

// NewProgramaService creates a new academic program service instance.
func NewProgramaService(programas ProgramaStore) *ProgramaService {
	return &ProgramaService{programas: programas}
}

// CreatePrograma validates and persists a new academic program. The codigo
// must not be in use.
func (s *ProgramaService) CreatePrograma(ctx context.Context, fields models.FieldMap) (*models.Programa, error) {
	fields = validation.ReglasPrograma.Normalize(fields)
	if result := validation.ReglasPrograma.Validate(fields); !result.Valid() {
		return nil, apperrors.NewValidationError(result)
	}

	codigo := fields.GetString("codigo")
	if _, err := s.programas.GetByCodigo(ctx, codigo); err == nil {
		return nil, apperrors.ErrCodigoAlreadyUsed
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	p := &models.Programa{
		Codigo:    codigo,
		Nombre:    fields.GetString("nombre"),
		Facultad:  fields.GetString("facultad"),
		Nivel:     fields.GetString("nivel"),
		Modalidad: fields.GetString("modalidad"),
		Estado:    fields.GetString("estado"),
	}
	id, err := s.programas.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.programas.GetByID(ctx, id)
}

// GetPrograma returns one academic program by ID.
func (s *ProgramaService) GetPrograma(ctx context.Context, id uuid.UUID) (*models.Programa, error) {
	return s.programas.GetByID(ctx, id)
}

// GetProgramas returns every academic program.
func (s *ProgramaService) GetProgramas(ctx context.Context) ([]*models.Programa, error) {
	return s.programas.GetAll(ctx)
}

// GetProgramasByFacultad returns the programs of one faculty.
func (s *ProgramaService) GetProgramasByFacultad(ctx context.Context, facultad string) ([]*models.Programa, error) {
	return s.programas.GetByFacultad(ctx, facultad)
}

// GetProgramasByNivel returns the programs of one academic level.
func (s *ProgramaService) GetProgramasByNivel(ctx context.Context, nivel string) ([]*models.Programa, error) {
	return s.programas.GetByNivel(ctx, nivel)
}

// GetProgramasActivos returns the programs currently marked Activo.
func (s *ProgramaService) GetProgramasActivos(ctx context.Context) ([]*models.Programa, error) {
	return s.programas.GetActivos(ctx)
}

// UpdatePrograma applies the present fields to an existing program.
func (s *ProgramaService) UpdatePrograma(ctx context.Context, id uuid.UUID, fields models.FieldMap) (*models.Programa, error) {
	if result := validation.ReglasPrograma.ValidatePartial(fields); !result.Valid() {
		return nil, apperrors.NewValidationError(result)
	}

	p, err := s.programas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Has("codigo") && fields.GetString("codigo") != p.Codigo {
		if _, err := s.programas.GetByCodigo(ctx, fields.GetString("codigo")); err == nil {
			return nil, apperrors.ErrCodigoAlreadyUsed
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		p.Codigo = fields.GetString("codigo")
	}
	if fields.Has("nombre") {
		p.Nombre = fields.GetString("nombre")
	}
	if fields.Has("facultad") {
		p.Facultad = fields.GetString("facultad")
	}
	if fields.Has("nivel") {
		p.Nivel = fields.GetString("nivel")
	}
	if fields.Has("modalidad") {
		p.Modalidad = fields.GetString("modalidad")
	}
	if fields.Has("estado") {
		p.Estado = fields.GetString("estado")
	}

	if err := s.programas.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.programas.GetByID(ctx, id)
}

// DeletePrograma removes an academic program.
func (s *ProgramaService) DeletePrograma(ctx context.Context, id uuid.UUID) error {
	return s.programas.Delete(ctx, id)
}

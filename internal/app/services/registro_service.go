package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
	"github.com/davidrv/permanencia/internal/pkg/logger"
	"github.com/davidrv/permanencia/internal/pkg/validation"
)

// RegistroStore is the persistence surface shared by every service-record
// table.
type RegistroStore interface {
	Tabla() string
	GetAll(ctx context.Context) ([]models.FieldMap, error)
	GetAllConEstudiante(ctx context.Context) ([]models.FieldMap, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.FieldMap, error)
	GetByEstudiante(ctx context.Context, estudianteID uuid.UUID) ([]models.FieldMap, error)
	Create(ctx context.Context, fields models.FieldMap) (models.FieldMap, error)
	Update(ctx context.Context, id uuid.UUID, fields models.FieldMap) (models.FieldMap, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// RegistroService runs the shared pipeline of every permanencia record flow:
// normalize the incoming fields, validate them against the table's ruleset,
// attach the student, persist. The attention flows (tutorías, asesorías,
// orientaciones, comedores, apoyos, talleres, seguimientos) resolve the
// student by documento and register them on first contact; the reference
// flows (remisiones, asistencias, actas, intervenciones grupales) only link
// an already known student and accept records without one.
type RegistroService struct {
	registros   RegistroStore
	estudiantes *EstudianteService
	reglas      *validation.Ruleset
	resuelve    bool
	decorar     func(models.FieldMap)
}

// WithDecorador registers a hook applied to every record read back from the
// store. The actas flow uses it to derive the full signing date from its
// day, month and year parts.
func (s *RegistroService) WithDecorador(fn func(models.FieldMap)) *RegistroService {
	s.decorar = fn
	return s
}

func (s *RegistroService) decorado(record models.FieldMap) models.FieldMap {
	if s.decorar != nil && record != nil {
		s.decorar(record)
	}
	return record
}

// NewRegistroAtencionService builds the service for an attention flow whose
// payload embeds the student identity fields.
func NewRegistroAtencionService(registros RegistroStore, estudiantes *EstudianteService, reglas *validation.Ruleset) *RegistroService {
	return &RegistroService{
		registros:   registros,
		estudiantes: estudiantes,
		reglas:      reglas,
		resuelve:    true,
	}
}

// NewRegistroReferenciaService builds the service for a flow that references
// a student by numero_documento without registering new ones.
func NewRegistroReferenciaService(registros RegistroStore, estudiantes *EstudianteService, reglas *validation.Ruleset) *RegistroService {
	return &RegistroService{
		registros:   registros,
		estudiantes: estudiantes,
		reglas:      reglas,
		resuelve:    false,
	}
}

// Crear validates the incoming fields and persists a new record. Validation
// runs to completion before anything is written; an invalid payload leaves
// both the record table and the student table untouched.
func (s *RegistroService) Crear(ctx context.Context, fields models.FieldMap) (models.FieldMap, error) {
	fields = s.reglas.Normalize(fields)
	if result := s.reglas.Validate(fields); !result.Valid() {
		return nil, apperrors.NewValidationError(result)
	}

	record := fields.Copy()
	if s.resuelve {
		estudianteID, err := s.estudiantes.Resolver(ctx, fields)
		if err != nil {
			return nil, err
		}
		record["estudiante_id"] = estudianteID
	} else if documento := fields.GetString("numero_documento"); documento != "" {
		e, err := s.estudiantes.GetEstudianteByDocumento(ctx, documento)
		switch {
		case err == nil:
			record["estudiante_id"] = e.ID
		case errors.Is(err, apperrors.ErrNotFound):
			// Kept without a link; the record still documents the attention.
			logger.Debug().Str("tabla", s.registros.Tabla()).Str("documento", documento).Msg("Registro sin estudiante vinculado")
		default:
			return nil, err
		}
	}

	created, err := s.registros.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.decorado(created), nil
}

// Listar returns every record with its linked student embedded.
func (s *RegistroService) Listar(ctx context.Context) ([]models.FieldMap, error) {
	records, err := s.registros.GetAllConEstudiante(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		s.decorado(record)
	}
	return records, nil
}

// Obtener returns one record.
func (s *RegistroService) Obtener(ctx context.Context, id uuid.UUID) (models.FieldMap, error) {
	record, err := s.registros.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorado(record), nil
}

// PorEstudiante returns the records linked to one student.
func (s *RegistroService) PorEstudiante(ctx context.Context, estudianteID uuid.UUID) ([]models.FieldMap, error) {
	if _, err := s.estudiantes.GetEstudiante(ctx, estudianteID); err != nil {
		return nil, err
	}
	return s.registros.GetByEstudiante(ctx, estudianteID)
}

// Actualizar validates only the fields present in the payload and applies
// them to an existing record.
func (s *RegistroService) Actualizar(ctx context.Context, id uuid.UUID, fields models.FieldMap) (models.FieldMap, error) {
	fields = s.reglas.Coerce(fields)
	if result := s.reglas.ValidatePartial(fields); !result.Valid() {
		return nil, apperrors.NewValidationError(result)
	}
	updated, err := s.registros.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.decorado(updated), nil
}

// Eliminar removes a record.
func (s *RegistroService) Eliminar(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.registros.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrRegistroNotFound
	}
	return nil
}

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

// EstudianteStore is the persistence surface the student service needs.
type EstudianteStore interface {
	Create(ctx context.Context, e *models.Estudiante) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Estudiante, error)
	GetByDocumento(ctx context.Context, documento string) (*models.Estudiante, error)
	GetAll(ctx context.Context) ([]*models.Estudiante, error)
	GetByPrograma(ctx context.Context, programa string) ([]*models.Estudiante, error)
	Update(ctx context.Context, e *models.Estudiante) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EstudianteService handles student operations, including the find-or-create
// resolution the permanencia record flows depend on.
type EstudianteService struct {
	estudiantes EstudianteStore
}

// NewEstudianteService creates a new student service instance.
func NewEstudianteService(estudiantes EstudianteStore) *EstudianteService {
	return &EstudianteService{estudiantes: estudiantes}
}

// CreateEstudiante validates the incoming fields and persists a new student.
func (s *EstudianteService) CreateEstudiante(ctx context.Context, fields models.FieldMap) (*models.Estudiante, error) {
	fields = validation.ReglasEstudiante.Normalize(fields)
	if result := validation.ReglasEstudiante.Validate(fields); !result.Valid() {
		return nil, apperrors.NewValidationError(result)
	}

	e := estudianteFromFields(fields)
	id, err := s.estudiantes.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	return s.estudiantes.GetByID(ctx, id)
}

// GetEstudiante returns one student by ID.
func (s *EstudianteService) GetEstudiante(ctx context.Context, id uuid.UUID) (*models.Estudiante, error) {
	return s.estudiantes.GetByID(ctx, id)
}

// GetEstudianteByDocumento returns one student by identity document.
func (s *EstudianteService) GetEstudianteByDocumento(ctx context.Context, documento string) (*models.Estudiante, error) {
	return s.estudiantes.GetByDocumento(ctx, documento)
}

// GetEstudiantes returns every registered student.
func (s *EstudianteService) GetEstudiantes(ctx context.Context) ([]*models.Estudiante, error) {
	return s.estudiantes.GetAll(ctx)
}

// GetEstudiantesByPrograma returns the students enrolled in one academic program.
func (s *EstudianteService) GetEstudiantesByPrograma(ctx context.Context, programa string) ([]*models.Estudiante, error) {
	return s.estudiantes.GetByPrograma(ctx, programa)
}

// UpdateEstudiante applies the present fields to an existing student after
// validating only those fields.
func (s *EstudianteService) UpdateEstudiante(ctx context.Context, id uuid.UUID, fields models.FieldMap) (*models.Estudiante, error) {
	fields = validation.ReglasEstudiante.Coerce(fields)
	if result := validation.ReglasEstudiante.ValidatePartial(fields); !result.Valid() {
		return nil, apperrors.NewValidationError(result)
	}

	e, err := s.estudiantes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyEstudianteFields(e, fields)
	if err := s.estudiantes.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.estudiantes.GetByID(ctx, id)
}

// DeleteEstudiante removes a student. Students referenced by permanencia
// records are kept and the conflict is surfaced to the caller.
func (s *EstudianteService) DeleteEstudiante(ctx context.Context, id uuid.UUID) error {
	return s.estudiantes.Delete(ctx, id)
}

// Resolver finds the student identified by the documento in the incoming
// fields, creating one when missing. Existing student data wins over the
// incoming fields; no reconciliation is attempted.
func (s *EstudianteService) Resolver(ctx context.Context, fields models.FieldMap) (uuid.UUID, error) {
	documento := documentoFrom(fields)
	if documento == "" {
		return uuid.Nil, apperrors.NewFieldError("numero_documento", "El documento es obligatorio")
	}
	// The full identity must arrive before any lookup; resolving an existing
	// student with an incomplete payload is still an error.
	for _, campo := range []string{"tipo_documento", "nombres", "apellidos", "correo", "programa_academico", "semestre"} {
		if !fields.Has(campo) {
			return uuid.Nil, apperrors.NewFieldError(campo, "El campo "+campo+" es obligatorio para registrar al estudiante")
		}
	}

	existing, err := s.estudiantes.GetByDocumento(ctx, documento)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return uuid.Nil, err
	}

	e := estudianteFromFields(fields)
	id, err := s.estudiantes.Create(ctx, e)
	if errors.Is(err, apperrors.ErrDocumentoAlreadyUsed) {
		// Someone registered the same documento concurrently; their row wins.
		created, readErr := s.estudiantes.GetByDocumento(ctx, documento)
		if readErr != nil {
			return uuid.Nil, readErr
		}
		return created.ID, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	logger.Info().Str("documento", documento).Str("id", id.String()).Msg("Estudiante registrado durante la atención")
	return id, nil
}

// documentoFrom reads the identity document from either of its payload
// spellings. The estudiante endpoints send "documento"; the service-record
// payloads send "numero_documento".
func documentoFrom(fields models.FieldMap) string {
	if documento := fields.GetString("documento"); documento != "" {
		return documento
	}
	return fields.GetString("numero_documento")
}

func estudianteFromFields(fields models.FieldMap) *models.Estudiante {
	// Presence of semestre and tipo_documento is already enforced by the
	// rulesets and the resolver preconditions; nothing is defaulted here.
	semestre, ok := validation.AsInt(fields.Get("semestre"))
	if !ok {
		if f, fok := validation.AsFloat(fields.Get("semestre")); fok {
			semestre = int(f)
		}
	}
	estrato, ok := validation.AsInt(fields.Get("estrato"))
	if !ok {
		estrato = 1
	}
	return &models.Estudiante{
		Documento:         documentoFrom(fields),
		TipoDocumento:     fields.GetString("tipo_documento"),
		Nombres:           fields.GetString("nombres"),
		Apellidos:         fields.GetString("apellidos"),
		Correo:            fields.GetString("correo"),
		Telefono:          fields.GetString("telefono"),
		Direccion:         fields.GetString("direccion"),
		ProgramaAcademico: fields.GetString("programa_academico"),
		Semestre:          semestre,
		Estrato:           estrato,
	}
}

func applyEstudianteFields(e *models.Estudiante, fields models.FieldMap) {
	if fields.Has("documento") {
		e.Documento = fields.GetString("documento")
	}
	if fields.Has("tipo_documento") {
		e.TipoDocumento = fields.GetString("tipo_documento")
	}
	if fields.Has("nombres") {
		e.Nombres = fields.GetString("nombres")
	}
	if fields.Has("apellidos") {
		e.Apellidos = fields.GetString("apellidos")
	}
	if fields.Has("correo") {
		e.Correo = fields.GetString("correo")
	}
	if fields.Has("telefono") {
		e.Telefono = fields.GetString("telefono")
	}
	if fields.Has("direccion") {
		e.Direccion = fields.GetString("direccion")
	}
	if fields.Has("programa_academico") {
		e.ProgramaAcademico = fields.GetString("programa_academico")
	}
	if v, ok := validation.AsInt(fields.Get("semestre")); ok {
		e.Semestre = v
	}
	if v, ok := validation.AsInt(fields.Get("estrato")); ok {
		e.Estrato = v
	}
}

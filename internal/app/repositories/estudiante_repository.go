package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
	"github.com/davidrv/permanencia/internal/pkg/logger"
)

var estudianteColumns = []string{
	"id", "documento", "tipo_documento", "nombres", "apellidos", "correo",
	"telefono", "direccion", "programa_academico", "semestre", "estrato",
	"created_at", "updated_at",
}

// EstudianteRepository handles estudiante database operations.
type EstudianteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEstudianteRepository creates a new EstudianteRepository.
func NewEstudianteRepository(db *pgxpool.Pool) *EstudianteRepository {
	return &EstudianteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEstudiante(row pgx.Row) (*models.Estudiante, error) {
	e := &models.Estudiante{}
	err := row.Scan(
		&e.ID, &e.Documento, &e.TipoDocumento, &e.Nombres, &e.Apellidos,
		&e.Correo, &e.Telefono, &e.Direccion, &e.ProgramaAcademico,
		&e.Semestre, &e.Estrato, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new estudiante and returns its generated id. The unique
// index on documento is the backstop against concurrent duplicate creation.
func (r *EstudianteRepository) Create(ctx context.Context, e *models.Estudiante) (uuid.UUID, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("estudiantes").
		Columns("documento", "tipo_documento", "nombres", "apellidos", "correo",
			"telefono", "direccion", "programa_academico", "semestre", "estrato",
			"created_at", "updated_at").
		Values(e.Documento, e.TipoDocumento, e.Nombres, e.Apellidos, e.Correo,
			e.Telefono, e.Direccion, e.ProgramaAcademico, e.Semestre, e.Estrato,
			now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create estudiante query: %w", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return uuid.Nil, apperrors.ErrDocumentoAlreadyUsed
		}
		logger.Error().Err(err).Str("documento", e.Documento).Msg("Error executing create estudiante query")
		return uuid.Nil, fmt.Errorf("error creating estudiante: %w", err)
	}

	return id, nil
}

// GetByID retrieves an estudiante by id.
func (r *EstudianteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Estudiante, error) {
	sql, args, err := r.sb.Select(estudianteColumns...).
		From("estudiantes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get estudiante query: %w", err)
	}

	e, err := scanEstudiante(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstudianteNotFound
		}
		logger.Error().Err(err).Str("estudianteID", id.String()).Msg("Error scanning estudiante row")
		return nil, fmt.Errorf("error getting estudiante by id: %w", err)
	}
	return e, nil
}

// GetByDocumento retrieves an estudiante by exact documento match.
func (r *EstudianteRepository) GetByDocumento(ctx context.Context, documento string) (*models.Estudiante, error) {
	sql, args, err := r.sb.Select(estudianteColumns...).
		From("estudiantes").
		Where(squirrel.Eq{"documento": documento}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get estudiante by documento query: %w", err)
	}

	e, err := scanEstudiante(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstudianteNotFound
		}
		logger.Error().Err(err).Str("documento", documento).Msg("Error scanning estudiante row")
		return nil, fmt.Errorf("error getting estudiante by documento: %w", err)
	}
	return e, nil
}

// GetAll retrieves every estudiante ordered by apellidos.
func (r *EstudianteRepository) GetAll(ctx context.Context) ([]*models.Estudiante, error) {
	return r.list(ctx, nil)
}

// GetByPrograma retrieves the estudiantes of one academic program.
func (r *EstudianteRepository) GetByPrograma(ctx context.Context, programa string) ([]*models.Estudiante, error) {
	return r.list(ctx, squirrel.Eq{"programa_academico": programa})
}

func (r *EstudianteRepository) list(ctx context.Context, where any) ([]*models.Estudiante, error) {
	q := r.sb.Select(estudianteColumns...).
		From("estudiantes").
		OrderBy("apellidos ASC", "nombres ASC")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list estudiantes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list estudiantes query")
		return nil, fmt.Errorf("error querying estudiantes: %w", err)
	}
	defer rows.Close()

	estudiantes := []*models.Estudiante{}
	for rows.Next() {
		e, err := scanEstudiante(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning estudiante row: %w", err)
		}
		estudiantes = append(estudiantes, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estudiante rows: %w", err)
	}
	return estudiantes, nil
}

// Update overwrites the mutable fields of an estudiante.
func (r *EstudianteRepository) Update(ctx context.Context, e *models.Estudiante) error {
	sql, args, err := r.sb.Update("estudiantes").
		SetMap(map[string]interface{}{
			"documento":          e.Documento,
			"tipo_documento":     e.TipoDocumento,
			"nombres":            e.Nombres,
			"apellidos":          e.Apellidos,
			"correo":             e.Correo,
			"telefono":           e.Telefono,
			"direccion":          e.Direccion,
			"programa_academico": e.ProgramaAcademico,
			"semestre":           e.Semestre,
			"estrato":            e.Estrato,
			"updated_at":         time.Now(),
		}).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update estudiante query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrDocumentoAlreadyUsed
		}
		logger.Error().Err(err).Str("estudianteID", e.ID.String()).Msg("Error executing update estudiante query")
		return fmt.Errorf("error updating estudiante: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEstudianteNotFound
	}
	return nil
}

// Count returns the number of registered estudiantes.
func (r *EstudianteRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("estudiantes").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count estudiantes query: %w", err)
	}
	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting estudiantes: %w", err)
	}
	return count, nil
}

// CountByPrograma returns the number of estudiantes per academic program.
func (r *EstudianteRepository) CountByPrograma(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("programa_academico", "COUNT(*)").
		From("estudiantes").
		GroupBy("programa_academico").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count by programa query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting estudiantes by programa: %w", err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var programa string
		var count int64
		if err := rows.Scan(&programa, &count); err != nil {
			return nil, fmt.Errorf("error scanning programa count: %w", err)
		}
		out[programa] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating programa counts: %w", err)
	}
	return out, nil
}

// Delete removes an estudiante. Service records keep plain FKs without
// cascade, so deleting a referenced student fails with a conflict.
func (r *EstudianteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("estudiantes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete estudiante query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrEstudianteHasRecords
		}
		logger.Error().Err(err).Str("estudianteID", id.String()).Msg("Error executing delete estudiante query")
		return fmt.Errorf("error deleting estudiante: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEstudianteNotFound
	}
	return nil
}

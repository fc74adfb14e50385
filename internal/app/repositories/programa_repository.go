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

var programaColumns = []string{
	"id", "codigo", "nombre", "facultad", "nivel", "modalidad", "estado",
	"created_at", "updated_at",
}

// ProgramaRepository handles programa catalog database operations.
type ProgramaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramaRepository creates a new ProgramaRepository.
func NewProgramaRepository(db *pgxpool.Pool) *ProgramaRepository {
	return &ProgramaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPrograma(row pgx.Row) (*models.Programa, error) {
	p := &models.Programa{}
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Facultad, &p.Nivel, &p.Modalidad,
		&p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new programa. The unique index on codigo rejects
// duplicates regardless of any prior existence check.
func (r *ProgramaRepository) Create(ctx context.Context, p *models.Programa) (uuid.UUID, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("programas").
		Columns("codigo", "nombre", "facultad", "nivel", "modalidad", "estado",
			"created_at", "updated_at").
		Values(p.Codigo, p.Nombre, p.Facultad, p.Nivel, p.Modalidad, p.Estado, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create programa query: %w", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return uuid.Nil, apperrors.ErrCodigoAlreadyUsed
		}
		logger.Error().Err(err).Str("codigo", p.Codigo).Msg("Error executing create programa query")
		return uuid.Nil, fmt.Errorf("error creating programa: %w", err)
	}
	return id, nil
}

// GetByID retrieves a programa by id.
func (r *ProgramaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Programa, error) {
	sql, args, err := r.sb.Select(programaColumns...).
		From("programas").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get programa query: %w", err)
	}

	p, err := scanPrograma(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramaNotFound
		}
		logger.Error().Err(err).Str("programaID", id.String()).Msg("Error scanning programa row")
		return nil, fmt.Errorf("error getting programa by id: %w", err)
	}
	return p, nil
}

// GetByCodigo retrieves a programa by its unique code.
func (r *ProgramaRepository) GetByCodigo(ctx context.Context, codigo string) (*models.Programa, error) {
	sql, args, err := r.sb.Select(programaColumns...).
		From("programas").
		Where(squirrel.Eq{"codigo": codigo}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get programa by codigo query: %w", err)
	}

	p, err := scanPrograma(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramaNotFound
		}
		return nil, fmt.Errorf("error getting programa by codigo: %w", err)
	}
	return p, nil
}

// GetAll retrieves every programa.
func (r *ProgramaRepository) GetAll(ctx context.Context) ([]*models.Programa, error) {
	return r.list(ctx, nil)
}

// GetByFacultad retrieves the programas of one faculty.
func (r *ProgramaRepository) GetByFacultad(ctx context.Context, facultad string) ([]*models.Programa, error) {
	return r.list(ctx, squirrel.Eq{"facultad": facultad})
}

// GetByNivel retrieves the programas of one academic level.
func (r *ProgramaRepository) GetByNivel(ctx context.Context, nivel string) ([]*models.Programa, error) {
	return r.list(ctx, squirrel.Eq{"nivel": nivel})
}

// GetActivos retrieves the active programas.
func (r *ProgramaRepository) GetActivos(ctx context.Context) ([]*models.Programa, error) {
	return r.list(ctx, squirrel.Eq{"estado": "Activo"})
}

func (r *ProgramaRepository) list(ctx context.Context, where any) ([]*models.Programa, error) {
	q := r.sb.Select(programaColumns...).
		From("programas").
		OrderBy("nombre ASC")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list programas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programas query")
		return nil, fmt.Errorf("error querying programas: %w", err)
	}
	defer rows.Close()

	programas := []*models.Programa{}
	for rows.Next() {
		p, err := scanPrograma(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning programa row: %w", err)
		}
		programas = append(programas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating programa rows: %w", err)
	}
	return programas, nil
}

// Update overwrites a programa's fields.
func (r *ProgramaRepository) Update(ctx context.Context, p *models.Programa) error {
	sql, args, err := r.sb.Update("programas").
		SetMap(map[string]interface{}{
			"codigo":     p.Codigo,
			"nombre":     p.Nombre,
			"facultad":   p.Facultad,
			"nivel":      p.Nivel,
			"modalidad":  p.Modalidad,
			"estado":     p.Estado,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update programa query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrCodigoAlreadyUsed
		}
		logger.Error().Err(err).Str("programaID", p.ID.String()).Msg("Error executing update programa query")
		return fmt.Errorf("error updating programa: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramaNotFound
	}
	return nil
}

// Delete removes a programa by id.
func (r *ProgramaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("programas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete programa query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programaID", id.String()).Msg("Error executing delete programa query")
		return fmt.Errorf("error deleting programa: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramaNotFound
	}
	return nil
}

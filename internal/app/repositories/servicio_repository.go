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

var servicioColumns = []string{
	"id", "nombre", "descripcion", "tipo", "estado", "created_at", "updated_at",
}

// ServicioRepository handles the support service catalog.
type ServicioRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewServicioRepository creates a new ServicioRepository.
func NewServicioRepository(db *pgxpool.Pool) *ServicioRepository {
	return &ServicioRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanServicio(row pgx.Row) (*models.Servicio, error) {
	s := &models.Servicio{}
	err := row.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.Tipo, &s.Estado, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new servicio and returns its generated id.
func (r *ServicioRepository) Create(ctx context.Context, s *models.Servicio) (uuid.UUID, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("servicios").
		Columns("nombre", "descripcion", "tipo", "estado", "created_at", "updated_at").
		Values(s.Nombre, s.Descripcion, s.Tipo, s.Estado, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create servicio query: %w", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("nombre", s.Nombre).Msg("Error executing create servicio query")
		return uuid.Nil, fmt.Errorf("error creating servicio: %w", err)
	}
	return id, nil
}

// GetByID retrieves a servicio by id.
func (r *ServicioRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Servicio, error) {
	sql, args, err := r.sb.Select(servicioColumns...).
		From("servicios").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get servicio query: %w", err)
	}

	s, err := scanServicio(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrServicioNotFound
		}
		return nil, fmt.Errorf("error getting servicio by id: %w", err)
	}
	return s, nil
}

// GetAll retrieves every servicio.
func (r *ServicioRepository) GetAll(ctx context.Context) ([]*models.Servicio, error) {
	return r.list(ctx, nil)
}

// GetByTipo retrieves servicios of one type.
func (r *ServicioRepository) GetByTipo(ctx context.Context, tipo string) ([]*models.Servicio, error) {
	return r.list(ctx, squirrel.Eq{"tipo": tipo})
}

// GetActivos retrieves the active servicios.
func (r *ServicioRepository) GetActivos(ctx context.Context) ([]*models.Servicio, error) {
	return r.list(ctx, squirrel.Eq{"estado": true})
}

func (r *ServicioRepository) list(ctx context.Context, where any) ([]*models.Servicio, error) {
	q := r.sb.Select(servicioColumns...).
		From("servicios").
		OrderBy("nombre ASC")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list servicios query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list servicios query")
		return nil, fmt.Errorf("error querying servicios: %w", err)
	}
	defer rows.Close()

	servicios := []*models.Servicio{}
	for rows.Next() {
		s, err := scanServicio(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning servicio row: %w", err)
		}
		servicios = append(servicios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating servicio rows: %w", err)
	}
	return servicios, nil
}

// Update overwrites a servicio's fields.
func (r *ServicioRepository) Update(ctx context.Context, s *models.Servicio) error {
	sql, args, err := r.sb.Update("servicios").
		SetMap(map[string]interface{}{
			"nombre":      s.Nombre,
			"descripcion": s.Descripcion,
			"tipo":        s.Tipo,
			"estado":      s.Estado,
			"updated_at":  time.Now(),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update servicio query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("servicioID", s.ID.String()).Msg("Error executing update servicio query")
		return fmt.Errorf("error updating servicio: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrServicioNotFound
	}
	return nil
}

// Delete removes a servicio by id.
func (r *ServicioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("servicios").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete servicio query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("servicioID", id.String()).Msg("Error executing delete servicio query")
		return fmt.Errorf("error deleting servicio: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrServicioNotFound
	}
	return nil
}

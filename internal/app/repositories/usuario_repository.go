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

var usuarioColumns = []string{
	"id", "nombre", "email", "password_hash", "rol", "activo",
	"created_at", "updated_at",
}

// UsuarioRepository handles staff account database operations.
type UsuarioRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUsuarioRepository creates a new UsuarioRepository.
func NewUsuarioRepository(db *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUsuario(row pgx.Row) (*models.Usuario, error) {
	u := &models.Usuario{}
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new usuario. Email is unique.
func (r *UsuarioRepository) Create(ctx context.Context, u *models.Usuario) (uuid.UUID, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("usuarios").
		Columns("nombre", "email", "password_hash", "rol", "activo", "created_at", "updated_at").
		Values(u.Nombre, u.Email, u.PasswordHash, u.Rol, u.Activo, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create usuario query: %w", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return uuid.Nil, apperrors.ErrEmailAlreadyUsed
		}
		logger.Error().Err(err).Str("email", u.Email).Msg("Error executing create usuario query")
		return uuid.Nil, fmt.Errorf("error creating usuario: %w", err)
	}
	return id, nil
}

// GetByID retrieves a usuario by id.
func (r *UsuarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Usuario, error) {
	sql, args, err := r.sb.Select(usuarioColumns...).
		From("usuarios").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get usuario query: %w", err)
	}

	u, err := scanUsuario(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("error getting usuario by id: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a usuario by email.
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	sql, args, err := r.sb.Select(usuarioColumns...).
		From("usuarios").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get usuario by email query: %w", err)
	}

	u, err := scanUsuario(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("error getting usuario by email: %w", err)
	}
	return u, nil
}

// GetAll retrieves every usuario.
func (r *UsuarioRepository) GetAll(ctx context.Context) ([]*models.Usuario, error) {
	sql, args, err := r.sb.Select(usuarioColumns...).
		From("usuarios").
		OrderBy("nombre ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list usuarios query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list usuarios query")
		return nil, fmt.Errorf("error querying usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := []*models.Usuario{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning usuario row: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usuario rows: %w", err)
	}
	return usuarios, nil
}

// Update overwrites a usuario's fields.
func (r *UsuarioRepository) Update(ctx context.Context, u *models.Usuario) error {
	sql, args, err := r.sb.Update("usuarios").
		SetMap(map[string]interface{}{
			"nombre":        u.Nombre,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"rol":           u.Rol,
			"activo":        u.Activo,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update usuario query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyUsed
		}
		logger.Error().Err(err).Str("usuarioID", u.ID.String()).Msg("Error executing update usuario query")
		return fmt.Errorf("error updating usuario: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUsuarioNotFound
	}
	return nil
}

// Delete removes a usuario by id.
func (r *UsuarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("usuarios").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete usuario query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("usuarioID", id.String()).Msg("Error executing delete usuario query")
		return fmt.Errorf("error deleting usuario: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUsuarioNotFound
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/repositories"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
)

// UsuarioService handles the staff accounts of the permanencia team.
type UsuarioService struct {
	usuarios *repositories.UsuarioRepository
}

// NewUsuarioService creates a new staff account service instance.
func NewUsuarioService(usuarios *repositories.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarios: usuarios}
}

// CreateUsuario registers a staff account. The password is stored as a
// bcrypt hash and never leaves the service.
func (s *UsuarioService) CreateUsuario(ctx context.Context, req *dto.CreateUsuarioRequest) (*models.Usuario, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.usuarios.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyUsed
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u := &models.Usuario{
		Nombre:       req.Nombre,
		Email:        email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	id, err := s.usuarios.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return s.usuarios.GetByID(ctx, id)
}

// GetUsuario returns one staff account by ID.
func (s *UsuarioService) GetUsuario(ctx context.Context, id uuid.UUID) (*models.Usuario, error) {
	return s.usuarios.GetByID(ctx, id)
}

// GetUsuarios returns every staff account.
func (s *UsuarioService) GetUsuarios(ctx context.Context) ([]*models.Usuario, error) {
	return s.usuarios.GetAll(ctx)
}

// UpdateUsuario applies the present fields to an existing staff account.
func (s *UsuarioService) UpdateUsuario(ctx context.Context, id uuid.UUID, req *dto.UpdateUsuarioRequest) (*models.Usuario, error) {
	u, err := s.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != u.Email {
			if _, err := s.usuarios.GetByEmail(ctx, email); err == nil {
				return nil, apperrors.ErrEmailAlreadyUsed
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			u.Email = email
		}
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		u.Rol = *req.Rol
	}
	if req.Activo != nil {
		u.Activo = *req.Activo
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.usuarios.Update(ctx, u); err != nil {
		return nil, err
	}
	return s.usuarios.GetByID(ctx, id)
}

// DeleteUsuario removes a staff account.
func (s *UsuarioService) DeleteUsuario(ctx context.Context, id uuid.UUID) error {
	return s.usuarios.Delete(ctx, id)
}

// VerifyPassword reports whether the given plain-text password matches the
// stored hash of the account.
func (s *UsuarioService) VerifyPassword(u *models.Usuario, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

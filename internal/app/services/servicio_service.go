package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/repositories"
)

// ServicioService handles the catalog of institutional support services.
type ServicioService struct {
	servicios *repositories.ServicioRepository
}

// NewServicioService creates a new service catalog instance.
func NewServicioService(servicios *repositories.ServicioRepository) *ServicioService {
	return &ServicioService{servicios: servicios}
}

// CreateServicio persists a new catalog entry.
func (s *ServicioService) CreateServicio(ctx context.Context, req *dto.CreateServicioRequest) (*models.Servicio, error) {
	servicio := &models.Servicio{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Tipo:        req.Tipo,
		Estado:      true,
	}
	if req.Estado != nil {
		servicio.Estado = *req.Estado
	}
	id, err := s.servicios.Create(ctx, servicio)
	if err != nil {
		return nil, err
	}
	return s.servicios.GetByID(ctx, id)
}

// GetServicio returns one catalog entry by ID.
func (s *ServicioService) GetServicio(ctx context.Context, id uuid.UUID) (*models.Servicio, error) {
	return s.servicios.GetByID(ctx, id)
}

// GetServicios returns the full catalog.
func (s *ServicioService) GetServicios(ctx context.Context) ([]*models.Servicio, error) {
	return s.servicios.GetAll(ctx)
}

// GetServiciosByTipo returns the catalog entries of one type.
func (s *ServicioService) GetServiciosByTipo(ctx context.Context, tipo string) ([]*models.Servicio, error) {
	return s.servicios.GetByTipo(ctx, tipo)
}

// GetServiciosActivos returns the catalog entries currently enabled.
func (s *ServicioService) GetServiciosActivos(ctx context.Context) ([]*models.Servicio, error) {
	return s.servicios.GetActivos(ctx)
}

// UpdateServicio applies the present fields to an existing catalog entry.
func (s *ServicioService) UpdateServicio(ctx context.Context, id uuid.UUID, req *dto.UpdateServicioRequest) (*models.Servicio, error) {
	servicio, err := s.servicios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		servicio.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		servicio.Descripcion = *req.Descripcion
	}
	if req.Tipo != nil {
		servicio.Tipo = *req.Tipo
	}
	if req.Estado != nil {
		servicio.Estado = *req.Estado
	}
	if err := s.servicios.Update(ctx, servicio); err != nil {
		return nil, err
	}
	return s.servicios.GetByID(ctx, id)
}

// DeleteServicio removes a catalog entry.
func (s *ServicioService) DeleteServicio(ctx context.Context, id uuid.UUID) error {
	return s.servicios.Delete(ctx, id)
}

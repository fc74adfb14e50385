package services

import (
	"context"

	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/app/repositories"
)

// EstadisticasService aggregates record counts across the permanencia tables
// for the program dashboard.
type EstadisticasService struct {
	repos *repositories.Repositories
}

// NewEstadisticasService creates a new statistics service instance.
func NewEstadisticasService(repos *repositories.Repositories) *EstadisticasService {
	return &EstadisticasService{repos: repos}
}

// GetEstadisticas returns the total registered students, the record count of
// each service table, and the grand total of attentions.
func (s *EstadisticasService) GetEstadisticas(ctx context.Context) (models.FieldMap, error) {
	totalEstudiantes, err := s.repos.EstudianteRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	tablas := []*repositories.RegistroRepository{
		s.repos.TutoriaRepository,
		s.repos.AsesoriaRepository,
		s.repos.OrientacionRepository,
		s.repos.ComedorRepository,
		s.repos.ApoyoRepository,
		s.repos.TallerRepository,
		s.repos.SeguimientoRepository,
		s.repos.IntervencionRepository,
		s.repos.RemisionRepository,
		s.repos.AsistenciaRepository,
		s.repos.ActaRepository,
	}

	servicios := models.FieldMap{}
	var totalRegistros int64
	for _, repo := range tablas {
		count, err := repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		servicios[repo.Tabla()] = count
		totalRegistros += count
	}

	porPrograma, err := s.repos.EstudianteRepository.CountByPrograma(ctx)
	if err != nil {
		return nil, err
	}
	porNivelRiesgo, err := s.repos.TutoriaRepository.CountByField(ctx, "nivel_riesgo")
	if err != nil {
		return nil, err
	}

	return models.FieldMap{
		"total_estudiantes":        totalEstudiantes,
		"total_registros":          totalRegistros,
		"servicios":                servicios,
		"estudiantes_por_programa": porPrograma,
		"niveles_riesgo":           porNivelRiesgo,
	}, nil
}

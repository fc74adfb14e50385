package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/app/repositories"
	"github.com/davidrv/permanencia/internal/config"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
)

// programaSeed maps each catalog program to its code and faculty.
type programaSeed struct {
	codigo   string
	nombre   string
	facultad string
}

var programas = []programaSeed{
	{"ADE-001", "ADMINISTRACIÓN DE EMPRESAS", "Facultad Ciencias Administrativas contables y económicas"},
	{"ATH-002", "ADMINISTRACIÓN DE EMPRESAS TURÍSTICAS Y HOTELERAS", "Facultad Ciencias Administrativas contables y económicas"},
	{"COM-003", "COMERCIO INTERNACIONAL", "Facultad Ciencias Administrativas contables y económicas"},
	{"CON-004", "CONTADURÍA PÚBLICA", "Facultad Ciencias Administrativas contables y económicas"},
	{"DER-005", "DERECHO", "Facultad de derecho, ciencias políticas y sociales"},
	{"ECO-006", "ECONOMÍA", "Facultad Ciencias Administrativas contables y económicas"},
	{"ENF-007", "ENFERMERÍA", "Facultad Ciencias de la salud"},
	{"IAG-008", "INGENIERÍA AGROINDUSTRIAL", "Facultad ingenierías y tecnologías"},
	{"IAS-009", "INGENIERIA AMBIENTAL Y SANITARIA", "Facultad ingenierías y tecnologías"},
	{"IEL-010", "INGENIERÍA ELECTRÓNICA", "Facultad ingenierías y tecnologías"},
	{"ISI-011", "INGENIERÍA DE SISTEMAS", "Facultad ingenierías y tecnologías"},
	{"IQX-012", "INSTRUMENTACIÓN QUIRÚRGICA", "Facultad Ciencias de la salud"},
	{"LAF-013", "LICENCIATURA EN ARTE Y FOLCLOR", "Facultad de bellas artes"},
	{"LCN-014", "LICENCIATURA EN CIENCIAS NATURALES Y EDUCACIÓN AMBIENTAL", "Facultad DE Educación"},
	{"LEF-015", "LICENCIATURA EN EDUCACIÓN FISICA, RECREACIÓN Y DEPORTES", "Facultad DE Educación"},
	{"LLC-016", "LICENCIATURA EN LENGUA CASTELLANA E INGLÉS", "Facultad DE Educación"},
	{"LMA-017", "LICENCIATURA EN MATEMÁTICAS", "Facultad DE Educación"},
	{"MIC-018", "MICROBIOLOGÍA", "Facultad DE Ciencias Básicas"},
	{"SOC-019", "SOCIOLOGÍA", "Facultad de derecho, ciencias políticas y sociales"},
}

// CreateDefaultData seeds the academic program catalog and a default
// coordinator account. Both are idempotent: existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	programaRepo := repositories.NewProgramaRepository(dbPool)
	usuarioRepo := repositories.NewUsuarioRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (programas/coordinador)...")
	var finalErr error

	for _, p := range programas {
		_, err := programaRepo.Create(ctx, &models.Programa{
			Codigo:    p.codigo,
			Nombre:    p.nombre,
			Facultad:  p.facultad,
			Nivel:     "Pregrado",
			Modalidad: "Presencial",
			Estado:    "Activo",
		})
		if err != nil && !errors.Is(err, apperrors.ErrCodigoAlreadyUsed) {
			lgr.Error().Err(err).Str("codigo", p.codigo).Msg("Error seeding programa")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := usuarioRepo.GetByEmail(ctx, cfg.Seed.CoordinadorEmail); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return errors.Join(finalErr, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.CoordinadorPassword), bcrypt.DefaultCost)
		if err != nil {
			return errors.Join(finalErr, fmt.Errorf("error hashing seed password: %w", err))
		}
		_, err = usuarioRepo.Create(ctx, &models.Usuario{
			Nombre:       "Coordinación Permanencia",
			Email:        cfg.Seed.CoordinadorEmail,
			PasswordHash: string(hash),
			Rol:          models.RolCoordinador,
			Activo:       true,
		})
		if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyUsed) {
			lgr.Error().Err(err).Msg("Error seeding coordinador account")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			lgr.Info().Str("email", cfg.Seed.CoordinadorEmail).Msg("Default coordinador account created")
		}
	}

	return finalErr
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/davidrv/permanencia/internal/app/controllers"
	appMigrations "github.com/davidrv/permanencia/internal/app/migrations"
	appRepos "github.com/davidrv/permanencia/internal/app/repositories"
	appRoutes "github.com/davidrv/permanencia/internal/app/routes"
	appServices "github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/config"
	"github.com/davidrv/permanencia/internal/db"
	appMiddleware "github.com/davidrv/permanencia/internal/middleware"
	"github.com/davidrv/permanencia/internal/pkg/logger"
	"github.com/davidrv/permanencia/internal/pkg/validation"
	"github.com/davidrv/permanencia/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EstudianteService   *appServices.EstudianteService
	ProgramaService     *appServices.ProgramaService
	ServicioService     *appServices.ServicioService
	UsuarioService      *appServices.UsuarioService
	EstadisticasService *appServices.EstadisticasService

	EstudianteController   *appControllers.EstudianteController
	ProgramaController     *appControllers.ProgramaController
	ServicioController     *appControllers.ServicioController
	UsuarioController      *appControllers.UsuarioController
	EstadisticasController *appControllers.EstadisticasController
	RegistroControllers    *appRoutes.RegistroControllers

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding is best-effort; startup continues without it.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.EstudianteService = appServices.NewEstudianteService(deps.Repos.EstudianteRepository)
	deps.ProgramaService = appServices.NewProgramaService(deps.Repos.ProgramaRepository)
	deps.ServicioService = appServices.NewServicioService(deps.Repos.ServicioRepository)
	deps.UsuarioService = appServices.NewUsuarioService(deps.Repos.UsuarioRepository)
	deps.EstadisticasService = appServices.NewEstadisticasService(deps.Repos)

	deps.EstudianteController = appControllers.NewEstudianteController(deps.EstudianteService)
	deps.ProgramaController = appControllers.NewProgramaController(deps.ProgramaService)
	deps.ServicioController = appControllers.NewServicioController(deps.ServicioService)
	deps.UsuarioController = appControllers.NewUsuarioController(deps.UsuarioService)
	deps.EstadisticasController = appControllers.NewEstadisticasController(deps.EstadisticasService)

	atencion := func(repo *appRepos.RegistroRepository, reglas *validation.Ruleset, recurso string) *appControllers.RegistroController {
		return appControllers.NewRegistroController(
			appServices.NewRegistroAtencionService(repo, deps.EstudianteService, reglas), recurso)
	}
	referencia := func(svc *appServices.RegistroService, recurso string) *appControllers.RegistroController {
		return appControllers.NewRegistroController(svc, recurso)
	}

	deps.RegistroControllers = &appRoutes.RegistroControllers{
		Tutorias:      atencion(deps.Repos.TutoriaRepository, validation.ReglasTutoria, "tutoría académica"),
		Asesorias:     atencion(deps.Repos.AsesoriaRepository, validation.ReglasAsesoria, "asesoría psicológica"),
		Orientaciones: atencion(deps.Repos.OrientacionRepository, validation.ReglasOrientacion, "orientación vocacional"),
		Comedores:     atencion(deps.Repos.ComedorRepository, validation.ReglasComedor, "comedor universitario"),
		Apoyos:        atencion(deps.Repos.ApoyoRepository, validation.ReglasApoyo, "apoyo socioeconómico"),
		Talleres:      atencion(deps.Repos.TallerRepository, validation.ReglasTaller, "taller de habilidades"),
		Seguimientos:  atencion(deps.Repos.SeguimientoRepository, validation.ReglasSeguimiento, "seguimiento académico"),
		Intervenciones: referencia(
			appServices.NewRegistroReferenciaService(deps.Repos.IntervencionRepository, deps.EstudianteService, validation.ReglasIntervencionGrupal),
			"intervención grupal"),
		Remisiones: referencia(
			appServices.NewRegistroReferenciaService(deps.Repos.RemisionRepository, deps.EstudianteService, validation.ReglasRemision),
			"remisión psicológica"),
		Asistencias: referencia(
			appServices.NewRegistroReferenciaService(deps.Repos.AsistenciaRepository, deps.EstudianteService, validation.ReglasAsistencia),
			"asistencia a actividad"),
		Actas: referencia(
			appServices.NewRegistroReferenciaService(deps.Repos.ActaRepository, deps.EstudianteService, validation.ReglasActa).
				WithDecorador(appServices.DecorarActa),
			"acta de negación"),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.EstudianteController,
		deps.ProgramaController,
		deps.ServicioController,
		deps.UsuarioController,
		deps.EstadisticasController,
		deps.RegistroControllers,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

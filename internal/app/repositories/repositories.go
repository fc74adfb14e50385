package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/davidrv/permanencia/internal/app/models"
)

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	EstudianteRepository *EstudianteRepository
	ProgramaRepository   *ProgramaRepository
	ServicioRepository   *ServicioRepository
	UsuarioRepository    *UsuarioRepository

	TutoriaRepository      *RegistroRepository
	AsesoriaRepository     *RegistroRepository
	OrientacionRepository  *RegistroRepository
	ComedorRepository      *RegistroRepository
	ApoyoRepository        *RegistroRepository
	TallerRepository       *RegistroRepository
	SeguimientoRepository  *RegistroRepository
	IntervencionRepository *RegistroRepository
	RemisionRepository     *RegistroRepository
	AsistenciaRepository   *RegistroRepository
	ActaRepository         *RegistroRepository
}

// NewRepositories creates all repositories over a single connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EstudianteRepository: NewEstudianteRepository(db),
		ProgramaRepository:   NewProgramaRepository(db),
		ServicioRepository:   NewServicioRepository(db),
		UsuarioRepository:    NewUsuarioRepository(db),

		TutoriaRepository:      NewRegistroRepository(db, models.TablaTutorias),
		AsesoriaRepository:     NewRegistroRepository(db, models.TablaAsesorias),
		OrientacionRepository:  NewRegistroRepository(db, models.TablaOrientaciones),
		ComedorRepository:      NewRegistroRepository(db, models.TablaComedores),
		ApoyoRepository:        NewRegistroRepository(db, models.TablaApoyos),
		TallerRepository:       NewRegistroRepository(db, models.TablaTalleres),
		SeguimientoRepository:  NewRegistroRepository(db, models.TablaSeguimientos),
		IntervencionRepository: NewRegistroRepository(db, models.TablaIntervenciones),
		RemisionRepository:     NewRegistroRepository(db, models.TablaRemisiones),
		AsistenciaRepository:   NewRegistroRepository(db, models.TablaAsistencias),
		ActaRepository:         NewRegistroRepository(db, models.TablaActas),
	}
}

// isDuplicateKeyError checks for a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation checks for a PostgreSQL foreign key violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

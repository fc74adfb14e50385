package validation

// Reference catalogs for the permanencia program. These are the fixed value
// sets every ruleset validates enum fields against.

// ProgramasAcademicos is the fixed catalog of academic programs a student can
// belong to.
var ProgramasAcademicos = []string{
	"ADMINISTRACIÓN DE EMPRESAS",
	"ADMINISTRACIÓN DE EMPRESAS TURÍSTICAS Y HOTELERAS",
	"COMERCIO INTERNACIONAL",
	"CONTADURÍA PÚBLICA",
	"DERECHO",
	"ECONOMÍA",
	"ENFERMERÍA",
	"INGENIERÍA AGROINDUSTRIAL",
	"INGENIERIA AMBIENTAL Y SANITARIA",
	"INGENIERÍA ELECTRÓNICA",
	"INGENIERÍA DE SISTEMAS",
	"INSTRUMENTACIÓN QUIRÚRGICA",
	"LICENCIATURA EN ARTE Y FOLCLOR",
	"LICENCIATURA EN CIENCIAS NATURALES Y EDUCACIÓN AMBIENTAL",
	"LICENCIATURA EN EDUCACIÓN FISICA, RECREACIÓN Y DEPORTES",
	"LICENCIATURA EN LENGUA CASTELLANA E INGLÉS",
	"LICENCIATURA EN MATEMÁTICAS",
	"MICROBIOLOGÍA",
	"SOCIOLOGÍA",
}

// Facultades is the fixed list of faculties a programa can belong to.
var Facultades = []string{
	"Facultad Ciencias Administrativas contables y económicas",
	"Facultad de bellas artes",
	"Facultad de derecho, ciencias políticas y sociales",
	"Facultad DE Ciencias Básicas",
	"Facultad ingenierías y tecnologías",
	"Facultad Ciencias de la salud",
	"Facultad DE Educación",
}

var (
	TiposDocumento       = []string{"CC", "TI", "CE", "Pasaporte"}
	NivelesRiesgo        = []string{"Muy bajo", "Bajo", "Medio", "Alto", "Muy alto"}
	NivelesRiesgoSpadies = []string{"Bajo", "Medio", "Alto"}
	EstadosParticipacion = []string{"Activo", "Inactivo", "Finalizado"}
	TiposComida          = []string{"Almuerzo"}
	TiposParticipante    = []string{"Admitido", "Nuevo", "Media académica"}

	MotivosIntervencion = []string{
		"Problemas familiares", "Dificultades emocionales", "Estrés académico",
		"Ansiedad / depresión", "Problemas de adaptación", "Otros",
	}
	TiposIntervencion = []string{"Asesoría", "Taller", "Otro"}

	// Population categories used by group interventions.
	TiposPoblacion = []string{"a", "b", "c", "d", "e", "f", "g"}

	NivelesPrograma     = []string{"Pregrado", "Postgrado"}
	ModalidadesPrograma = []string{"Presencial", "Virtual", "Hibrido"}
	EstadosPrograma     = []string{"Activo", "Inactivo"}

	ModalidadesActividad = []string{"Presencial", "Virtual"}
)

// Stratum bounds (Colombian socioeconomic classification).
const (
	EstratoMin = 1
	EstratoMax = 6
)

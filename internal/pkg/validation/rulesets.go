package validation

import (
	"unicode/utf8"

	"github.com/davidrv/permanencia/internal/app/models"
)

// One ruleset per creatable entity. Rules are declarative (field, predicate,
// message) tuples so create and update paths share the exact same
// definitions instead of re-implementing checks inline.

// isDocumento checks a 7-10 digit document number.
func isDocumento(v any) bool {
	s, ok := stringForm(v)
	return ok && IsDigitsOnly(s) && len(s) >= 7 && len(s) <= 10
}

// isNombre checks a letters-and-spaces name between min and max runes.
func isNombre(v any, min, max int) bool {
	s, ok := v.(string)
	if !ok || !IsLettersOnly(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// isSemestre accepts positive integers.
func isSemestre(v any) bool {
	n, ok := AsInt(v)
	return ok && n >= 1
}

// isEstrato accepts integers 1..6.
func isEstrato(v any) bool {
	n, ok := AsInt(v)
	return ok && n >= EstratoMin && n <= EstratoMax
}

// estudianteRules are the identity fields shared by the estudiante entity
// and every service-record ruleset. The estudiante endpoints call the
// document field "documento" while the service-record payloads call it
// "numero_documento", so the field name is a parameter.
func estudianteRules(docField string) []Rule {
	return []Rule{
		{Field: "tipo_documento", Check: func(v any) bool { return InList(v, TiposDocumento) },
			Message: "Tipo de documento requerido o inválido"},
		{Field: docField, Check: isDocumento,
			Message: "Número de documento requerido (7-10 dígitos numéricos)"},
		{Field: "nombres", Check: func(v any) bool { return isNombre(v, 2, 50) },
			Message: "Nombres requeridos (solo letras y espacios)"},
		{Field: "apellidos", Check: func(v any) bool { return isNombre(v, 2, 50) },
			Message: "Apellidos requeridos (solo letras y espacios)"},
		{Field: "correo", Check: IsValidEmail,
			Message: "Correo requerido y válido"},
		{Field: "telefono", Check: IsValidCellphone, Optional: true,
			Message: "Teléfono debe ser celular colombiano (3** *** ****)"},
		{Field: "direccion", Check: func(v any) bool { return IsText(v, 100) }, Optional: true,
			Message: "Dirección máxima 100 caracteres"},
		{Field: "programa_academico", Check: func(v any) bool { return InList(v, ProgramasAcademicos) },
			Message: "Programa requerido y válido"},
		{Field: "semestre", Check: isSemestre,
			Message: "Semestre requerido y debe ser mayor o igual a 1"},
		{Field: "estrato", Check: isEstrato,
			Message: "Estrato requerido (1-6)"},
	}
}

// ReglasEstudiante validates the estudiante entity itself.
var ReglasEstudiante = &Ruleset{
	Defaults:  models.FieldMap{"estrato": 1},
	IntFields: []string{"semestre", "estrato"},
	Rules:     estudianteRules("documento"),
}

// reglasComunes is the shared sub-ruleset every permanencia service ruleset
// extends: the student identity fields plus the deterioration-risk level.
var reglasComunes = &Ruleset{
	Defaults:  models.FieldMap{"estrato": 1, "riesgo_desercion": "Bajo"},
	IntFields: []string{"semestre", "estrato"},
	Rules: append(estudianteRules("numero_documento"), Rule{
		Field:   "riesgo_desercion",
		Check:   func(v any) bool { return InList(v, NivelesRiesgo) },
		Message: "Riesgo requerido y válido",
	}),
}

// ReglasTutoria validates academic tutoring registrations (POA).
var ReglasTutoria = reglasComunes.Extend(
	Rule{Field: "nivel_riesgo", Check: func(v any) bool { return InList(v, NivelesRiesgoSpadies) },
		Message: "Nivel de riesgo requerido y válido"},
	Rule{Field: "requiere_tutoria", Check: IsBoolean,
		Message: "Campo 'requiere_tutoria' es obligatorio y debe ser booleano"},
	Rule{Field: "fecha_asignacion", Check: IsValidDate,
		Message: "Fecha de asignación requerida en formato YYYY-MM-DD"},
	Rule{Field: "acciones_apoyo", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
		Message: "Campo 'acciones_apoyo' debe ser texto válido (máximo 255 caracteres)"},
)

// ReglasAsesoria validates psychological counseling registrations (POPS).
var ReglasAsesoria = reglasComunes.Extend(
	Rule{Field: "motivo_intervencion", Check: func(v any) bool { return InList(v, MotivosIntervencion) },
		Message: "Motivo de intervención requerido y válido"},
	Rule{Field: "tipo_intervencion", Check: func(v any) bool { return InList(v, TiposIntervencion) },
		Message: "Tipo de intervención requerido y válido"},
	Rule{Field: "fecha_atencion", Check: IsValidDate,
		Message: "Fecha de atención requerida en formato YYYY-MM-DD"},
	Rule{Field: "seguimiento", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
		Message: "Seguimiento debe ser texto válido (máximo 255 caracteres)"},
)

// ReglasOrientacion validates vocational guidance registrations (POVAU).
var ReglasOrientacion = reglasComunes.Extend(
	Rule{Field: "tipo_participante", Check: func(v any) bool { return InList(v, TiposParticipante) },
		Message: "Tipo de participante requerido y válido"},
	Rule{Field: "riesgo_spadies", Check: func(v any) bool { return InList(v, NivelesRiesgoSpadies) },
		Message: "Nivel de riesgo SPADIES requerido y válido"},
	Rule{Field: "fecha_ingreso_programa", Check: IsValidDate,
		Message: "Fecha de ingreso requerida y válida"},
	Rule{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
		Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
)

// ReglasComedor validates university cafeteria benefit requests.
var ReglasComedor = reglasComunes.Extend(
	Rule{Field: "condicion_socioeconomica", Check: func(v any) bool { return IsRequiredText(v, 100) },
		Message: "Condición socioeconómica requerida y válida"},
	Rule{Field: "fecha_solicitud", Check: IsValidDate,
		Message: "Fecha de solicitud requerida y válida"},
	Rule{Field: "aprobado", Check: IsBoolean,
		Message: "Campo 'aprobado' debe ser booleano"},
	Rule{Field: "tipo_comida", Check: func(v any) bool { return InList(v, TiposComida) },
		Message: "Tipo de comida requerido y válido"},
	Rule{Field: "raciones_asignadas", Check: func(v any) bool { return InNumericRange(v, 1, 100) },
		Message: "Raciones asignadas debe ser un número entre 1 y 100"},
	Rule{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
		Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
).WithDefaults(models.FieldMap{"aprobado": false}).WithIntFields("raciones_asignadas")

// ReglasApoyo validates socioeconomic aid registrations.
var ReglasApoyo = reglasComunes.Extend(
	Rule{Field: "tipo_vulnerabilidad", Check: func(v any) bool { return IsRequiredText(v, 100) },
		Message: "Tipo de vulnerabilidad requerido y válido"},
	Rule{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
		Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
)

// ReglasTaller validates skill workshop registrations.
var ReglasTaller = reglasComunes.Extend(
	Rule{Field: "nombre_taller", Check: func(v any) bool { return IsRequiredText(v, 100) },
		Message: "Nombre del taller requerido y válido"},
	Rule{Field: "fecha_taller", Check: IsValidDate,
		Message: "Fecha requerida en formato YYYY-MM-DD"},
	Rule{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
		Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
)

// ReglasSeguimiento validates academic follow-up registrations.
var ReglasSeguimiento = reglasComunes.Extend(
	Rule{Field: "estado_participacion", Check: func(v any) bool { return InList(v, EstadosParticipacion) },
		Message: "Estado de participación requerido y válido"},
	Rule{Field: "observaciones_permanencia", Check: func(v any) bool { return IsRequiredText(v, 255) },
		Message: "Observaciones requeridas y válidas"},
)

// ReglasIntervencionGrupal validates group intervention requests. These are
// keyed on docentes rather than a single student, so they do not extend the
// common student rules.
var ReglasIntervencionGrupal = &Ruleset{
	Defaults:  models.FieldMap{"efectividad": "Pendiente evaluación"},
	IntFields: []string{"numero_estudiantes"},
	Rules: []Rule{
		{Field: "fecha_solicitud", Check: IsValidDate,
			Message: "Fecha de solicitud requerida en formato YYYY-MM-DD"},
		{Field: "nombre_docente_permanencia", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Nombre del docente de permanencia debe contener solo letras y espacios"},
		{Field: "celular_permanencia", Check: IsValidCellphone,
			Message: "Celular de permanencia debe tener 10 dígitos y comenzar por 3"},
		{Field: "correo_permanencia", Check: IsValidEmail,
			Message: "Correo de permanencia debe ser un correo electrónico válido"},
		{Field: "programa_academico_permanencia", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Programa académico de permanencia requerido"},
		{Field: "tipo_poblacion", Check: func(v any) bool { return InList(v, TiposPoblacion) },
			Message: "Tipo de población debe ser uno de: a, b, c, d, e, f, g"},
		{Field: "nombre_docente_asignatura", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Nombre del docente de asignatura debe contener solo letras y espacios"},
		{Field: "celular_docente_asignatura", Check: IsValidCellphone,
			Message: "Celular del docente de asignatura debe tener 10 dígitos y comenzar por 3"},
		{Field: "correo_docente_asignatura", Check: IsValidEmail,
			Message: "Correo del docente de asignatura debe ser un correo electrónico válido"},
		{Field: "programa_academico_docente_asignatura", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Programa académico del docente requerido"},
		{Field: "asignatura_intervenir", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Asignatura a intervenir requerida"},
		{Field: "grupo", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Grupo requerido"},
		{Field: "semestre", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Semestre requerido"},
		{Field: "numero_estudiantes", Check: IsDigitsOnly,
			Message: "Número de estudiantes debe ser numérico"},
		{Field: "tematica_sugerida", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
			Message: "Temática sugerida debe ser texto válido (máximo 255 caracteres)"},
		{Field: "fecha_intervencion", Check: IsValidDate,
			Message: "Fecha de intervención requerida en formato YYYY-MM-DD"},
		{Field: "hora", Check: IsValidHour,
			Message: "Hora requerida en formato HH:MM"},
		{Field: "aula", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Aula requerida"},
		{Field: "bloque", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Bloque requerido"},
		{Field: "sede", Check: func(v any) bool { return IsRequiredText(v, 50) },
			Message: "Sede requerida"},
		{Field: "estado", Check: func(v any) bool { return IsRequiredText(v, 50) },
			Message: "Estado requerido"},
		{Field: "motivo", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
			Message: "Motivo debe ser texto válido (máximo 255 caracteres)"},
		{Field: "efectividad", Check: func(v any) bool { return IsText(v, 100) }, Optional: true,
			Message: "Efectividad debe ser texto válido (máximo 100 caracteres)"},
	},
}

// ReglasRemision validates psychological referrals raised by docentes. The
// referenced student may not exist yet; resolution is lookup-only.
var ReglasRemision = &Ruleset{
	Defaults: models.FieldMap{"programa_academico": "No especificado"},
	Rules: []Rule{
		{Field: "nombre_estudiante", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Nombre del estudiante requerido (solo letras y espacios)"},
		{Field: "numero_documento", Check: isDocumento,
			Message: "Número de documento requerido (7-10 dígitos numéricos)"},
		{Field: "programa_academico", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Programa académico requerido"},
		{Field: "semestre", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Semestre requerido"},
		{Field: "motivo_remision", Check: func(v any) bool { return IsRequiredText(v, 255) },
			Message: "Motivo de remisión requerido"},
		{Field: "docente_remite", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Docente que remite requerido (solo letras y espacios)"},
		{Field: "correo_docente", Check: IsValidEmail,
			Message: "Correo del docente debe ser un correo electrónico válido"},
		{Field: "telefono_docente", Check: IsValidCellphone,
			Message: "Teléfono del docente debe ser celular colombiano (3** *** ****)"},
		{Field: "fecha", Check: IsValidDate,
			Message: "Fecha requerida en formato YYYY-MM-DD"},
		{Field: "hora", Check: IsValidHour,
			Message: "Hora requerida en formato HH:MM"},
		{Field: "tipo_remision", Check: func(v any) bool { return IsRequiredText(v, 50) },
			Message: "Tipo de remisión requerido"},
		{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
			Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
	},
}

// ReglasAsistencia validates attendance registrations for permanencia
// activities.
var ReglasAsistencia = &Ruleset{
	Rules: []Rule{
		{Field: "nombre_estudiante", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Nombre del estudiante requerido (solo letras y espacios)"},
		{Field: "numero_documento", Check: isDocumento,
			Message: "Número de documento requerido (7-10 dígitos numéricos)"},
		{Field: "programa_academico", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Programa académico requerido"},
		{Field: "semestre", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Semestre requerido"},
		{Field: "nombre_actividad", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Nombre de la actividad requerido"},
		{Field: "modalidad", Check: func(v any) bool { return InList(v, ModalidadesActividad) },
			Message: "Modalidad debe ser 'Presencial' o 'Virtual'"},
		{Field: "tipo_actividad", Check: func(v any) bool { return IsRequiredText(v, 50) },
			Message: "Tipo de actividad requerido"},
		{Field: "fecha_actividad", Check: IsValidDate,
			Message: "Fecha de la actividad requerida en formato YYYY-MM-DD"},
		{Field: "hora_inicio", Check: IsValidHour,
			Message: "Hora de inicio requerida en formato HH:MM"},
		{Field: "hora_fin", Check: IsValidHour,
			Message: "Hora de fin requerida en formato HH:MM"},
		{Field: "modalidad_registro", Check: func(v any) bool { return IsRequiredText(v, 50) },
			Message: "Modalidad de registro requerida"},
		{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
			Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
	},
}

// isDigitsInRange checks a digits-only value whose numeric form falls in
// [lo, hi]. Used for the acta signature date parts.
func isDigitsInRange(v any, lo, hi float64) bool {
	return IsDigitsOnly(v) && InNumericRange(v, lo, hi)
}

// ReglasActa validates service denial records.
var ReglasActa = &Ruleset{
	IntFields: []string{"fecha_firma_dia", "fecha_firma_mes", "fecha_firma_anio"},
	Rules: []Rule{
		{Field: "nombre_estudiante", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Nombre del estudiante requerido (solo letras y espacios)"},
		{Field: "documento_tipo", Check: func(v any) bool { return InList(v, TiposDocumento) },
			Message: "Tipo de documento requerido o inválido"},
		{Field: "documento_numero", Check: isDocumento,
			Message: "Número de documento requerido (7-10 dígitos numéricos)"},
		{Field: "documento_expedido_en", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Lugar de expedición del documento requerido"},
		{Field: "programa_academico", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Programa académico requerido"},
		{Field: "semestre", Check: func(v any) bool { return IsRequiredText(v, 20) },
			Message: "Semestre requerido"},
		{Field: "fecha_firma_dia", Check: func(v any) bool { return isDigitsInRange(v, 1, 31) },
			Message: "Día de la firma debe estar entre 1 y 31"},
		{Field: "fecha_firma_mes", Check: func(v any) bool { return isDigitsInRange(v, 1, 12) },
			Message: "Mes de la firma debe estar entre 1 y 12"},
		{Field: "fecha_firma_anio", Check: func(v any) bool { return isDigitsInRange(v, 2000, 2100) },
			Message: "Año de la firma inválido"},
		{Field: "firma_estudiante", Check: func(v any) bool { return IsRequiredText(v, 100) },
			Message: "Firma del estudiante requerida"},
		{Field: "documento_firma_estudiante", Check: IsDigitsOnly,
			Message: "Documento de quien firma debe ser numérico"},
		{Field: "docente_permanencia", Check: func(v any) bool { return isNombre(v, 2, 100) },
			Message: "Docente de permanencia requerido (solo letras y espacios)"},
		{Field: "observaciones", Check: func(v any) bool { return IsText(v, 255) }, Optional: true,
			Message: "Observaciones deben ser texto válido (máximo 255 caracteres)"},
	},
}

// ReglasPrograma validates academic program catalog entries.
var ReglasPrograma = &Ruleset{
	Defaults: models.FieldMap{
		"nivel":     "Pregrado",
		"modalidad": "Presencial",
		"estado":    "Activo",
	},
	Rules: []Rule{
		{Field: "codigo", Check: IsProgramCode,
			Message: "El código debe tener el formato ABC-123 (3 letras mayúsculas, guion y 3 números)"},
		{Field: "nombre", Check: func(v any) bool { return isNombre(v, 3, 100) },
			Message: "El nombre debe contener solo letras y espacios (mínimo 3, máximo 100 caracteres)"},
		{Field: "facultad", Check: func(v any) bool { return InList(v, Facultades) },
			Message: "La facultad no es válida"},
		{Field: "nivel", Check: func(v any) bool { return InList(v, NivelesPrograma) }, Optional: true,
			Message: "El nivel debe ser 'Pregrado' o 'Postgrado'"},
		{Field: "modalidad", Check: func(v any) bool { return InList(v, ModalidadesPrograma) }, Optional: true,
			Message: "La modalidad debe ser 'Presencial', 'Virtual' o 'Hibrido'"},
		{Field: "estado", Check: func(v any) bool { return InList(v, EstadosPrograma) }, Optional: true,
			Message: "El estado debe ser 'Activo' o 'Inactivo'"},
	},
}

package models

// The permanencia service records (tutorías, asesorías, orientaciones,
// comedores, apoyos, talleres, seguimientos, intervenciones grupales,
// remisiones, asistencias, actas) all share the shape
// {id, estudiante_id, entity fields, created_at, updated_at} and are handled
// as FieldMap rows by a generic table repository. TablaRegistro describes one
// such table: its name and the columns a client is allowed to write.
type TablaRegistro struct {
	Nombre   string
	Columnas []string
}

// Service-record table descriptors. The column lists mirror the database
// schema; anything else in an incoming field map is dropped before insert.
var (
	TablaTutorias = TablaRegistro{
		Nombre: "tutorias_academicas",
		Columnas: []string{
			"estudiante_id", "nivel_riesgo", "requiere_tutoria",
			"fecha_asignacion", "acciones_apoyo",
		},
	}

	TablaAsesorias = TablaRegistro{
		Nombre: "asesorias_psicologicas",
		Columnas: []string{
			"estudiante_id", "motivo_intervencion", "tipo_intervencion",
			"fecha_atencion", "seguimiento",
		},
	}

	TablaOrientaciones = TablaRegistro{
		Nombre: "orientaciones_vocacionales",
		Columnas: []string{
			"estudiante_id", "tipo_participante", "riesgo_spadies",
			"fecha_ingreso_programa", "observaciones",
		},
	}

	TablaComedores = TablaRegistro{
		Nombre: "comedores_universitarios",
		Columnas: []string{
			"estudiante_id", "condicion_socioeconomica", "fecha_solicitud",
			"aprobado", "tipo_comida", "raciones_asignadas", "observaciones",
		},
	}

	TablaApoyos = TablaRegistro{
		Nombre: "apoyos_socioeconomicos",
		Columnas: []string{
			"estudiante_id", "tipo_vulnerabilidad", "observaciones",
		},
	}

	TablaTalleres = TablaRegistro{
		Nombre: "talleres_habilidades",
		Columnas: []string{
			"estudiante_id", "nombre_taller", "fecha_taller", "observaciones",
		},
	}

	TablaSeguimientos = TablaRegistro{
		Nombre: "seguimientos_academicos",
		Columnas: []string{
			"estudiante_id", "estado_participacion", "observaciones_permanencia",
		},
	}

	TablaIntervenciones = TablaRegistro{
		Nombre: "intervenciones_grupales",
		Columnas: []string{
			"estudiante_id", "fecha_solicitud", "nombre_docente_permanencia",
			"celular_permanencia", "correo_permanencia",
			"programa_academico_permanencia", "tipo_poblacion",
			"nombre_docente_asignatura", "celular_docente_asignatura",
			"correo_docente_asignatura", "programa_academico_docente_asignatura",
			"asignatura_intervenir", "grupo", "semestre", "numero_estudiantes",
			"tematica_sugerida", "fecha_intervencion", "hora", "aula", "bloque",
			"sede", "estado", "motivo", "efectividad",
		},
	}

	TablaRemisiones = TablaRegistro{
		Nombre: "remisiones_psicologicas",
		Columnas: []string{
			"estudiante_id", "nombre_estudiante", "numero_documento",
			"programa_academico", "semestre", "motivo_remision",
			"docente_remite", "correo_docente", "telefono_docente", "fecha",
			"hora", "tipo_remision", "observaciones",
		},
	}

	TablaAsistencias = TablaRegistro{
		Nombre: "asistencias_actividades",
		Columnas: []string{
			"estudiante_id", "nombre_estudiante", "numero_documento",
			"programa_academico", "semestre", "nombre_actividad", "modalidad",
			"tipo_actividad", "fecha_actividad", "hora_inicio", "hora_fin",
			"modalidad_registro", "observaciones",
		},
	}

	TablaActas = TablaRegistro{
		Nombre: "actas_negacion",
		Columnas: []string{
			"estudiante_id", "nombre_estudiante", "documento_tipo",
			"documento_numero", "documento_expedido_en", "programa_academico",
			"semestre", "fecha_firma_dia", "fecha_firma_mes", "fecha_firma_anio",
			"firma_estudiante", "documento_firma_estudiante",
			"docente_permanencia", "observaciones",
		},
	}
)

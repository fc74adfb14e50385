package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrv/permanencia/internal/app/models"
)

func estudianteValido() models.FieldMap {
	return models.FieldMap{
		"tipo_documento":     "CC",
		"documento":          "1065432100",
		"nombres":            "Laura Sofía",
		"apellidos":          "Mendoza Rojas",
		"correo":             "laura.mendoza@unicesar.edu.co",
		"programa_academico": "INGENIERÍA DE SISTEMAS",
		"semestre":           float64(4),
		"estrato":            float64(2),
	}
}

func TestReglasEstudianteValido(t *testing.T) {
	res := ReglasEstudiante.Validate(ReglasEstudiante.Normalize(estudianteValido()))
	assert.True(t, res.Valid(), "unexpected errors: %v", res)
}

func TestReglasEstudianteAcumulaErrores(t *testing.T) {
	data := estudianteValido()
	data["documento"] = "123"
	data["correo"] = "no-es-correo"
	data["telefono"] = "12345"

	res := ReglasEstudiante.Validate(data)

	require.False(t, res.Valid())
	assert.Len(t, res, 3, "every failing field is reported at once")
	assert.Contains(t, res, "documento")
	assert.Contains(t, res, "correo")
	assert.Contains(t, res, "telefono")
	assert.NotContains(t, res, "nombres")
}

func TestReglasEstudianteCamposOpcionales(t *testing.T) {
	data := estudianteValido()
	// telefono and direccion are optional; absence is not an error.
	res := ReglasEstudiante.Validate(data)
	assert.True(t, res.Valid())

	data["telefono"] = "3016549870"
	data["direccion"] = "Calle 12 # 4-56"
	res = ReglasEstudiante.Validate(data)
	assert.True(t, res.Valid())
}

func TestNormalizeAplicaDefaultsYCoerciones(t *testing.T) {
	data := models.FieldMap{
		"documento": "1065432100",
		"semestre":  "5",
	}

	out := ReglasEstudiante.Normalize(data)

	assert.Equal(t, 5, out["semestre"], "numeric strings become ints")
	assert.Equal(t, 1, out["estrato"], "missing estrato gets the default")
	assert.Equal(t, "5", data["semestre"], "input map is not mutated")
	assert.NotContains(t, data, "estrato")
}

func TestCoerceNoRellenaDefaults(t *testing.T) {
	out := ReglasEstudiante.Coerce(models.FieldMap{"semestre": "3"})

	assert.Equal(t, 3, out["semestre"])
	assert.NotContains(t, out, "estrato", "partial updates must not resurrect defaults")
}

func TestValidatePartialSoloCamposPresentes(t *testing.T) {
	res := ReglasEstudiante.ValidatePartial(models.FieldMap{"correo": "malo"})

	require.Len(t, res, 1)
	assert.Contains(t, res, "correo")
}

func TestEstratoLimites(t *testing.T) {
	tests := []struct {
		estrato float64
		want    bool
	}{
		{0, false},
		{1, true},
		{6, true},
		{7, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isEstrato(tt.estrato), "estrato %v", tt.estrato)

		data := estudianteValido()
		data["estrato"] = tt.estrato
		res := ReglasEstudiante.Validate(data)
		if tt.want {
			assert.NotContains(t, res, "estrato", "estrato %v must pass", tt.estrato)
		} else {
			assert.Contains(t, res, "estrato", "estrato %v must fail", tt.estrato)
		}
	}
}

func TestValidateEsDeterminista(t *testing.T) {
	data := estudianteValido()
	data["documento"] = "12"
	data["nombres"] = ""

	first := ReglasEstudiante.Validate(data)
	second := ReglasEstudiante.Validate(data)
	assert.Equal(t, first, second)
}

func TestReglasTutoriaExtiendeReglasComunes(t *testing.T) {
	data := estudianteValido()
	delete(data, "documento")
	data["numero_documento"] = "1065432100"
	data["nivel_riesgo"] = "Medio"
	data["requiere_tutoria"] = true
	data["fecha_asignacion"] = "2025-02-10"

	res := ReglasTutoria.Validate(ReglasTutoria.Normalize(data))
	assert.True(t, res.Valid(), "unexpected errors: %v", res)

	data["fecha_asignacion"] = "10/02/2025"
	res = ReglasTutoria.Validate(ReglasTutoria.Normalize(data))
	assert.Contains(t, res, "fecha_asignacion")
	assert.NotContains(t, res, "numero_documento", "student identity rules still pass")
}

func TestReglasComedorCoercionaRaciones(t *testing.T) {
	data := estudianteValido()
	delete(data, "documento")
	data["numero_documento"] = "1065432100"
	data["condicion_socioeconomica"] = "Vulnerabilidad económica"
	data["fecha_solicitud"] = "2025-02-10"
	data["tipo_comida"] = "Almuerzo"
	data["raciones_asignadas"] = "10"

	out := ReglasComedor.Normalize(data)

	assert.Equal(t, 10, out["raciones_asignadas"])
	assert.Equal(t, false, out["aprobado"], "approval defaults to false")
	assert.True(t, ReglasComedor.Validate(out).Valid())
}

func TestReglasActaCoercionaFechaFirma(t *testing.T) {
	out := ReglasActa.Normalize(models.FieldMap{
		"fecha_firma_dia":  "15",
		"fecha_firma_mes":  "8",
		"fecha_firma_anio": "2025",
	})

	assert.Equal(t, 15, out["fecha_firma_dia"])
	assert.Equal(t, 8, out["fecha_firma_mes"])
	assert.Equal(t, 2025, out["fecha_firma_anio"])

	res := ReglasActa.ValidatePartial(models.FieldMap{"fecha_firma_dia": float64(32)})
	assert.Contains(t, res, "fecha_firma_dia")
}

func TestReglasProgramaDefaults(t *testing.T) {
	out := ReglasPrograma.Normalize(models.FieldMap{
		"codigo":   "ISI-001",
		"nombre":   "Ingeniería de Sistemas",
		"facultad": "Facultad ingenierías y tecnologías",
	})

	assert.Equal(t, "Pregrado", out["nivel"])
	assert.Equal(t, "Presencial", out["modalidad"])
	assert.Equal(t, "Activo", out["estado"])
	assert.True(t, ReglasPrograma.Validate(out).Valid())

	res := ReglasPrograma.Validate(models.FieldMap{
		"codigo":   "isi-1",
		"nombre":   "X",
		"facultad": "Facultad inexistente",
	})
	assert.Contains(t, res, "codigo")
	assert.Contains(t, res, "nombre")
	assert.Contains(t, res, "facultad")
}

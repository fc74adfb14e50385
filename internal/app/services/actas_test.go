package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidrv/permanencia/internal/app/models"
)

func TestDecorarActaDerivaFechas(t *testing.T) {
	record := models.FieldMap{
		"fecha_firma_dia":  5,
		"fecha_firma_mes":  8,
		"fecha_firma_anio": 2025,
	}

	DecorarActa(record)

	assert.Equal(t, "05/08/2025", record["fecha_completa"])
	assert.Equal(t, "5 de agosto de 2025", record["fecha_legible"])
}

func TestDecorarActaFechaIncompleta(t *testing.T) {
	record := models.FieldMap{
		"fecha_firma_dia": 5,
		"fecha_firma_mes": 8,
	}

	DecorarActa(record)

	assert.NotContains(t, record, "fecha_completa", "partial signing dates are left as stored")
	assert.NotContains(t, record, "fecha_legible")
}

func TestDecorarActaMesFueraDeRango(t *testing.T) {
	record := models.FieldMap{
		"fecha_firma_dia":  5,
		"fecha_firma_mes":  13,
		"fecha_firma_anio": 2025,
	}

	DecorarActa(record)

	assert.NotContains(t, record, "fecha_legible")
}

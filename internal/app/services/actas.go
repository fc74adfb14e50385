package services

import (
	"fmt"

	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/validation"
)

var mesesFirma = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// DecorarActa derives fecha_completa (DD/MM/YYYY) and fecha_legible
// ("12 de marzo de 2024") from the signing date parts stored on an acta de
// negación. Records with incomplete date parts are left as-is.
func DecorarActa(record models.FieldMap) {
	dia, okDia := validation.AsInt(record.Get("fecha_firma_dia"))
	mes, okMes := validation.AsInt(record.Get("fecha_firma_mes"))
	anio, okAnio := validation.AsInt(record.Get("fecha_firma_anio"))
	if !okDia || !okMes || !okAnio || mes < 1 || mes > 12 {
		return
	}
	record["fecha_completa"] = fmt.Sprintf("%02d/%02d/%04d", dia, mes, anio)
	record["fecha_legible"] = fmt.Sprintf("%d de %s de %d", dia, mesesFirma[mes-1], anio)
}

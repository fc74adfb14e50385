package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/app/models/dto"
)

// parseID reads the :id path parameter as a UUID, answering a 400 envelope
// itself when the value is malformed.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id: "+ctx.Param("id"), "El ID debe ser un UUID válido"))
		return uuid.Nil, false
	}
	return id, true
}

// bindFieldMap reads the request body as a free-form field map, answering a
// 400 envelope itself when the body is not a JSON object.
func bindFieldMap(ctx *gin.Context) (models.FieldMap, bool) {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "El cuerpo de la solicitud no es un JSON válido"))
		return nil, false
	}
	return models.FieldMap(body), true
}

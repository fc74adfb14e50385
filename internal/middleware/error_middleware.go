package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
	"github.com/davidrv/permanencia/internal/pkg/logger"
)

// HandleAPIError maps service errors to the response envelope. Every
// controller funnels its service errors through here so the status codes and
// messages stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Los datos enviados no son válidos", vErr.Fields))
		return
	}

	var nfErr *apperrors.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(nfErr.Error(), "Recurso no encontrado"))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error(), "Recurso no encontrado"))
	case errors.Is(err, apperrors.ErrDocumentoAlreadyUsed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), "Ya existe un estudiante con ese documento"))
	case errors.Is(err, apperrors.ErrCodigoAlreadyUsed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), "Ya existe un programa con ese código"))
	case errors.Is(err, apperrors.ErrEmailAlreadyUsed):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), "Ya existe un usuario con ese email"))
	case errors.Is(err, apperrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), "El recurso ya existe"))
	case errors.Is(err, apperrors.ErrEstudianteHasRecords):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), "El estudiante tiene registros de atención asociados"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), "Conflicto al procesar la solicitud"))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "Solicitud inválida"))
	default:
		// The raw error goes to the log, never to the client.
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", "Error interno del servidor"))
	}
}

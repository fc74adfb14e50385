package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/middleware"
)

// EstadisticasController serves the program dashboard aggregates.
type EstadisticasController struct {
	estadisticasService *services.EstadisticasService
}

// NewEstadisticasController creates a new EstadisticasController.
func NewEstadisticasController(estadisticasService *services.EstadisticasService) *EstadisticasController {
	return &EstadisticasController{estadisticasService: estadisticasService}
}

// GetEstadisticas returns the program totals
// @Summary Get program statistics
// @Description Returns registered student totals, record counts per service and distribution aggregates
// @Tags estadisticas
// @Produce json
// @Success 200 {object} dto.APIResponse "Statistics retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /estadisticas [get]
func (c *EstadisticasController) GetEstadisticas(ctx *gin.Context) {
	stats, err := c.estadisticasService.GetEstadisticas(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Estadísticas obtenidas exitosamente"))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/middleware"
)

// ServicioController handles the support service catalog endpoints.
type ServicioController struct {
	servicioService *services.ServicioService
}

// NewServicioController creates a new ServicioController.
func NewServicioController(servicioService *services.ServicioService) *ServicioController {
	return &ServicioController{servicioService: servicioService}
}

// CreateServicio registers a catalog service
// @Summary Create a support service
// @Tags servicios
// @Accept json
// @Produce json
// @Param request body dto.CreateServicioRequest true "Service information"
// @Success 201 {object} dto.APIResponse{data=models.Servicio} "Service created"
// @Failure 400 {object} dto.APIResponse "Invalid service data"
// @Router /servicios [post]
func (c *ServicioController) CreateServicio(ctx *gin.Context) {
	var req dto.CreateServicioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "Datos del servicio inválidos"))
		return
	}

	servicio, err := c.servicioService.CreateServicio(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(servicio, "Servicio creado exitosamente"))
}

// GetServicios lists catalog services, optionally filtered by tipo
// @Summary List support services
// @Tags servicios
// @Produce json
// @Param tipo query string false "Filter by service type"
// @Success 200 {object} dto.APIResponse{data=[]models.Servicio} "Services retrieved"
// @Router /servicios [get]
func (c *ServicioController) GetServicios(ctx *gin.Context) {
	if tipo := ctx.Query("tipo"); tipo != "" {
		servicios, err := c.servicioService.GetServiciosByTipo(ctx, tipo)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicios, "Servicios obtenidos exitosamente"))
		return
	}

	servicios, err := c.servicioService.GetServicios(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicios, "Servicios obtenidos exitosamente"))
}

// GetServiciosActivos lists the currently enabled services
// @Summary List active support services
// @Tags servicios
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Servicio} "Services retrieved"
// @Router /servicios/activos [get]
func (c *ServicioController) GetServiciosActivos(ctx *gin.Context) {
	servicios, err := c.servicioService.GetServiciosActivos(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicios, "Servicios obtenidos exitosamente"))
}

// GetServicio returns one catalog service
// @Summary Get a support service
// @Tags servicios
// @Produce json
// @Param id path string true "Service ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Servicio} "Service retrieved"
// @Failure 404 {object} dto.APIResponse "Service not found"
// @Router /servicios/{id} [get]
func (c *ServicioController) GetServicio(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	servicio, err := c.servicioService.GetServicio(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicio, "Servicio obtenido exitosamente"))
}

// UpdateServicio updates a catalog service
// @Summary Update a support service
// @Tags servicios
// @Accept json
// @Produce json
// @Param id path string true "Service ID" Format(uuid)
// @Param request body dto.UpdateServicioRequest true "Updated service information"
// @Success 200 {object} dto.APIResponse{data=models.Servicio} "Service updated"
// @Failure 404 {object} dto.APIResponse "Service not found"
// @Router /servicios/{id} [put]
func (c *ServicioController) UpdateServicio(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateServicioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "Datos del servicio inválidos"))
		return
	}

	servicio, err := c.servicioService.UpdateServicio(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicio, "Servicio actualizado exitosamente"))
}

// DeleteServicio removes a catalog service
// @Summary Delete a support service
// @Tags servicios
// @Produce json
// @Param id path string true "Service ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Service deleted"
// @Failure 404 {object} dto.APIResponse "Service not found"
// @Router /servicios/{id} [delete]
func (c *ServicioController) DeleteServicio(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.servicioService.DeleteServicio(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Servicio eliminado exitosamente"))
}

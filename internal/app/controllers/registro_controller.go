package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/middleware"
)

// RegistroController serves one permanencia record table. Every table shares
// the same endpoint shape, so the controller is instantiated once per table
// with the resource name used in response messages.
type RegistroController struct {
	registroService *services.RegistroService
	recurso         string
}

// NewRegistroController creates a record controller for one table. recurso
// is the resource name used in messages, e.g. "tutoría académica".
func NewRegistroController(registroService *services.RegistroService, recurso string) *RegistroController {
	return &RegistroController{
		registroService: registroService,
		recurso:         recurso,
	}
}

// Create validates the payload, resolves the student and stores the record.
func (c *RegistroController) Create(ctx *gin.Context) {
	fields, ok := bindFieldMap(ctx)
	if !ok {
		return
	}

	record, err := c.registroService.Crear(ctx, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record, fmt.Sprintf("Registro de %s creado exitosamente", c.recurso)))
}

// GetAll returns every record with its linked student embedded.
func (c *RegistroController) GetAll(ctx *gin.Context) {
	records, err := c.registroService.Listar(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, fmt.Sprintf("Registros de %s obtenidos exitosamente", c.recurso)))
}

// GetByID returns one record.
func (c *RegistroController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := c.registroService.Obtener(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, fmt.Sprintf("Registro de %s obtenido exitosamente", c.recurso)))
}

// GetByEstudiante returns the records linked to one student.
func (c *RegistroController) GetByEstudiante(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	records, err := c.registroService.PorEstudiante(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, fmt.Sprintf("Registros de %s obtenidos exitosamente", c.recurso)))
}

// Update validates the present fields and applies them to a record.
func (c *RegistroController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	fields, ok := bindFieldMap(ctx)
	if !ok {
		return
	}

	record, err := c.registroService.Actualizar(ctx, id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, fmt.Sprintf("Registro de %s actualizado exitosamente", c.recurso)))
}

// Delete removes a record.
func (c *RegistroController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.registroService.Eliminar(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, fmt.Sprintf("Registro de %s eliminado exitosamente", c.recurso)))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/middleware"
)

// ProgramaController handles academic program catalog endpoints.
type ProgramaController struct {
	programaService *services.ProgramaService
}

// NewProgramaController creates a new ProgramaController.
func NewProgramaController(programaService *services.ProgramaService) *ProgramaController {
	return &ProgramaController{programaService: programaService}
}

// CreatePrograma registers an academic program
// @Summary Create an academic program
// @Tags programas
// @Accept json
// @Produce json
// @Param request body object true "Program fields"
// @Success 201 {object} dto.APIResponse{data=models.Programa} "Program created"
// @Failure 400 {object} dto.APIResponse "Invalid program data"
// @Failure 409 {object} dto.APIResponse "Codigo already registered"
// @Router /programas [post]
func (c *ProgramaController) CreatePrograma(ctx *gin.Context) {
	fields, ok := bindFieldMap(ctx)
	if !ok {
		return
	}

	programa, err := c.programaService.CreatePrograma(ctx, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(programa, "Programa académico creado exitosamente"))
}

// GetProgramas lists academic programs, optionally filtered by facultad or
// nivel
// @Summary List academic programs
// @Tags programas
// @Produce json
// @Param facultad query string false "Filter by faculty"
// @Param nivel query string false "Filter by academic level"
// @Success 200 {object} dto.APIResponse{data=[]models.Programa} "Programs retrieved"
// @Router /programas [get]
func (c *ProgramaController) GetProgramas(ctx *gin.Context) {
	var err error
	var programas any

	switch {
	case ctx.Query("facultad") != "":
		programas, err = c.programaService.GetProgramasByFacultad(ctx, ctx.Query("facultad"))
	case ctx.Query("nivel") != "":
		programas, err = c.programaService.GetProgramasByNivel(ctx, ctx.Query("nivel"))
	default:
		programas, err = c.programaService.GetProgramas(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programas, "Programas obtenidos exitosamente"))
}

// GetProgramasActivos lists the programs marked Activo
// @Summary List active academic programs
// @Tags programas
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Programa} "Programs retrieved"
// @Router /programas/activos [get]
func (c *ProgramaController) GetProgramasActivos(ctx *gin.Context) {
	programas, err := c.programaService.GetProgramasActivos(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programas, "Programas obtenidos exitosamente"))
}

// GetPrograma returns one academic program
// @Summary Get an academic program
// @Tags programas
// @Produce json
// @Param id path string true "Program ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Programa} "Program retrieved"
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Router /programas/{id} [get]
func (c *ProgramaController) GetPrograma(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	programa, err := c.programaService.GetPrograma(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programa, "Programa obtenido exitosamente"))
}

// UpdatePrograma updates an academic program
// @Summary Update an academic program
// @Tags programas
// @Accept json
// @Produce json
// @Param id path string true "Program ID" Format(uuid)
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Programa} "Program updated"
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Failure 409 {object} dto.APIResponse "Codigo already registered"
// @Router /programas/{id} [put]
func (c *ProgramaController) UpdatePrograma(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	fields, ok := bindFieldMap(ctx)
	if !ok {
		return
	}

	programa, err := c.programaService.UpdatePrograma(ctx, id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programa, "Programa actualizado exitosamente"))
}

// DeletePrograma removes an academic program
// @Summary Delete an academic program
// @Tags programas
// @Produce json
// @Param id path string true "Program ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Program deleted"
// @Failure 404 {object} dto.APIResponse "Program not found"
// @Router /programas/{id} [delete]
func (c *ProgramaController) DeletePrograma(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.programaService.DeletePrograma(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Programa eliminado exitosamente"))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/middleware"
)

// EstudianteController handles student endpoints.
type EstudianteController struct {
	estudianteService *services.EstudianteService
}

// NewEstudianteController creates a new EstudianteController.
func NewEstudianteController(estudianteService *services.EstudianteService) *EstudianteController {
	return &EstudianteController{estudianteService: estudianteService}
}

// CreateEstudiante registers a student
// @Summary Register a student
// @Description Validates the student fields and registers a new student
// @Tags estudiantes
// @Accept json
// @Produce json
// @Param request body object true "Student fields"
// @Success 201 {object} dto.APIResponse{data=models.Estudiante} "Student registered"
// @Failure 400 {object} dto.APIResponse "Invalid student data"
// @Failure 409 {object} dto.APIResponse "Documento already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /estudiantes [post]
func (c *EstudianteController) CreateEstudiante(ctx *gin.Context) {
	fields, ok := bindFieldMap(ctx)
	if !ok {
		return
	}

	estudiante, err := c.estudianteService.CreateEstudiante(ctx, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(estudiante, "Estudiante registrado exitosamente"))
}

// GetEstudiantes lists every student
// @Summary List students
// @Tags estudiantes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Estudiante} "Students retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /estudiantes [get]
func (c *EstudianteController) GetEstudiantes(ctx *gin.Context) {
	if programa := ctx.Query("programa"); programa != "" {
		estudiantes, err := c.estudianteService.GetEstudiantesByPrograma(ctx, programa)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudiantes, "Estudiantes obtenidos exitosamente"))
		return
	}

	estudiantes, err := c.estudianteService.GetEstudiantes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudiantes, "Estudiantes obtenidos exitosamente"))
}

// GetEstudiante returns one student
// @Summary Get a student
// @Tags estudiantes
// @Produce json
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Estudiante} "Student retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /estudiantes/{id} [get]
func (c *EstudianteController) GetEstudiante(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	estudiante, err := c.estudianteService.GetEstudiante(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudiante, "Estudiante obtenido exitosamente"))
}

// GetEstudianteByDocumento returns one student by identity document
// @Summary Get a student by documento
// @Tags estudiantes
// @Produce json
// @Param documento path string true "Identity document"
// @Success 200 {object} dto.APIResponse{data=models.Estudiante} "Student retrieved"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /estudiantes/documento/{documento} [get]
func (c *EstudianteController) GetEstudianteByDocumento(ctx *gin.Context) {
	estudiante, err := c.estudianteService.GetEstudianteByDocumento(ctx, ctx.Param("documento"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudiante, "Estudiante obtenido exitosamente"))
}

// UpdateEstudiante updates a student
// @Summary Update a student
// @Description Applies the present fields to an existing student after validating them
// @Tags estudiantes
// @Accept json
// @Produce json
// @Param id path string true "Student ID" Format(uuid)
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Estudiante} "Student updated"
// @Failure 400 {object} dto.APIResponse "Invalid student data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /estudiantes/{id} [put]
func (c *EstudianteController) UpdateEstudiante(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	fields, ok := bindFieldMap(ctx)
	if !ok {
		return
	}

	estudiante, err := c.estudianteService.UpdateEstudiante(ctx, id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(estudiante, "Estudiante actualizado exitosamente"))
}

// DeleteEstudiante removes a student
// @Summary Delete a student
// @Tags estudiantes
// @Produce json
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 409 {object} dto.APIResponse "Student has associated records"
// @Router /estudiantes/{id} [delete]
func (c *EstudianteController) DeleteEstudiante(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.estudianteService.DeleteEstudiante(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Estudiante eliminado exitosamente"))
}

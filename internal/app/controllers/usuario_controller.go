package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/middleware"
)

// UsuarioController handles staff account endpoints.
type UsuarioController struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioController creates a new UsuarioController.
func NewUsuarioController(usuarioService *services.UsuarioService) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService}
}

// CreateUsuario registers a staff account
// @Summary Create a staff account
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.CreateUsuarioRequest true "Account information"
// @Success 201 {object} dto.APIResponse{data=models.Usuario} "Account created"
// @Failure 400 {object} dto.APIResponse "Invalid account data"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /usuarios [post]
func (c *UsuarioController) CreateUsuario(ctx *gin.Context) {
	var req dto.CreateUsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "Datos del usuario inválidos"))
		return
	}

	usuario, err := c.usuarioService.CreateUsuario(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(usuario, "Usuario creado exitosamente"))
}

// GetUsuarios lists every staff account
// @Summary List staff accounts
// @Tags usuarios
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Usuario} "Accounts retrieved"
// @Router /usuarios [get]
func (c *UsuarioController) GetUsuarios(ctx *gin.Context) {
	usuarios, err := c.usuarioService.GetUsuarios(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(usuarios, "Usuarios obtenidos exitosamente"))
}

// GetUsuario returns one staff account
// @Summary Get a staff account
// @Tags usuarios
// @Produce json
// @Param id path string true "Account ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Usuario} "Account retrieved"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /usuarios/{id} [get]
func (c *UsuarioController) GetUsuario(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	usuario, err := c.usuarioService.GetUsuario(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(usuario, "Usuario obtenido exitosamente"))
}

// UpdateUsuario updates a staff account
// @Summary Update a staff account
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path string true "Account ID" Format(uuid)
// @Param request body dto.UpdateUsuarioRequest true "Updated account information"
// @Success 200 {object} dto.APIResponse{data=models.Usuario} "Account updated"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /usuarios/{id} [put]
func (c *UsuarioController) UpdateUsuario(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "Datos del usuario inválidos"))
		return
	}

	usuario, err := c.usuarioService.UpdateUsuario(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(usuario, "Usuario actualizado exitosamente"))
}

// DeleteUsuario removes a staff account
// @Summary Delete a staff account
// @Tags usuarios
// @Produce json
// @Param id path string true "Account ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Account deleted"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /usuarios/{id} [delete]
func (c *UsuarioController) DeleteUsuario(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.usuarioService.DeleteUsuario(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Usuario eliminado exitosamente"))
}

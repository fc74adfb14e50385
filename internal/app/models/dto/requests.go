package dto

// CreateServicioRequest is the payload for registering a support service in
// the catalog.
type CreateServicioRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=100"`
	Descripcion string `json:"descripcion" binding:"required,max=255"`
	Tipo        string `json:"tipo" binding:"required,max=50"`
	Estado      *bool  `json:"estado"`
}

// UpdateServicioRequest is the payload for updating a catalog service.
// Nil fields are left untouched.
type UpdateServicioRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=100"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=255"`
	Tipo        *string `json:"tipo" binding:"omitempty,max=50"`
	Estado      *bool   `json:"estado"`
}

// CreateUsuarioRequest is the payload for registering a staff account.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Rol      string `json:"rol" binding:"required,oneof=Administrador Coordinador Docente"`
}

// UpdateUsuarioRequest is the payload for updating a staff account.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Rol      *string `json:"rol" binding:"omitempty,oneof=Administrador Coordinador Docente"`
	Activo   *bool   `json:"activo"`
}

package dto

// APIResponse is the envelope every endpoint returns. The frontend consumes
// this shape as-is, so the keys and their meaning must stay stable:
// {"success": bool, "message": string, "data"?: any, "error"?: string}.
// Field-level validation failures ride in the optional "errors" map.
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message" example:"Operación exitosa"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(data any, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope. detail is the technical
// description, message the user-facing one.
func NewErrorResponse(detail, message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Error:   detail,
	}
}

// NewValidationErrorResponse builds an error envelope carrying the per-field
// error map produced by a validation ruleset.
func NewValidationErrorResponse(message string, fields map[string]string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Error:   "Datos inválidos",
		Errors:  fields,
	}
}

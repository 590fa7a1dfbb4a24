package dto

// ErrorResponse cuerpo de error HTTP único para toda la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

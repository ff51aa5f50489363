package handlers

// ErrorResponse is the standard API error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errorBody(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

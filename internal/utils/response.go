package utils

import "github.com/gin-gonic/gin"

// ErrorInfo provides details for error responses.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the standard error envelope. Success responses are shaped
// per-endpoint (bare arrays for lists, small objects otherwise) to match
// what the frontend consumes, so only errors share an envelope.
type errorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorInfo `json:"error"`
}

// Error writes an error response with the provided API error code and message.
func Error(c *gin.Context, status int, errCode, message string) {
	c.JSON(status, errorResponse{
		Success: false,
		Error: ErrorInfo{
			Code:    errCode,
			Message: message,
		},
	})
}

// Package response writes the API's JSON envelope. Every endpoint answers
// {"success": true, "data": ...} or {"success": false, "error": {"code",
// "message"[, "details"]}}; nothing is ever returned outside the envelope.
package response

import "github.com/gin-gonic/gin"

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, successEnvelope{Success: true, Data: data})
}

// Error writes the failure envelope. code is the machine-readable constant
// clients branch on (VALIDATION_ERROR, CONFLICT, ...); message is for humans.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, errorEnvelope{
		Success: false,
		Error:   errorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails adds a details payload, typically the per-field map from
// the validator.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, errorEnvelope{
		Success: false,
		Error:   errorBody{Code: code, Message: message, Details: details},
	})
}

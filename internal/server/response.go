package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the error payload inside an error envelope.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps every error response.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// SuccessEnvelope wraps every successful response.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// RespondError writes an error envelope with the given status and code.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{Message: msg, Code: code},
	})
}

// RespondOK writes a success envelope with status 200.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: payload})
}

// RespondCreated writes a success envelope with status 201.
func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, SuccessEnvelope{Success: true, Data: payload})
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the payload serialized as-is
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload serialized as-is
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response in the `{"error": message}` envelope
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// RespondError maps an application error onto the wire. Unknown errors are
// logged and reported as a 500 without leaking their message.
func RespondError(c *gin.Context, err error) {
	if appErr := GetAppError(err); appErr != nil {
		if appErr.Code >= http.StatusInternalServerError {
			LogError("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		Error(c, appErr.Code, appErr.Message)
		return
	}
	LogError("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	InternalServerError(c, "Internal server error")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/models"
)

// envelope is the uniform response body:
// {success, data?, message?, errors?, pagination?}
type envelope struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Errors     []fieldError       `json:"errors,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

type fieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondPage(c *gin.Context, data any, pagination models.Pagination) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data, Pagination: &pagination})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Message: message})
}

func respondFieldError(c *gin.Context, field string, message string) {
	c.JSON(http.StatusBadRequest, envelope{
		Success: false,
		Message: "invalid request",
		Errors:  []fieldError{{Field: field, Message: message}},
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, envelope{
		Success: false,
		Message: "invalid request",
		Errors:  []fieldError{{Message: err.Error()}},
	})
}

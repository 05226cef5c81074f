package handlers

import (
	"net/http"
	"strconv"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Success writes the standard envelope for single payloads.
func Success(c *gin.Context, status int, message string, data any) {
	payload := gin.H{"success": true}
	if message != "" {
		payload["message"] = message
	}
	if data != nil {
		payload["data"] = data
	}
	c.JSON(status, payload)
}

// SuccessList writes the standard envelope for collections, with count.
func SuccessList(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal detail is
// logged server-side, never leaked to the caller.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		fail(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		fail(c, http.StatusNotFound, err.Error())
	case domain.IsForbidden(err):
		fail(c, http.StatusForbidden, err.Error())
	case domain.IsConflict(err):
		fail(c, http.StatusConflict, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		fail(c, http.StatusInternalServerError, "server error")
	}
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// requireActor fetches the identity set by the auth middleware.
func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "authentication required")
		return models.Actor{}, false
	}
	return actor, true
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		fail(c, http.StatusBadRequest, "request body required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return false
	}
	return true
}

package controllers

import (
	"errors"
	"net/http"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/engine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps an error to its fixed HTTP status: missing resources
// are 404, every business-rule rejection is 400, upstream catalog
// failures are 502 and anything else from the store is 500.
func writeError(c *gin.Context, err error) {
	var e *engine.Error
	if errors.As(err, &e) {
		c.JSON(statusForKind(e.Kind), app.H{"error": e.Error()})
		return
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, app.H{"error": "duplicate value for a unique field"})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}

func statusForKind(k engine.Kind) int {
	switch k {
	case engine.KindNotFound:
		return http.StatusNotFound
	case engine.KindStorage:
		return http.StatusInternalServerError
	case engine.KindUpstream:
		return http.StatusBadGateway
	default:
		// Validation and every domain-rule violation.
		return http.StatusBadRequest
	}
}

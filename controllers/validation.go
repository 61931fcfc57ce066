package controllers

import (
	"fmt"

	"Gin_postgres_library_management/engine"

	"github.com/gin-gonic/gin"
)

// Column bounds; input beyond these is rejected up front instead of
// bouncing off the varchar limits as a storage error.
const (
	maxTitleLen     = 200
	maxAuthorLen    = 500
	maxPublisherLen = 200
	maxNameLen      = 100
	maxEmailLen     = 120
)

// checkLen writes a 400 and returns false when the field is over its
// bound. Lengths count code points, matching the importer's truncation.
func checkLen(c *gin.Context, field, value string, max int) bool {
	if len([]rune(value)) > max {
		writeError(c, engine.E(engine.KindValidation,
			fmt.Sprintf("%s must be at most %d characters", field, max)))
		return false
	}
	return true
}

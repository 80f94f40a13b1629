// Package taxonomy serves the three lookup dimensions scholarships are
// filed under: categories, academic levels, and countries.
package taxonomy

import (
	"strconv"

	"github.com/fullsco/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

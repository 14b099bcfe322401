package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
)

// writeError maps an error onto the API error shape. Typed errors keep their
// status and stable code; everything else becomes a 500.
func writeError(c *gin.Context, err error) {
	e := apperr.From(err)
	c.JSON(e.Status, gin.H{"error": e.Message, "code": e.Code})
}

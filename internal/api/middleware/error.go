package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/api/models"
)

// Recovery converts panics into the uniform JSON error envelope instead of
// letting gin write a bare 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		case fmt.Stringer:
			msg = v.String()
		}
		c.JSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", msg))
		c.Abort()
	})
}

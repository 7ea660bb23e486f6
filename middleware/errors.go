package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the global catch-all for panicking handlers. The real
// panic message is only exposed outside production.
func ErrorHandler(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("❌ Unhandled error: %v", recovered)

		message := "Internal server error"
		if !production {
			message = fmt.Sprint(recovered)
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Something went wrong!",
			"message": message,
		})
	})
}

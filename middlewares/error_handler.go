package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GDG-MenuMate/MenuMate-BE/pkg/apierr"
)

// ErrorHandler renders the last error attached with c.Error as the
// {error, msg} body. apierr errors carry their own status and code;
// anything else becomes 500 INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			if apiErr.Status >= http.StatusInternalServerError {
				log.Printf("request failed: %v", apiErr)
			}
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Code, "msg": apiErr.Message})
			return
		}

		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": apierr.CodeInternal, "msg": "Unexpected error occurred"})
	}
}

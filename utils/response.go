package utils

import (
	"log"

	"github.com/gin-gonic/gin"

	"hostel-backend/apperrors"
)

// JSONError writes the API's error body shape: {"message": ...}.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondError maps a domain error onto its HTTP status. Internal errors are
// logged server-side and the underlying cause is exposed as "details" only
// outside release mode.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	status := appErr.Kind.HTTPStatus()

	if appErr.Kind == apperrors.KindInternal {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		if gin.Mode() != gin.ReleaseMode && appErr.Err != nil {
			c.JSON(status, gin.H{"message": appErr.Message, "details": appErr.Err.Error()})
			return
		}
	}

	c.JSON(status, gin.H{"message": appErr.Message})
}

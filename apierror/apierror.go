// Package apierror gives every HTTP error a machine-readable kind next to
// its human-readable message.
package apierror

import "github.com/gin-gonic/gin"

const (
	KindUnauthenticated   = "unauthenticated"
	KindForbidden         = "forbidden"
	KindNotFound          = "not_found"
	KindValidation        = "validation"
	KindExternal          = "external"
	KindSignatureMismatch = "signature_mismatch"
	KindConflict          = "conflict"
	KindInternal          = "internal"
)

func JSON(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error": kind, "message": message})
}

// Abort responds and stops the remaining handler chain. For middleware.
func Abort(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": kind, "message": message})
}

package handlers

import (
	"lolookup/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// respondError writes the {error} body with the status of the service error.
func respondError(c *gin.Context, err error, fallback string) {
	appErr := apperror.From(err, fallback)
	c.JSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
}

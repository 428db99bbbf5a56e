package api

import (
	"net/http"

	"echoforge/internal/entity"
	"echoforge/internal/platform"

	"github.com/gin-gonic/gin"
)

// ListPlatforms exposes the target catalog and tone vocabulary so
// clients can render pickers without hardcoding them.
func (h *HTTPHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"platforms": platform.All(),
		"tones":     entity.Tones(),
	})
}

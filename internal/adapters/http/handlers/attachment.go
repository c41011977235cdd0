package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondAttachment writes a file download response.
func respondAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

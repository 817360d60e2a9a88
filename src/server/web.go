package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var webFS embed.FS

// getDashboard serves the embedded single-page dashboard.
func (s *TableServer) getDashboard(c *gin.Context) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "dashboard asset missing")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

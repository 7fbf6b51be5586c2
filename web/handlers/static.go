package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the embedded single-page UI
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler creates a static handler over files
func NewStaticHandler(files fs.FS) *StaticHandler {
	return &StaticHandler{files: files}
}

// ServeStatic serves static files and the main HTML page
func (h *StaticHandler) ServeStatic(c *gin.Context) {
	name := strings.TrimPrefix(path.Clean(c.Request.URL.Path), "/")
	if name == "" || name == "." {
		name = "index.html"
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	// Set caching headers for static assets
	if name != "index.html" {
		c.Header("Cache-Control", "public, max-age=3600")
	}

	c.Data(http.StatusOK, getContentType(name), data)
}

// getContentType returns the appropriate content type for a file
func getContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}

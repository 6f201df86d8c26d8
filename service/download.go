package service

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// downloadRestored streams a previously persisted file, trying the restored
// dir first and the fallback dir second.
func (s *Server) downloadRestored(c *gin.Context) {
	name := safeName(c.Param("filename"))
	if name == "" {
		detail(c, http.StatusNotFound, detailNotFound)
		return
	}

	for _, dir := range []string{s.cfg.RestoredDir, s.cfg.FallbackDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		c.DataFromReader(http.StatusOK, info.Size(), "application/octet-stream", f, nil)
		return
	}
	detail(c, http.StatusNotFound, detailNotFound)
}

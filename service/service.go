// Package service exposes the image authentication scheme over HTTP: secure
// an upload, authenticate a secured upload, download restored images, and
// read the audit log.
package service

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/audit"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/internal/config"
	"github.com/gin-gonic/gin"
)

// An authenticate upload must hold at least a securable image plus the
// trailer.
const minAuthBytes = imageauth.MinBytes + imageauth.TrailerBytes

// Upload size and decode failure details, verbatim from the public API.
const (
	detailTooSmallSecure = "Image too small to secure. Must have at least 6144 bits (256 pixels)."
	detailTooSmallAuth   = "Image too small or lacks appended data. Must have at least 6144 bits (256 pixels)."
	detailNotFound       = "file not found"
)

// Server wires the codec, the optional audit store, and the directory
// layout into HTTP handlers.
type Server struct {
	codec *imageauth.Codec
	store *audit.DB
	cfg   config.Config
	log   *slog.Logger
}

// New builds a server. A nil codec means the default scheme, a nil store
// disables the audit log and the records endpoint, a nil logger falls back
// to slog.Default.
func New(codec *imageauth.Codec, store *audit.DB, cfg config.Config, log *slog.Logger) *Server {
	if codec == nil {
		codec, _ = imageauth.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{codec: codec, store: store, cfg: cfg, log: log}
}

// Handler assembles the route table.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests)

	r.POST("/secure", s.secure)
	r.POST("/authenticate", s.authenticate)
	r.GET("/download_restored/:filename", s.downloadRestored)
	r.GET("/records", s.records)
	r.GET("/healthz", s.healthz)
	return r
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.log.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// detail writes the error body shape shared by every failure response.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// invalidImageDetail renders a decode failure. The wrapped sentinel text is
// replaced by the capitalized public form.
func invalidImageDetail(err error) string {
	msg := strings.TrimPrefix(err.Error(), imageauth.ErrInvalidImage.Error()+": ")
	return "Invalid image bytes: " + msg
}

// safeName reduces a client-supplied name to a bare file name. Returns ""
// when nothing safe remains.
func safeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "/" || name == "." || name == ".." {
		return ""
	}
	return name
}

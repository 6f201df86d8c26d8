package service

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/audit"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/imagecodec"
	"github.com/gin-gonic/gin"
)

// authenticate splits the trailer off the upload, verifies the image, and
// reports the verdict together with the restored image.
func (s *Server) authenticate(c *gin.Context) {
	name, data, ok := s.readUpload(c)
	if !ok {
		return
	}
	if len(data) < minAuthBytes {
		detail(c, http.StatusBadRequest, detailTooSmallAuth)
		return
	}

	trailer := data[len(data)-imageauth.TrailerBytes:]
	imageBytes := data[:len(data)-imageauth.TrailerBytes]

	img, format, err := imagecodec.Decode(imageBytes)
	if err != nil {
		detail(c, http.StatusBadRequest, invalidImageDetail(err))
		return
	}

	report, err := s.codec.Authenticate(c.Request.Context(), img, trailer)
	if err != nil {
		if errors.Is(err, imageauth.ErrImageTooSmall) {
			detail(c, http.StatusBadRequest, detailTooSmallAuth)
			return
		}
		s.log.Error("authenticate failed", "filename", name, "err", err)
		detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	restoredBytes, used, err := imagecodec.EncodeBytes(report.Restored, format)
	if err != nil {
		s.log.Error("encode restored failed", "filename", name, "format", format, "err", err)
		detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	s.record(&audit.Entry{
		Op:         audit.OpAuthenticate,
		Filename:   name,
		Format:     used.String(),
		Width:      report.Restored.Bounds().Dx(),
		Height:     report.Restored.Bounds().Dy(),
		SizeBytes:  len(data),
		Authentic:  audit.Bool(report.Authentic),
		Percentage: audit.Float(report.Percentage),
	})
	s.log.Info("authenticated image",
		"filename", name, "authentic", report.Authentic, "percentage", report.Percentage)

	body := gin.H{
		"authentic":                 report.Authentic,
		"message":                   report.Message(),
		"authentication_percentage": report.Percentage,
		"restored_image_b64":        base64.StdEncoding.EncodeToString(restoredBytes),
	}
	if restoredName := s.persistRestored(name, restoredBytes); restoredName != "" {
		body["restored_filename"] = restoredName
	}
	c.JSON(http.StatusOK, body)
}

// persistRestored writes the restored image under the restored dir so the
// download endpoint can serve it later. Best effort; returns "" on failure.
func (s *Server) persistRestored(name string, data []byte) string {
	if s.cfg.RestoredDir == "" {
		return ""
	}
	restoredName := "restored_" + name
	path := filepath.Join(s.cfg.RestoredDir, restoredName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.log.Warn("persist restored failed", "path", path, "err", err)
		return ""
	}
	return restoredName
}

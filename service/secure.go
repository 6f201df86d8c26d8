package service

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	imageauth "github.com/Jagruthi1003/Verifying-Image-Authenticity"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/audit"
	"github.com/Jagruthi1003/Verifying-Image-Authenticity/imagecodec"
	"github.com/gin-gonic/gin"
)

// secure embeds the pixel digest into the uploaded image and streams back
// the re-encoded image with the trailer appended.
func (s *Server) secure(c *gin.Context) {
	name, data, ok := s.readUpload(c)
	if !ok {
		return
	}
	if len(data) < imageauth.MinBytes {
		detail(c, http.StatusBadRequest, detailTooSmallSecure)
		return
	}

	img, format, err := imagecodec.Decode(data)
	if err != nil {
		detail(c, http.StatusBadRequest, invalidImageDetail(err))
		return
	}

	res, err := s.codec.Secure(c.Request.Context(), img)
	if err != nil {
		if errors.Is(err, imageauth.ErrImageTooSmall) {
			detail(c, http.StatusBadRequest, detailTooSmallSecure)
			return
		}
		s.log.Error("secure failed", "filename", name, "err", err)
		detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	encoded, used, err := imagecodec.EncodeBytes(res.Image, format)
	if err != nil {
		s.log.Error("encode failed", "filename", name, "format", format, "err", err)
		detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	s.record(&audit.Entry{
		Op:         audit.OpSecure,
		Filename:   name,
		Format:     used.String(),
		Width:      res.Image.Bounds().Dx(),
		Height:     res.Image.Bounds().Dy(),
		SizeBytes:  len(data),
		Similarity: audit.Float(res.Similarity),
	})
	s.log.Info("secured image",
		"filename", name, "format", used, "bytes", len(data), "similarity", res.Similarity)

	c.Header("Content-Disposition", "attachment; filename=secured_"+name)
	c.Header("X-Embedding-Similarity", fmt.Sprintf("%.6f", res.Similarity))
	c.Data(http.StatusOK, used.MIME(), append(encoded, res.Trailer...))
}

// readUpload pulls the multipart "file" field into memory.
func (s *Server) readUpload(c *gin.Context) (name string, data []byte, ok bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		detail(c, http.StatusBadRequest, "missing multipart field 'file'")
		return "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		detail(c, http.StatusBadRequest, "unreadable upload")
		return "", nil, false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		detail(c, http.StatusBadRequest, "unreadable upload")
		return "", nil, false
	}
	name = safeName(fh.Filename)
	if name == "" {
		name = "image"
	}
	return name, data, true
}

// record writes an audit entry when the store is enabled.
func (s *Server) record(entry *audit.Entry) {
	if s.store == nil {
		return
	}
	if _, err := s.store.Record(entry); err != nil {
		s.log.Warn("audit record failed", "op", entry.Op, "err", err)
	}
}

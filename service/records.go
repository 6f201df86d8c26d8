package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRecordLimit = 50

type recordJSON struct {
	ID        int64  `json:"id"`
	Op        string `json:"op"`
	Filename  string `json:"filename"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int    `json:"size_bytes"`

	Authentic  *bool    `json:"authentic,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Similarity *float64 `json:"similarity,omitempty"`

	CreatedAt string `json:"created_at"`
}

// records lists the latest audit entries, newest first.
func (s *Server) records(c *gin.Context) {
	if s.store == nil {
		detail(c, http.StatusNotFound, "audit log not enabled")
		return
	}

	limit := defaultRecordLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			detail(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.store.Recent(limit)
	if err != nil {
		s.log.Error("records query failed", "err", err)
		detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]recordJSON, 0, len(entries))
	for _, e := range entries {
		r := recordJSON{
			ID:        e.ID,
			Op:        e.Op,
			Filename:  e.Filename,
			Format:    e.Format,
			Width:     e.Width,
			Height:    e.Height,
			SizeBytes: e.SizeBytes,
			CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
		}
		if e.Authentic.Valid {
			r.Authentic = &e.Authentic.Bool
		}
		if e.Percentage.Valid {
			r.Percentage = &e.Percentage.Float64
		}
		if e.Similarity.Valid {
			r.Similarity = &e.Similarity.Float64
		}
		out = append(out, r)
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

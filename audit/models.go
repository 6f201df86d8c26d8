package audit

import (
	"database/sql"
	"time"
)

// Operation labels stored in the op column.
const (
	OpSecure       = "secure"
	OpAuthenticate = "authenticate"
)

type (
	// Entry represents one logged operation. Authentic and Percentage are
	// set for authenticate rows, Similarity for secure rows.
	Entry struct {
		ID        int64
		Op        string
		Filename  string
		Format    string
		Width     int
		Height    int
		SizeBytes int

		Authentic  sql.NullBool
		Percentage sql.NullFloat64
		Similarity sql.NullFloat64

		CreatedAt time.Time
	}

	// AuthPoint is one authenticate outcome, used for charting.
	AuthPoint struct {
		ID         int64
		CreatedAt  time.Time
		Authentic  bool
		Percentage float64
	}

	// DayStats aggregates one day of one operation kind.
	DayStats struct {
		Day        string
		Op         string
		Total      int
		Authentic  int
		AvgPercent float64
	}
)

// Bool wraps a value into a valid sql.NullBool.
func Bool(v bool) sql.NullBool { return sql.NullBool{Bool: v, Valid: true} }

// Float wraps a value into a valid sql.NullFloat64.
func Float(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }

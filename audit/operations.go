package audit

import (
	"fmt"
	"time"
)

// Record inserts an entry and returns its ID. A zero CreatedAt is stamped
// with the current UTC time.
func (d *DB) Record(entry *Entry) (int64, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	result, err := d.db.Exec(`
		INSERT INTO operations (
			op, filename, format, width, height, size_bytes,
			authentic, percentage, similarity, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Op,
		entry.Filename,
		entry.Format,
		entry.Width,
		entry.Height,
		entry.SizeBytes,
		entry.Authentic,
		entry.Percentage,
		entry.Similarity,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert operation: %w", err)
	}
	return result.LastInsertId()
}

// Recent retrieves the latest entries, newest first.
func (d *DB) Recent(limit int) ([]*Entry, error) {
	rows, err := d.db.Query(`
		SELECT id, op, filename, format, width, height, size_bytes,
		       authentic, percentage, similarity, created_at
		FROM operations
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			e       Entry
			created string
		)
		err := rows.Scan(
			&e.ID, &e.Op, &e.Filename, &e.Format, &e.Width, &e.Height, &e.SizeBytes,
			&e.Authentic, &e.Percentage, &e.Similarity, &created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// CountOperations counts total logged operations
func (d *DB) CountOperations() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM operations").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count operations: %w", err)
	}
	return count, nil
}

// AuthPoints returns every authenticate outcome in insertion order, for
// charting percentage over time.
func (d *DB) AuthPoints() ([]*AuthPoint, error) {
	rows, err := d.db.Query(`
		SELECT id, created_at, authentic, percentage
		FROM operations
		WHERE op = ? AND percentage IS NOT NULL
		ORDER BY id
	`, OpAuthenticate)
	if err != nil {
		return nil, fmt.Errorf("failed to query auth points: %w", err)
	}
	defer rows.Close()

	var points []*AuthPoint
	for rows.Next() {
		var (
			p       AuthPoint
			created string
		)
		if err := rows.Scan(&p.ID, &created, &p.Authentic, &p.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan auth point: %w", err)
		}
		if p.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		points = append(points, &p)
	}
	return points, rows.Err()
}

// DailyStats returns per-day aggregates from the daily_stats view.
func (d *DB) DailyStats() ([]*DayStats, error) {
	rows, err := d.db.Query(`
		SELECT day, op, total, authentic_count, COALESCE(avg_percentage, 0)
		FROM daily_stats
		ORDER BY day, op
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	var stats []*DayStats
	for rows.Next() {
		var s DayStats
		err := rows.Scan(&s.Day, &s.Op, &s.Total, &s.Authentic, &s.AvgPercent)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}

package audit

const schema = `
-- Operations table: one row per secure or authenticate call
CREATE TABLE IF NOT EXISTS operations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    op TEXT NOT NULL,
    filename TEXT NOT NULL,
    format TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size_bytes INTEGER NOT NULL,

    -- authenticate only
    authentic BOOLEAN,
    percentage REAL,

    -- secure only
    similarity REAL,

    created_at TEXT NOT NULL
);

-- Indexes for performance
CREATE INDEX IF NOT EXISTS idx_operations_op ON operations(op);
CREATE INDEX IF NOT EXISTS idx_operations_created ON operations(created_at);

-- View for per-day aggregation
CREATE VIEW IF NOT EXISTS daily_stats AS
SELECT
    substr(created_at, 1, 10) AS day,
    op,
    COUNT(*) AS total,
    SUM(CASE WHEN authentic THEN 1 ELSE 0 END) AS authentic_count,
    AVG(percentage) AS avg_percentage
FROM operations
GROUP BY day, op;
`

package sqlite

const historyMigration = `
CREATE TABLE IF NOT EXISTS search_history (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    query        TEXT    NOT NULL,
    result_count INTEGER NOT NULL,
    run_at       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_search_history_run_at ON search_history (run_at);
`

const insertSearchSQL = `
INSERT INTO search_history (query, result_count, run_at)
VALUES (?, ?, ?)
`

const recentSearchesSQL = `
SELECT id, query, result_count, run_at
FROM search_history
ORDER BY run_at DESC, id DESC
LIMIT ?
`

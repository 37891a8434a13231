package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Recorder logs displayed words to a SQLite database.
type Recorder struct {
	db *sql.DB
}

// Shown is one history row.
type Shown struct {
	Word string
	At   time.Time
}

// WordCount aggregates how often a word was displayed.
type WordCount struct {
	Word  string
	Count int
}

// Open opens (and if needed creates) the history database at path.
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS shown_words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			shown_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shown_words_at ON shown_words(shown_at)`,
		`CREATE INDEX IF NOT EXISTS idx_shown_words_word ON shown_words(word)`,
	}
	for _, q := range schema {
		if _, err := db.Exec(q); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create history schema: %w", err)
		}
	}

	return &Recorder{db: db}, nil
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Record logs that word was displayed now.
func (r *Recorder) Record(word string) error {
	_, err := r.db.Exec(
		`INSERT INTO shown_words (word, shown_at) VALUES (?, ?)`,
		word, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record word: %w", err)
	}
	return nil
}

// Recent returns up to limit history rows, newest first.
func (r *Recorder) Recent(limit int) ([]Shown, error) {
	rows, err := r.db.Query(
		`SELECT word, shown_at FROM shown_words ORDER BY shown_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var result []Shown
	for rows.Next() {
		var word string
		var at int64
		if err := rows.Scan(&word, &at); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		result = append(result, Shown{Word: word, At: time.Unix(at, 0)})
	}
	return result, rows.Err()
}

// TopWords returns the most frequently displayed words.
func (r *Recorder) TopWords(limit int) ([]WordCount, error) {
	rows, err := r.db.Query(
		`SELECT word, COUNT(*) AS n FROM shown_words GROUP BY word ORDER BY n DESC, word LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query word counts: %w", err)
	}
	defer rows.Close()

	var result []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		result = append(result, wc)
	}
	return result, rows.Err()
}

package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveHistory moves the history database aside into an archive directory
// with a timestamped name, so a fresh database starts on the next run.
func ArchiveHistory(dbPath string) error {
	if dbPath == "" {
		return fmt.Errorf("no history database configured (--history-db)")
	}

	// Check if the database exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("history database does not exist: %s", dbPath)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(dbPath)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("history-%s.db", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("history-%s.db", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Move the database into the archive
	if err := os.Rename(dbPath, archivePath); err != nil {
		return fmt.Errorf("failed to archive history database: %w", err)
	}

	fmt.Printf("History database archived to: %s\n", archivePath)
	return nil
}

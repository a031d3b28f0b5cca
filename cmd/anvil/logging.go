package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "anvil.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// renameLog is swapped in tests to force a failed rotation
var renameLog = os.Rename

// setupLogging routes the standard logger to logs/anvil.log when debug is set
// Logging is discarded otherwise so nothing reaches the terminal while the screen is active
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateErr := rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		log.Printf("log rotation: %v", rotateErr)
	}
	return f
}

// rotateLog renames an oversized log to a timestamped file.
// If the rename fails the log is truncated so the size cap still holds.
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	rotated := filepath.Join(logDir, fmt.Sprintf("anvil-%s.log", time.Now().Format("20060102-150405")))
	if err := renameLog(logPath, rotated); err != nil {
		if terr := os.Truncate(logPath, 0); terr != nil {
			return fmt.Errorf("rename %s: %w; truncate: %v", logPath, err, terr)
		}
		return fmt.Errorf("rename %s: %w (truncated instead)", logPath, err)
	}
	return nil
}

package migrator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// RunLog is the durable record of a migration run: an append-only file
// of timestamped lines, one per batch outcome. Console logging is
// separate; the file survives the process.
type RunLog struct {
	file   *os.File
	logger *slog.Logger
	runID  string
}

func OpenRunLog(path string) (*RunLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration log %s: %w", path, err)
	}

	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(file, nil)).With("run_id", runID)

	return &RunLog{file: file, logger: logger, runID: runID}, nil
}

func (l *RunLog) Logger() *slog.Logger {
	return l.logger
}

func (l *RunLog) RunID() string {
	return l.runID
}

func (l *RunLog) Close() error {
	return l.file.Close()
}

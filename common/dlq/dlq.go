// Package dlq stores envelopes that could not be turned into audit records
// so they can be inspected and replayed later.
package dlq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
)

// DefaultBasePath is used when NewQueue is given an empty path.
const DefaultBasePath = "/var/lib/telhawk-audit/dlq"

var (
	// ErrDisabled is returned by read operations on a nil Queue.
	ErrDisabled = errors.New("dlq not enabled")
	// ErrNotFound is returned when no entry matches an id.
	ErrNotFound = errors.New("dlq entry not found")
)

// Entry captures a rejected envelope for replay.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Subject   string    `json:"subject,omitempty"`
	Payload   []byte    `json:"payload"`
	Error     string    `json:"error"`
}

// Stats summarizes the queue state.
type Stats struct {
	Enabled      bool   `json:"enabled"`
	Written      uint64 `json:"written"`
	PendingFiles int    `json:"pending_files"`
	BasePath     string `json:"base_path,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Queue writes rejected envelopes to disk, one JSON file per entry.
// A nil *Queue is valid and discards writes.
type Queue struct {
	basePath string
	logger   *logging.Logger
	mu       sync.Mutex
	written  uint64
}

// NewQueue creates a DLQ that writes to the specified directory.
func NewQueue(basePath string, logger *logging.Logger) (*Queue, error) {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	if logger == nil {
		logger = logging.Default()
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create dlq directory: %w", err)
	}

	return &Queue{basePath: basePath, logger: logger}, nil
}

// Write records a rejected payload and returns the entry id.
func (q *Queue) Write(ctx context.Context, source, subject string, payload []byte, cause error) (string, error) {
	if q == nil {
		return "", nil
	}

	now := time.Now().UTC()
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: now,
		Source:    source,
		Subject:   subject,
		Payload:   payload,
		Error:     cause.Error(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal dlq entry: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	filename := fmt.Sprintf("failed_%d_%s.json", now.Unix(), entry.ID)
	if err := os.WriteFile(filepath.Join(q.basePath, filename), data, 0o644); err != nil {
		q.logger.ErrorContext(ctx, "Failed to write DLQ entry", logging.Error(err))
		return "", fmt.Errorf("write dlq entry: %w", err)
	}

	q.written++
	q.logger.WarnContext(ctx, "Envelope written to DLQ",
		"dlq_id", entry.ID,
		"source", source,
		logging.Error(cause),
	)
	return entry.ID, nil
}

// Stats returns DLQ metrics.
func (q *Queue) Stats() Stats {
	if q == nil {
		return Stats{}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	stats := Stats{Enabled: true, Written: q.written, BasePath: q.basePath}
	files, err := q.entryFiles()
	if err != nil {
		stats.Error = err.Error()
		return stats
	}
	stats.PendingFiles = len(files)
	return stats
}

// List returns up to limit entries, oldest first. A limit <= 0 returns all.
func (q *Queue) List(_ context.Context, limit int) ([]Entry, error) {
	if q == nil {
		return nil, ErrDisabled
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	files, err := q.entryFiles()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, name := range files {
		if limit > 0 && len(entries) >= limit {
			break
		}

		data, err := os.ReadFile(filepath.Join(q.basePath, name))
		if err != nil {
			q.logger.Error("Failed to read DLQ file", "file", name, logging.Error(err))
			continue
		}

		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			q.logger.Error("Failed to parse DLQ file", "file", name, logging.Error(err))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Delete removes the entry with the given id.
func (q *Queue) Delete(_ context.Context, id string) error {
	if q == nil {
		return ErrDisabled
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(q.basePath, "failed_*_"+id+".json"))
	if err != nil {
		return fmt.Errorf("search dlq files: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("delete dlq file: %w", err)
		}
	}
	return nil
}

// Purge removes all entries and returns how many were deleted.
func (q *Queue) Purge(_ context.Context) (int, error) {
	if q == nil {
		return 0, ErrDisabled
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	files, err := q.entryFiles()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, name := range files {
		if err := os.Remove(filepath.Join(q.basePath, name)); err != nil {
			q.logger.Error("Failed to delete DLQ file", "file", name, logging.Error(err))
			continue
		}
		deleted++
	}

	q.logger.Info("DLQ purged", "deleted", deleted)
	return deleted, nil
}

// entryFiles lists entry file names sorted oldest first. Callers hold q.mu.
func (q *Queue) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(q.basePath)
	if err != nil {
		return nil, fmt.Errorf("read dlq directory: %w", err)
	}

	var names []string
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "failed_") || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

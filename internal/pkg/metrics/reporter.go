package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Reporter buffers categorized metric entries and appends them as JSON to a
// log file on Flush.
type Reporter struct {
	mu      sync.Mutex
	logFile *os.File
	entries map[string][]reportEntry
}

type reportEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

func NewReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		logFile: file,
		entries: make(map[string][]reportEntry),
	}, nil
}

func (r *Reporter) Record(category string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[category] = append(r.entries[category], reportEntry{
		Timestamp: time.Now(),
		Data:      data,
	})
}

func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}

	if _, err := r.logFile.Write(append(data, '\n')); err != nil {
		return err
	}

	r.entries = make(map[string][]reportEntry)
	return nil
}

func (r *Reporter) Close() error {
	if err := r.Flush(); err != nil {
		return fmt.Errorf("failed to flush metrics: %w", err)
	}
	return r.logFile.Close()
}

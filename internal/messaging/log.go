package messaging

import "sync"

// Log is the session-scoped, append-only message log. Implementations must
// preserve insertion order; the recency reporting and the batch tests both
// depend on it.
type Log interface {
	Append(rec Record) error
	Records() ([]Record, error)
	Count() (int, error)
}

// MemoryLog is the default in-process log. Appends are serialized so a
// parallelized batch send still yields deterministic insertion order.
type MemoryLog struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryLog creates an empty in-memory log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// Append adds one record to the log.
func (l *MemoryLog) Append(rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

// Records returns a copy of the log in insertion order.
func (l *MemoryLog) Records() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out, nil
}

// Count returns the number of logged records.
func (l *MemoryLog) Count() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records), nil
}

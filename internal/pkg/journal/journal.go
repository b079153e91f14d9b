// Package journal keeps an in-process list of the most recent messages that can
// be printed on demand. One Journal is created by the composition root and
// passed to every component that records into it.
package journal

import (
	"fmt"
	"io"
	"sync"
)

// DefaultCapacity is the number of messages kept by a Journal built with New.
const DefaultCapacity = 1000

// Journal keeps the most recent messages up to its capacity. It is safe for
// concurrent use.
type Journal struct {
	mu       sync.Mutex
	capacity int
	entries  []string
}

func New() *Journal {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity returns a journal keeping at most capacity messages.
// A capacity below 1 is treated as 1.
func NewWithCapacity(capacity int) *Journal {
	return &Journal{capacity: max(capacity, 1)}
}

// Log appends message, dropping the oldest one when the journal is full.
func (j *Journal) Log(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) == j.capacity {
		copy(j.entries, j.entries[1:])
		j.entries = j.entries[:len(j.entries)-1]
	}
	j.entries = append(j.entries, message)
}

// Entries returns a copy of the recorded messages, oldest first.
func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded messages.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// WriteTo prints each message on its own line. It implements io.WriterTo.
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, entry := range j.Entries() {
		n, err := fmt.Fprintln(w, entry)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

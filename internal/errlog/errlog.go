package errlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCapacity bounds the buffer for long sessions.
const DefaultCapacity = 500

// ErrEmptyLog is returned when an export is requested with nothing buffered.
var ErrEmptyLog = errors.New("error log is empty")

const timestampLayout = "2006-01-02 15:04:05"

// Entry is one recorded client-observed failure.
type Entry struct {
	// Seq identifies the entry for the lifetime of the buffer. It keeps
	// counting across evictions and Clear, so it stays unique even as
	// display positions shift.
	Seq     uint64
	Time    time.Time
	Message string
	// Details holds a serialized diagnostic blob (request payload, backend
	// response, status, stack) when the caller supplied one.
	Details string
}

// Buffer is a fixed-capacity ring of failure entries. Appends evict the
// oldest entry once the capacity is reached. All methods are safe for
// concurrent use; an append is visible to the next read immediately.
type Buffer struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	nextSeq  uint64
	log      zerolog.Logger
}

// New returns a Buffer with the given capacity. Zero or negative values use
// DefaultCapacity. Every append is mirrored to the supplied logger.
func New(capacity int, log zerolog.Logger) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity, log: log}
}

// Append records a failure with a client-local timestamp. The details value
// is serialized to indented JSON; serialization failures fall back to the
// fmt representation rather than dropping the entry.
func (b *Buffer) Append(message string, details any) {
	entry := Entry{Time: time.Now(), Message: message}
	if details != nil {
		if blob, err := json.MarshalIndent(details, "", "  "); err == nil {
			entry.Details = string(blob)
		} else {
			entry.Details = fmt.Sprintf("%+v", details)
		}
	}

	b.mu.Lock()
	entry.Seq = b.nextSeq
	b.nextSeq++
	b.entries = append(b.entries, entry)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[len(b.entries)-b.capacity:]
	}
	b.mu.Unlock()

	b.log.Error().Str("details", entry.Details).Msg(message)
}

// Entries returns a copy of the buffer, most recent first.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[len(b.entries)-1-i] = e
	}
	return out
}

// Len reports the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()
}

// ExportText renders the buffer oldest-first for clipboard export, one
// "[timestamp] message" line per entry with detail blocks appended. An empty
// buffer fails with ErrEmptyLog.
func (b *Buffer) ExportText() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return "", ErrEmptyLog
	}

	blocks := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		var sb strings.Builder
		sb.WriteString("[")
		sb.WriteString(e.Time.Format(timestampLayout))
		sb.WriteString("] ")
		sb.WriteString(e.Message)
		if e.Details != "" {
			sb.WriteString("\ndetails:\n")
			sb.WriteString(e.Details)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n"), nil
}

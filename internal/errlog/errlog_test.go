package errlog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(capacity int) *Buffer {
	return New(capacity, zerolog.Nop())
}

func TestBuffer_EntriesNewestFirst(t *testing.T) {
	b := newTestBuffer(10)
	b.Append("first", nil)
	b.Append("second", nil)
	b.Append("third", nil)

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)
}

func TestBuffer_EvictsOldestAtCapacity(t *testing.T) {
	b := newTestBuffer(5)
	for i := range 8 {
		b.Append(fmt.Sprintf("failure %d", i), nil)
	}

	assert.Equal(t, 5, b.Len())
	entries := b.Entries()
	assert.Equal(t, "failure 7", entries[0].Message)
	assert.Equal(t, "failure 3", entries[4].Message, "entries 0-2 must have been evicted")
}

func TestBuffer_SeqSurvivesEvictionAndClear(t *testing.T) {
	b := newTestBuffer(3)
	for i := range 5 {
		b.Append(fmt.Sprintf("failure %d", i), nil)
	}

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, uint64(4), entries[0].Seq)
	assert.Equal(t, uint64(3), entries[1].Seq)
	assert.Equal(t, uint64(2), entries[2].Seq, "eviction must not renumber survivors")

	b.Clear()
	b.Append("after clear", nil)
	assert.Equal(t, uint64(5), b.Entries()[0].Seq, "sequence numbers keep counting past Clear")
}

func TestBuffer_AppendSerializesDetails(t *testing.T) {
	b := newTestBuffer(10)
	b.Append("config update failed", map[string]any{"id": 3, "error": "busy"})

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Details, `"id": 3`)
	assert.Contains(t, entries[0].Details, `"error": "busy"`)
}

func TestBuffer_EntriesReturnsACopy(t *testing.T) {
	b := newTestBuffer(10)
	b.Append("only", nil)

	entries := b.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "only", b.Entries()[0].Message)
}

func TestBuffer_RepeatedReadsAreStable(t *testing.T) {
	b := newTestBuffer(10)
	b.Append("a", nil)
	b.Append("b", nil)

	first := b.Entries()
	second := b.Entries()
	assert.Equal(t, first, second, "reading the buffer must not change it")
}

func TestBuffer_Clear(t *testing.T) {
	b := newTestBuffer(10)
	b.Append("gone", nil)
	b.Clear()

	assert.Zero(t, b.Len())
	_, err := b.ExportText()
	assert.ErrorIs(t, err, ErrEmptyLog)
}

func TestBuffer_ExportTextOldestFirst(t *testing.T) {
	b := newTestBuffer(10)
	b.Append("first", nil)
	b.Append("second", map[string]string{"status": "500"})

	text, err := b.ExportText()
	require.NoError(t, err)

	blocks := strings.Split(text, "\n\n")
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "] first")
	assert.Contains(t, blocks[1], "] second")
	assert.Contains(t, blocks[1], "details:\n")
	assert.Contains(t, blocks[1], `"status": "500"`)
}

func TestBuffer_ExportTextEmptyFails(t *testing.T) {
	_, err := newTestBuffer(10).ExportText()
	assert.ErrorIs(t, err, ErrEmptyLog)
}

func TestBuffer_ZeroCapacityUsesDefault(t *testing.T) {
	b := New(0, zerolog.Nop())
	assert.Equal(t, DefaultCapacity, b.capacity)
}

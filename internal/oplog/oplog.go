// Package oplog keeps an in-memory, ordered record of performed operations.
package oplog

import "fmt"

// Log is an append-only record of operations and their results. The zero
// value is ready to use. A Log is not safe for concurrent use.
type Log struct {
	entries []string
}

// Record appends an entry of the form "operation = result".
func (l *Log) Record(operation string, result int) {
	l.entries = append(l.entries, fmt.Sprintf("%s = %d", operation, result))
}

// Entries returns every recorded entry in call order. The returned slice
// is a copy, so callers cannot mutate the log through it.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded operations.
func (l *Log) Len() int {
	return len(l.entries)
}

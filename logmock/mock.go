package logmock

import (
	"fmt"

	"github.com/tarmac-project/testkit/logging"
)

// Config controls construction of a Mock.
type Config struct {
	// Name is stamped on entries whose source did not name a logger.
	Name string

	// Level is the minimum level recorded. The zero value records everything.
	Level logging.Level
}

// Mock records log entries for later assertions. It never writes output.
type Mock struct {
	name    string
	level   logging.Level
	entries []Entry
}

// New creates an empty Mock.
func New(cfg Config) *Mock {
	return &Mock{
		name:    cfg.Name,
		level:   cfg.Level,
		entries: []Entry{},
	}
}

// Compile-time check: Mock can stand in for a logging.Client.
var _ logging.Client = (*Mock)(nil)

func (m *Mock) enabled(level logging.Level) bool { return level >= m.level }

// record appends e when its level is enabled.
func (m *Mock) record(e Entry) {
	if !m.enabled(e.Level) {
		return
	}
	if e.Logger == "" {
		e.Logger = m.name
	}
	e.Pattern = nil
	e.byPattern = false
	m.entries = append(m.entries, e)
}

// Log records message at level.
func (m *Mock) Log(level logging.Level, message string) {
	m.record(Entry{Level: level, Message: message})
}

// Logf formats according to a format specifier and records the result at level.
func (m *Mock) Logf(level logging.Level, format string, args ...any) {
	m.record(Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (m *Mock) Trace(message string)    { m.Log(logging.Trace, message) }
func (m *Mock) Debug(message string)    { m.Log(logging.Debug, message) }
func (m *Mock) Info(message string)     { m.Log(logging.Info, message) }
func (m *Mock) Warn(message string)     { m.Log(logging.Warn, message) }
func (m *Mock) Error(message string)    { m.Log(logging.Error, message) }
func (m *Mock) Critical(message string) { m.Log(logging.Critical, message) }

// Entries returns a copy of the recorded entries in call order.
func (m *Mock) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.clone()
	}
	return out
}

// Len returns the number of recorded entries.
func (m *Mock) Len() int { return len(m.entries) }

// Reset discards every recorded entry.
func (m *Mock) Reset() { m.entries = []Entry{} }

// count returns how many recorded entries satisfy want.
func (m *Mock) count(want Entry) int {
	n := 0
	for _, e := range m.entries {
		if want.Matches(e) {
			n++
		}
	}
	return n
}

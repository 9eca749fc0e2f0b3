package logmock

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/tarmac-project/testkit/logging"
)

// Entry is a single log entry. Recorded entries always carry a Message; entries
// used as expectations carry either a Message or a Pattern.
type Entry struct {
	// Level is the severity the entry was logged at.
	Level logging.Level

	// Message is the rendered log message.
	Message string

	// Pattern, when set, matches recorded messages instead of Message.
	Pattern *regexp.Regexp

	// Logger is the name of the logger that produced the entry.
	Logger string

	// Fields holds structured context attached by zap or logr callers.
	Fields map[string]any

	// byPattern marks expectations built by MatchEntry.
	byPattern bool
}

// NewEntry returns an expectation matching message literally.
func NewEntry(level logging.Level, message string) Entry {
	return Entry{Level: level, Message: message}
}

// MatchEntry returns an expectation matching messages against pattern.
func MatchEntry(level logging.Level, pattern *regexp.Regexp) Entry {
	return Entry{Level: level, Pattern: pattern, byPattern: true}
}

// Matches reports whether the recorded entry satisfies e.
func (e Entry) Matches(recorded Entry) bool {
	if e.Level != recorded.Level {
		return false
	}
	if e.Pattern != nil {
		return e.Pattern.MatchString(recorded.Message)
	}
	return e.Message == recorded.Message
}

// String renders the entry the way assertion failures quote arguments.
func (e Entry) String() string {
	if e.Pattern != nil {
		return fmt.Sprintf("'%s', /%s/", e.Level, e.Pattern)
	}
	return fmt.Sprintf("'%s', '%s'", e.Level, e.Message)
}

// entryKey groups expectations that describe the same entry.
type entryKey struct {
	level   logging.Level
	pattern bool
	text    string
}

// validate rejects a pattern expectation whose pattern is nil. Such an entry
// would otherwise match only empty messages.
func (e Entry) validate() error {
	if e.byPattern && e.Pattern == nil {
		return fmt.Errorf("%w: pattern for %s cannot be nil", ErrInvalidExpectation, e.Level)
	}
	return nil
}

func validateAll(entries []Entry) error {
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return fmt.Errorf("expectation #%d: %w", i+1, err)
		}
	}
	return nil
}

func (e Entry) key() entryKey {
	if e.Pattern != nil {
		return entryKey{level: e.Level, pattern: true, text: e.Pattern.String()}
	}
	return entryKey{level: e.Level, text: e.Message}
}

// clone copies the entry so callers cannot mutate recorded fields.
func (e Entry) clone() Entry {
	if e.Fields != nil {
		e.Fields = maps.Clone(e.Fields)
	}
	return e
}

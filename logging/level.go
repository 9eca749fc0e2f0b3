package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity of a log entry. Higher values are more severe.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Critical
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("log level is invalid")

var levelNames = map[Level]string{
	Trace:    "Trace",
	Debug:    "Debug",
	Info:     "Info",
	Warn:     "Warn",
	Error:    "Error",
	Critical: "Critical",
}

// String returns the level name, or Level(n) for values outside the known range.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel converts a level name into a Level. Matching is case-insensitive and
// accepts the long forms "Information" and "Warning".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info", "information":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	case "critical":
		return Critical, nil
	}
	return Trace, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

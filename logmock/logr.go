package logmock

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/tarmac-project/testkit/logging"
)

// missingValue fills the value of a trailing key without a value.
const missingValue = "<no-value>"

// logrSink implements logr.LogSink on top of a Mock.
type logrSink struct {
	mock   *Mock
	name   string
	values []any
}

// Logr returns a logr.Logger that records into m. V(0) records at Info, V(1) at
// Debug and anything more verbose at Trace. Names added with WithName are joined
// with "/".
func (m *Mock) Logr() logr.Logger {
	return logr.New(&logrSink{mock: m, name: m.name})
}

func (s *logrSink) Init(logr.RuntimeInfo) {}

func (s *logrSink) Enabled(level int) bool {
	return s.mock.enabled(fromLogrLevel(level))
}

func (s *logrSink) Info(level int, msg string, keysAndValues ...any) {
	s.mock.record(Entry{
		Level:   fromLogrLevel(level),
		Message: msg,
		Logger:  s.name,
		Fields:  s.fields(nil, keysAndValues),
	})
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...any) {
	s.mock.record(Entry{
		Level:   logging.Error,
		Message: msg,
		Logger:  s.name,
		Fields:  s.fields(err, keysAndValues),
	})
}

func (s *logrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return &logrSink{mock: s.mock, name: s.name, values: values}
}

func (s *logrSink) WithName(name string) logr.LogSink {
	full := name
	if s.name != "" {
		full = s.name + "/" + name
	}
	return &logrSink{mock: s.mock, name: full, values: s.values}
}

// fields flattens the sink values, the call's key/value pairs and err into a map.
func (s *logrSink) fields(err error, keysAndValues []any) map[string]any {
	if len(s.values) == 0 && len(keysAndValues) == 0 && err == nil {
		return nil
	}

	out := make(map[string]any)
	addPairs(out, s.values)
	addPairs(out, keysAndValues)
	if err != nil {
		out["error"] = err.Error()
	}
	return out
}

func addPairs(out map[string]any, kv []any) {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 < len(kv) {
			out[key] = kv[i+1]
			continue
		}
		out[key] = missingValue
	}
}

func fromLogrLevel(level int) logging.Level {
	switch {
	case level <= 0:
		return logging.Info
	case level == 1:
		return logging.Debug
	default:
		return logging.Trace
	}
}

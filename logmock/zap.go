package logmock

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tarmac-project/testkit/logging"
)

// zapCore records zap entries into a Mock.
type zapCore struct {
	mock   *Mock
	fields []zapcore.Field
}

// Core returns a zapcore.Core that records into m.
func (m *Mock) Core() zapcore.Core {
	return &zapCore{mock: m}
}

// Zap returns a *zap.Logger that records into m.
func (m *Mock) Zap() *zap.Logger {
	return zap.New(m.Core())
}

func (c *zapCore) Enabled(lvl zapcore.Level) bool {
	return c.mock.enabled(fromZapLevel(lvl))
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &zapCore{mock: c.mock, fields: merged}
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	level := fromZapLevel(ent.Level)
	// Entries written by logging.NewZap at trace level come through as debug.
	if trace, ok := enc.Fields[logging.TraceField].(bool); ok && trace && level == logging.Debug {
		level = logging.Trace
	}

	var recorded map[string]any
	if len(enc.Fields) > 0 {
		recorded = enc.Fields
	}

	c.mock.record(Entry{
		Level:   level,
		Message: ent.Message,
		Logger:  ent.LoggerName,
		Fields:  recorded,
	})
	return nil
}

func (c *zapCore) Sync() error { return nil }

// fromZapLevel maps zap levels onto logging levels. Levels above error all
// become Critical.
func fromZapLevel(lvl zapcore.Level) logging.Level {
	switch {
	case lvl < zapcore.InfoLevel:
		return logging.Debug
	case lvl == zapcore.InfoLevel:
		return logging.Info
	case lvl == zapcore.WarnLevel:
		return logging.Warn
	case lvl == zapcore.ErrorLevel:
		return logging.Error
	default:
		return logging.Critical
	}
}

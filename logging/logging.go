package logging

import (
	"go.uber.org/zap"
)

// TraceField is the boolean field NewZap attaches to trace entries so that
// readers of the zap output can tell them apart from debug entries.
const TraceField = "trace"

// Client exposes convenience helpers for emitting leveled log entries.
type Client interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
	Trace(message string)
}

// zapClient implements Client on top of a zap logger.
type zapClient struct {
	logger *zap.Logger
}

// NewZap creates a Client that emits through logger. A nil logger discards
// everything. zap has no trace level, so Trace is written at debug level with a
// TraceField set.
func NewZap(logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapClient{logger: logger}
}

func (c *zapClient) Info(message string)  { c.logger.Info(message) }
func (c *zapClient) Warn(message string)  { c.logger.Warn(message) }
func (c *zapClient) Error(message string) { c.logger.Error(message) }
func (c *zapClient) Debug(message string) { c.logger.Debug(message) }
func (c *zapClient) Trace(message string) { c.logger.Debug(message, zap.Bool(TraceField, true)) }

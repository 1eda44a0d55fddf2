package eventbus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
)

// KratosLoggerAdapter adapts a Kratos logger to Watermill's LoggerAdapter.
type KratosLoggerAdapter struct {
	logger *log.Helper
	fields watermill.LogFields
}

// NewKratosLoggerAdapter creates a new Watermill logger adapter.
func NewKratosLoggerAdapter(logger log.Logger) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: log.NewHelper(logger),
		fields: make(watermill.LogFields),
	}
}

func (l *KratosLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.Log(log.LevelError, l.keyvals(msg, fields, err)...)
}

func (l *KratosLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.logger.Log(log.LevelInfo, l.keyvals(msg, fields, nil)...)
}

func (l *KratosLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.logger.Log(log.LevelDebug, l.keyvals(msg, fields, nil)...)
}

func (l *KratosLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.logger.Log(log.LevelDebug, l.keyvals(msg, fields, nil)...)
}

// With returns a logger with additional fields attached to every entry.
func (l *KratosLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: l.logger,
		fields: l.fields.Add(fields),
	}
}

func (l *KratosLoggerAdapter) keyvals(msg string, fields watermill.LogFields, err error) []interface{} {
	keyvals := []interface{}{"msg", msg}
	for k, v := range l.fields.Add(fields) {
		keyvals = append(keyvals, k, v)
	}
	if err != nil {
		keyvals = append(keyvals, "error", err)
	}
	return keyvals
}

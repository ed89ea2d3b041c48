package commands

import (
	"io"
	"slices"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// charmLogger adapts a charmbracelet logger to webex.Logger.
type charmLogger struct {
	logger *charmlog.Logger
}

// newLogger returns a stderr logger for --verbose runs.
func newLogger(w io.Writer) webex.Logger {
	return &charmLogger{
		logger: charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.DebugLevel,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "wxc",
		}),
	}
}

func (l *charmLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, keyvals(fields)...)
}

func (l *charmLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, keyvals(fields)...)
}

func (l *charmLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, keyvals(fields)...)
}

func (l *charmLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, keyvals(fields)...)
}

// keyvals flattens fields in key order.
func keyvals(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	result := make([]interface{}, 0, len(fields)*2)
	for _, key := range keys {
		result = append(result, key, fields[key])
	}

	return result
}

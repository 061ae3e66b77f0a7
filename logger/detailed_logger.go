package logger

import (
	"context"
	"fmt"
	"runtime"

	"cloud.google.com/go/logging"
)

// DetailedLogger prefixes every entry with the caller file and line.
type DetailedLogger struct {
	*Logger
}

// DetailedLoggerFromContext returns the detailed logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func DetailedLoggerFromContext(ctx context.Context) ILogger {
	if d, ok := ctx.Value(CtxDetailedLoggerKey).(*DetailedLogger); ok {
		return d
	}

	return &DetailedLogger{Logger: newDefaultLogger()}
}

func (l *DetailedLogger) emitWithCaller(s logging.Severity, msg string) {
	if _, filename, line, ok := runtime.Caller(2); ok {
		msg = fmt.Sprintf("%s:%d %s", filename, line, msg)
	}

	l.emit(s, msg)
}

func (l *DetailedLogger) Debug(v ...interface{}) {
	l.emitWithCaller(logging.Debug, fmt.Sprint(v...))
}

func (l *DetailedLogger) Info(v ...interface{}) {
	l.emitWithCaller(logging.Info, fmt.Sprint(v...))
}

func (l *DetailedLogger) Warning(v ...interface{}) {
	l.emitWithCaller(logging.Warning, fmt.Sprint(v...))
}

func (l *DetailedLogger) Error(v ...interface{}) {
	l.emitWithCaller(logging.Error, fmt.Sprint(v...))
}

func (l *DetailedLogger) Debugf(format string, v ...interface{}) {
	l.emitWithCaller(logging.Debug, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Infof(format string, v ...interface{}) {
	l.emitWithCaller(logging.Info, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Printf(format string, v ...interface{}) {
	l.emitWithCaller(logging.Info, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Warningf(format string, v ...interface{}) {
	l.emitWithCaller(logging.Warning, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Errorf(format string, v ...interface{}) {
	l.emitWithCaller(logging.Error, fmt.Sprintf(format, v...))
}

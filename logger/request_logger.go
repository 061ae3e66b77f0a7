package logger

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger stores the needed functionality to print a log.
type Logger struct {
	mu       sync.Mutex
	trace    string
	started  time.Time
	severity logging.Severity
	labels   map[string]string
}

func newDefaultLogger() *Logger {
	now := time.Now()
	id, _ := uuid.NewRandom()

	return &Logger{
		started: now,
		trace:   getTrace(newTraceID(now, id.String())),
		labels:  make(map[string]string),
	}
}

// Trace returns the trace stored in logger.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel allows to optionally specify key/value labels for log entry.
func (l *Logger) SetLabel(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.labels[key] = value
}

// SetLabels allows to optionally add additional labels for log entry.
func (l *Logger) SetLabels(labels map[string]string) {
	for key, value := range labels {
		l.SetLabel(key, value)
	}
}

func (l *Logger) snapshot() (logging.Severity, map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	labels := make(map[string]string, len(l.labels))
	for k, v := range l.labels {
		labels[k] = v
	}

	return l.severity, labels
}

// End writes the summarized request entry with the highest severity seen.
func (l *Logger) End(ctx *gin.Context) {
	if !cloudLogging || requestLogger == nil {
		return
	}

	severity, labels := l.snapshot()

	requestLogger.Log(logging.Entry{
		Trace:    l.trace,
		Severity: severity,
		HTTPRequest: &logging.HTTPRequest{
			Request:      ctx.Request,
			Status:       ctx.Writer.Status(),
			Latency:      time.Since(l.started),
			ResponseSize: int64(ctx.Writer.Size()),
		},
		Labels:   labels,
		Resource: resource,
	})
}

func (l *Logger) emit(s logging.Severity, msg string) {
	l.mu.Lock()
	if s > l.severity {
		l.severity = s
	}
	l.mu.Unlock()

	if cloudLogging && entryLogger != nil {
		_, labels := l.snapshot()

		entryLogger.Log(logging.Entry{
			Payload:  msg,
			Severity: s,
			Trace:    l.trace,
			Labels:   labels,
			Resource: resource,
		})
	}

	if gin.Mode() != gin.ReleaseMode {
		log.Printf("[%s] %s\n", strings.ToLower(s.String()), msg)
	}
}

func (l *Logger) Debug(v ...interface{}) {
	l.emit(logging.Debug, fmt.Sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.emit(logging.Info, fmt.Sprint(v...))
}

func (l *Logger) Warning(v ...interface{}) {
	l.emit(logging.Warning, fmt.Sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.emit(logging.Error, fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emit(logging.Debug, fmt.Sprintf(format, v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.emit(logging.Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.emit(logging.Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	l.emit(logging.Warning, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.emit(logging.Error, fmt.Sprintf(format, v...))
}

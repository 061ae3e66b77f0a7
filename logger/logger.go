package logger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/goldleaf/storefront/invoices/common"
)

const (
	// CtxLoggerKey is how request values or stored/retrieved.
	CtxLoggerKey = "app-logger"

	// CtxDetailedLoggerKey is how request values or stored/retrieved.
	CtxDetailedLoggerKey = "app-_detailed-logger"

	// requestLogID is the log name of the summarized request entries.
	requestLogID = "invoices_requests"

	// entryLogID is the log name of the entries written while serving a request.
	entryLogID = "invoices_entries"

	// labels keys for monitored resource definition
	moduleIDField  = "module_id"
	projectIDField = "project_id"
	versionIDField = "version_id"

	appEngineType = "gae_app"

	gcpLogging = "GCP_LOGGING"

	traceHeader = "X-Cloud-Trace-Context"
)

var (
	requestLogger *logging.Logger
	entryLogger   *logging.Logger
	resource      *monitoredres.MonitoredResource
	cloudLogging  bool
)

type Provider func(ctx context.Context) ILogger

// Logging owns the cloud logging client used by every request logger.
type Logging struct {
	client *logging.Client
}

// NewLogging initializes the cloud logging clients. Cloud logging is off on localhost
// unless GCP_LOGGING=true, in which case entries are only printed to stdout.
func NewLogging(ctx context.Context) (*Logging, error) {
	enabled, err := strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(!common.IsLocalhost)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", gcpLogging, err)
	}

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			moduleIDField:  common.GAEService,
			projectIDField: common.ProjectID,
			versionIDField: common.GAEVersion,
		},
		Type: appEngineType,
	}

	if !enabled {
		cloudLogging = false
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	requestLogger = client.Logger(requestLogID)
	entryLogger = client.Logger(entryLogID)
	cloudLogging = true

	return &Logging{client: client}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// Close flushes pending entries.
func (l *Logging) Close() error {
	if l == nil || l.client == nil {
		return nil
	}

	return l.client.Close()
}

// NewLogger sets gin.Context with a new logger, with the related google trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()
	d := &DetailedLogger{Logger: l}

	if ctx.Request != nil {
		if t, ok := traceIDFromHeader(ctx.Request.Header.Get(traceHeader)); ok {
			l.trace = getTrace(t)
		}
	}

	ctx.Set(CtxLoggerKey, l)
	ctx.Set(CtxDetailedLoggerKey, d)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

// traceIDFromHeader extracts "TRACE_ID" out of "TRACE_ID/SPAN_ID;o=TRACE_TRUE".
func traceIDFromHeader(h string) (string, bool) {
	i := strings.IndexByte(h, '/')
	if i <= 0 {
		return "", false
	}

	t := h[:i]
	if strings.Count(t, "0") == len(t) {
		return "", false
	}

	return t, true
}

func getTrace(id string) string {
	return fmt.Sprintf("projects/%s/traces/%s", common.ProjectID, id)
}

func newTraceID(now time.Time, suffix string) string {
	return fmt.Sprintf("%d%s", now.UnixNano(), suffix)
}

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

	"github.com/gettupp/backoffice/common"
)

const (
	// CtxLoggerKey is how request loggers are stored/retrieved.
	CtxLoggerKey = "app-logger"

	// requestLogID is the name of the log holding one summary entry per request.
	requestLogID = "gettupp_requests"

	// entryLogID is the name of the log holding the entries written during a request.
	entryLogID = "gettupp_entries"

	// labels keys for monitored resource definition
	serviceNameField  = "service_name"
	revisionNameField = "revision_name"
	projectIDField    = "project_id"
	locationField     = "location"

	cloudRunRegion = "CLOUD_RUN_REGION"
	cloudRunType   = "cloud_run_revision"

	gcpLogging = "GCP_LOGGING"
)

var (
	requestLogger *logging.Logger
	entryLogger   *logging.Logger
	resource      *monitoredres.MonitoredResource
	cloudLogging  bool
)

type Provider func(ctx context.Context) ILogger

type Logging struct {
	client *logging.Client
}

// NewLogging initializes the request & entry google cloud logging clients.
func NewLogging(ctx context.Context) (*Logging, error) {
	cloudLogging = !common.IsLocalhost

	var err error

	cloudLogging, err = strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(cloudLogging)))
	if err != nil {
		return nil, err
	}

	if !cloudLogging {
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, common.ProjectID, common.ClientOptions()...)
	if err != nil {
		return nil, err
	}

	requestLogger = client.Logger(requestLogID)
	entryLogger = client.Logger(entryLogID)

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			serviceNameField:  common.Service,
			revisionNameField: common.Version,
			projectIDField:    common.ProjectID,
			locationField:     common.GetEnv(cloudRunRegion, "us-central1"),
		},
		Type: cloudRunType,
	}

	return &Logging{client}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// Close flushes buffered entries.
func (l *Logging) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}

// NewLogger sets gin.Context with a new logger, with the related google trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(t)
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)

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

func getTrace(id string) string {
	return fmt.Sprintf("projects/%s/traces/%s", common.ProjectID, id)
}

func since(t time.Time) time.Duration {
	return time.Since(t)
}

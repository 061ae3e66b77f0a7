package web

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"reflect"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/goldleaf/storefront/invoices/common"
	"github.com/goldleaf/storefront/invoices/logger"
)

// A Handler is a type that handles a http request within our own mini
// framework.
type Handler func(ctx *gin.Context) error

// App is the entry-point into our application and what configures our context
// object for each of our http handlers.
type App struct {
	engine      *gin.Engine
	shutdown    chan os.Signal
	middlewares []Middleware
}

// NewApp creates an App value that handle a set of routes for the application.
// Sentry is only initialized when sentryDSN is set.
func NewApp(shutdown chan os.Signal, sentryDSN string, mw ...Middleware) *App {
	if sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			Release:          common.GAEVersion,
			Environment:      common.Env,
			TracesSampleRate: 1.0,
			SampleRate:       1.0,
			AttachStacktrace: true,
		}); err != nil {
			fmt.Printf("Sentry initialization failed: %v\n", err)
		} else {
			fmt.Printf("Sentry initialization, Release: %s, Environment: %s\n", common.GAEVersion, common.Env)
		}
	} else {
		fmt.Printf("Sentry initialization skipped, no SENTRY_DSN in env\n")
	}

	engine := gin.New()

	engine.Use(sentrygin.New(sentrygin.Options{
		Repanic: true,
	}))

	return &App{
		engine:      engine,
		shutdown:    shutdown,
		middlewares: mw,
	}
}

// SignalShutdown is used to gracefully shutdown the app when an integrity
// issue is identified.
func (a *App) SignalShutdown() {
	if a.shutdown == nil {
		return
	}

	a.shutdown <- syscall.SIGSTOP
}

// Handle is our mechanism for mounting Handlers for a given HTTP verb and path
// pair, this makes for really easy, convenient routing.
func (a *App) Handle(verb, path string, handler Handler, mw ...Middleware) {
	if gin.Mode() != gin.ReleaseMode {
		gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, _ int) {
			handlerName = runtime.FuncForPC(reflect.ValueOf(handler).Pointer()).Name()
			log.Printf("[debug] %-6s %-40s --> %s \n", strings.ToLower(httpMethod), absolutePath, handlerName)
		}
	}

	wrappedHandler := wrapMiddleware(mw, handler)
	wrappedHandler = wrapMiddleware(a.middlewares, wrappedHandler)

	h := func(ctx *gin.Context) {
		log, err := logger.NewLogger(ctx)
		if err != nil {
			a.SignalShutdown()
			return
		}

		defer log.End(ctx)

		ContextWithRequestData(ctx, &RequestData{
			TraceID: log.Trace(),
			Now:     time.Now(),
		})

		if err := wrappedHandler(ctx); err != nil {
			log.Errorf("*****> critical shutdown error: %s", err)
			a.SignalShutdown()

			return
		}
	}

	a.engine.Handle(verb, path, h)
}

// Post executes Handle with http method POST.
func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPost, path, handler, mw...)
}

// Get executes Handle with http method GET.
func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodGet, path, handler, mw...)
}

// ServeHTTP implements the http.Handler interface.
// this Handler wraps the gin.Engine handler so the routes are served.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.engine.ServeHTTP(w, r)
}

// NewTestApp creates a new gin App used for handler testing.
func NewTestApp(mw ...Middleware) *App {
	gin.SetMode(gin.TestMode)

	return &App{
		engine:      gin.New(),
		middlewares: mw,
	}
}

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_HandleRunsMiddlewaresInOrder(t *testing.T) {
	var calls []string

	trace := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx *gin.Context) error {
				calls = append(calls, name)
				return next(ctx)
			}
		}
	}

	app := NewTestApp(trace("app"))
	app.Get("/ping", func(ctx *gin.Context) error {
		calls = append(calls, "handler")

		v, ok := RequestDataFromContext(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, v.TraceID)

		return Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
	}, trace("route"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, []string{"app", "route", "handler"}, calls)
}

func TestGroup_PrefixesPaths(t *testing.T) {
	app := NewTestApp()
	group := NewGroup(app, "/api").NewSubgroup("/v1")

	group.Get("/hello", func(ctx *gin.Context) error {
		return Respond(ctx, nil, http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hello", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "request error exposes wrapped message",
			err:        NewRequestError(errors.New("order id is required"), http.StatusBadRequest),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"order id is required"}`,
		},
		{
			name:       "public message hides wrapped error",
			err:        NewPublicRequestError(errors.New("upload failed: 401"), http.StatusInternalServerError, "please try again"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"please try again"}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			require.NoError(t, RespondError(ctx, tt.err))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRespondRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/orders/1/invoice", nil)

	require.NoError(t, RespondRedirect(ctx, "https://cdn.example.com/invoice-1.pdf"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://cdn.example.com/invoice-1.pdf", w.Header().Get("Location"))
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown(NewShutdownError("integrity")))
	assert.False(t, IsShutdown(errors.New("other")))
	assert.False(t, IsShutdown(NewRequestError(errors.New("bad"), http.StatusBadRequest)))
}

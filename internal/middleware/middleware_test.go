package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/org-directory/internal/config"
	"github.com/deppfellow/org-directory/internal/errs"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	mws := NewMiddlewares(s)
	e := echo.New()
	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
	)
	return e
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("Should reuse the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("Should generate a request id when none is sent", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
		assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())
	})
}

func TestContextEnhancer(t *testing.T) {
	t.Run("Should expose the request logger through the request context", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(newTestServer(&buf))
		e.GET("/sections/:id", func(c echo.Context) error {
			zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
			return c.NoContent(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/sections/3", nil)
		req.Header.Set(RequestIDHeader, "req-1")

		e.ServeHTTP(httptest.NewRecorder(), req)

		line, err := buf.ReadBytes('\n')
		require.NoError(t, err)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "from service", entry["message"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "/sections/:id", entry["path"])
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("Should answer unknown routes with a detail body", func(t *testing.T) {
		e := newTestEcho(newTestServer(&bytes.Buffer{}))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]any{"detail": "Route not found"}, decodeDetail(t, rec))
	})

	t.Run("Should write application errors as they are", func(t *testing.T) {
		e := newTestEcho(newTestServer(&bytes.Buffer{}))
		e.GET("/fail", func(c echo.Context) error {
			return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: "code", Error: "is required"}})
		})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeDetail(t, rec)
		assert.Equal(t, "Validation failed", body["detail"])
		assert.Len(t, body["errors"], 1)
	})

	t.Run("Should hide internal errors and log the cause", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(newTestServer(&buf))
		e.GET("/boom", func(c echo.Context) error {
			return errors.New("password authentication failed for user app")
		})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"detail": "Internal Server Error"}, decodeDetail(t, rec))
		assert.NotContains(t, rec.Body.String(), "password")
		assert.Contains(t, buf.String(), "password authentication failed")
	})

	t.Run("Should log the cause wrapped by an internal HTTPError", func(t *testing.T) {
		var buf bytes.Buffer
		s := newTestServer(&buf)
		mws := NewMiddlewares(s)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/read/section", nil), httptest.NewRecorder())
		c.Set(LoggerKey, s.Logger)

		mws.Global.GlobalErrorHandler(
			errs.NewInternalServerError().WithCause(errors.New("relation sections does not exist")),
			c,
		)

		assert.Equal(t, http.StatusInternalServerError, c.Response().Status)
		assert.Contains(t, buf.String(), "relation sections does not exist")
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("Should map constraint violations to bad requests", func(t *testing.T) {
		e := newTestEcho(newTestServer(&bytes.Buffer{}))
		e.POST("/sections", func(c echo.Context) error {
			return &pgconn.PgError{Code: "23505", TableName: "sections", ConstraintName: "sections_code_key"}
		})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sections", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A Section with this Code already exists", decodeDetail(t, rec)["detail"])
	})

	t.Run("Should recover panics into a 500", func(t *testing.T) {
		e := newTestEcho(newTestServer(&bytes.Buffer{}))
		e.GET("/panic", func(c echo.Context) error {
			panic("nil map")
		})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", decodeDetail(t, rec)["detail"])
	})
}

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/logging"
	"heritage-api/internal/model"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(&buf, "debug")

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(base))
	e.GET("/ok", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info(c.Request().Context(), "inside handler")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/missing", func(c echo.Context) error { return apperr.ErrNotFound })
	e.GET("/boom", func(c echo.Context) error { return apperr.ErrInternal })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, reqID)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	require.Equal(t, "inside handler", lines[0]["msg"])
	require.Equal(t, reqID, lines[0]["request_id"])
	require.Equal(t, "request", lines[1]["msg"])
	require.Equal(t, float64(200), lines[1]["status"])
	require.Equal(t, "/ok", lines[1]["uri"])

	buf.Reset()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	lines = decodeLines(t, &buf)
	require.Equal(t, float64(404), lines[0]["status"])
	require.Equal(t, "INFO", lines[0]["level"])

	buf.Reset()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	lines = decodeLines(t, &buf)
	require.Equal(t, float64(500), lines[0]["status"])
	require.Equal(t, "ERROR", lines[0]["level"])
}

func TestRequestLoggerIncludesUser(t *testing.T) {
	t.Cleanup(restore)
	u := &model.User{ID: uuid.New(), Email: "a@example.com", IsActive: true}
	getUserByID = stubUsers(u)
	tokens := testTokens(t)
	gate := NewAuthenticator(&database.FakeDB{}, nil, tokens, 0)

	var buf bytes.Buffer
	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(logging.New(&buf, "info")))
	e.GET("/me", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, gate.RequireAuth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, tokens, u.ID))
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, float64(204), lines[0]["status"])
	require.Equal(t, u.ID.String(), lines[0]["user_id"])
}

func TestErrorStatus(t *testing.T) {
	require.Equal(t, http.StatusTeapot, errorStatus(echo.NewHTTPError(http.StatusTeapot)))
	require.Equal(t, http.StatusForbidden, errorStatus(apperr.ErrPermissionDenied))
}

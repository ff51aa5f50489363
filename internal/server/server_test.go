package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct{}

func (stubHandler) Register(e *echo.Echo) {
	e.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCORSPreflight(t *testing.T) {
	srv := NewServer(testLogger(), ":0", stubHandler{})

	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "apikey,content-type")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	allowed := strings.ToLower(rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.Contains(t, allowed, "apikey")
	assert.Contains(t, allowed, "x-client-info")
}

func TestCORSOnActualRequest(t *testing.T) {
	srv := NewServer(testLogger(), ":0", stubHandler{})

	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRequestValidator(t *testing.T) {
	srv := NewServer(testLogger(), ":0")

	type payload struct {
		Name string `validate:"required"`
	}
	require.Error(t, srv.Echo().Validator.Validate(&payload{}))
	require.NoError(t, srv.Echo().Validator.Validate(&payload{Name: "x"}))
}

func TestDefaultAddr(t *testing.T) {
	srv := NewServer(testLogger(), "")
	assert.Equal(t, ":8080", srv.addr)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})
	require.NoError(t, h(c))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(XRequestID))
}

func TestRequestIDReused(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(XRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})
	require.NoError(t, h(c))

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(XRequestID))
}

func TestRequestIDCustomGenerator(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestIDWithConfig(RequestIDConfig{
		GenerateFunc: func() string { return "fixed" },
	})(func(c echo.Context) error { return nil })
	require.NoError(t, h(c))

	assert.Equal(t, "fixed", rec.Header().Get(XRequestID))
}

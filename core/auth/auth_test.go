package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"stockfilter.GO/config"
)

func newServer(cfg config.Auth) *echo.Echo {
	e := echo.New()
	g := e.Group("/api")
	g.Use(Middleware(cfg))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	g.GET("/stock/status/:id", ok)
	g.GET("/open", ok)
	return e
}

func do(e *echo.Echo, path string, set func(*http.Request)) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if set != nil {
		set(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestBasicAuth(t *testing.T) {
	e := newServer(config.Auth{Type: "basic", User: "admin", Pass: "secret"})

	assert.Equal(t, http.StatusUnauthorized, do(e, "/api/stock/status/1", nil))
	assert.Equal(t, http.StatusUnauthorized, do(e, "/api/stock/status/1", func(r *http.Request) { r.SetBasicAuth("admin", "wrong") }))
	assert.Equal(t, http.StatusOK, do(e, "/api/stock/status/1", func(r *http.Request) { r.SetBasicAuth("admin", "secret") }))
}

func TestBasicAuth_EmptyUserRejects(t *testing.T) {
	e := newServer(config.Auth{})
	assert.Equal(t, http.StatusUnauthorized, do(e, "/api/open", func(r *http.Request) { r.SetBasicAuth("", "") }))
}

func TestKeyAuth(t *testing.T) {
	e := newServer(config.Auth{Type: "key", APIKey: "k-123"})

	assert.Equal(t, http.StatusBadRequest, do(e, "/api/open", nil))
	assert.Equal(t, http.StatusUnauthorized, do(e, "/api/open", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }))
	assert.Equal(t, http.StatusOK, do(e, "/api/open", func(r *http.Request) { r.Header.Set("Authorization", "Bearer k-123") }))
}

func TestSkipPaths(t *testing.T) {
	e := newServer(config.Auth{Type: "key", APIKey: "k", SkipPaths: []string{"/api/open"}})
	assert.Equal(t, http.StatusOK, do(e, "/api/open", nil))
	assert.Equal(t, http.StatusBadRequest, do(e, "/api/stock/status/1", nil))
}

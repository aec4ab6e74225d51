package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/di"
	"github.com/The-boat-boat/sponsorreel/pkg/config"
)

// The route table mixes static paths with :id params under the same
// prefixes. gin panics at registration time when those conflict, so
// building the full table is the assertion.
func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.BackendMemory, cfg.App.Backend)

	container, err := di.New(context.Background(), cfg)
	require.NoError(t, err)
	defer container.Close()

	engine := gin.New()
	require.NotPanics(t, func() { registerRoutes(engine, container) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Static sibling of /events/:id resolves without a session
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/browse", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Param route still reachable behind auth
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sponsors/sp-0001", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

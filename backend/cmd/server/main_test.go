package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                  "0",
		Env:                   "test",
		DiscordCommandPrefix:  "!tools",
		RouteCheckConcurrency: 1,
	}
}

func TestBuildRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, cleanup, err := buildRouter(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.EqualValues(t, catalog.Builtin().Len(), response["tools"])
}

func TestBuildRouter_NotesDisabledByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, cleanup, err := buildRouter(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/notes", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildRouter_NotesEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.NotesDBPath = filepath.Join(t.TempDir(), "notes.db")

	router, cleanup, err := buildRouter(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/notes", bytes.NewBufferString(`{"title":"todo","content":"ship it"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// missing title
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/notes", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuildRouter_CatalogFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "tools.yaml")
	doc := `tools:
  - id: word-counter
    name: Word Counter
    description: Count words and characters
    path: /tools/word-counter
    category: Text
    tags: [text, count]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := testConfig()
	cfg.CatalogFile = path
	router, cleanup, err := buildRouter(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tools/word-counter", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/tools/qr-code-generator", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildRouter_BadCatalogFile(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, cleanup, err := buildRouter(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
	cleanup()
}

package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"toolshelf/backend/internal/api"
	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/routecheck"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("NEO4J_URI", "")
	t.Setenv("PUBLIC_BASE_URL", "https://tools.example.com")
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	if a == nil {
		a = &app{copy: func(string) error { return nil }}
	}
	cmd := newRootCmd(a)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestList(t *testing.T) {
	setEnv(t)

	out, err := run(t, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1/4 · 46 tools")

	out, err = run(t, nil, "list", "--category", "image")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1/1 · 6 tools")

	// pages past the end clamp to the last one
	out, err = run(t, nil, "list", "--page", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 4/4")
}

func TestList_Filters(t *testing.T) {
	setEnv(t)

	out, err := run(t, nil, "list", "--match", "password-*")
	require.NoError(t, err)
	assert.Contains(t, out, "password-generator")
	assert.Contains(t, out, "password-strength-checker")
	assert.NotContains(t, out, "qr-code-generator")

	reg := catalog.Builtin()
	out, err = run(t, nil, "list", "--featured")
	require.NoError(t, err)
	assert.Contains(t, out, reg.Featured()[0].ID)

	_, err = run(t, nil, "list", "--category", "Games")
	assert.Error(t, err)

	_, err = run(t, nil, "list", "--match", "[")
	assert.Error(t, err)
}

func TestListFilter_Apply(t *testing.T) {
	reg := catalog.Builtin()

	got, err := listFilter{isNew: true}.apply(reg)
	require.NoError(t, err)
	assert.Equal(t, reg.NewTools(), got)

	got, err = listFilter{category: "Security", match: "*-generator"}.apply(reg)
	require.NoError(t, err)
	for _, d := range got {
		assert.Equal(t, catalog.CategorySecurity, d.Category)
		assert.Contains(t, d.ID, "generator")
	}
}

func TestSearch(t *testing.T) {
	setEnv(t)

	out, err := run(t, nil, "search", "QR", "code")
	require.NoError(t, err)
	assert.Contains(t, out, "qr-code-generator")
	assert.Contains(t, out, "exact")

	out, err = run(t, nil, "search", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, `No tools match "zzzz"`)
}

func TestShow(t *testing.T) {
	setEnv(t)

	var copied string
	a := &app{copy: func(s string) error {
		copied = s
		return nil
	}}
	out, err := run(t, a, "show", "password-generator", "--copy")
	require.NoError(t, err)
	assert.Contains(t, out, "Password Generator")
	assert.Contains(t, out, "password-strength-checker")
	assert.Contains(t, out, "Link copied")
	assert.Equal(t, "https://tools.example.com/tools/password-generator", copied)

	_, err = run(t, nil, "show", "no-such-tool")
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	setEnv(t)

	out, err := run(t, nil, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "All")
	assert.Contains(t, out, "46")
	assert.Contains(t, out, "Miscellaneous")
}

func TestExport(t *testing.T) {
	setEnv(t)

	out, err := run(t, nil, "export", "--format", "json")
	require.NoError(t, err)
	reg, err := catalog.Decode(bytes.NewBufferString(out), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin().All(), reg.All())

	out, err = run(t, nil, "export")
	require.NoError(t, err)
	reg, err = catalog.Decode(bytes.NewBufferString(out), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 46, reg.Len())

	_, err = run(t, nil, "export", "--format", "toml")
	assert.Error(t, err)
}

func TestCheckRoutes(t *testing.T) {
	setEnv(t)
	gin.SetMode(gin.TestMode)

	router, err := api.NewRouter(api.Options{Registry: catalog.Builtin(), Logger: zap.NewNop()})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	out, err := run(t, nil, "check-routes", "--base-url", srv.URL, "--json")
	require.NoError(t, err)

	var report routecheck.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 46, report.Checked)
	assert.Equal(t, 4, report.ListingPages)
	assert.Empty(t, report.Failures)

	_, err = run(t, nil, "check-routes", "--base-url", "not-a-url")
	assert.Error(t, err)
}

func TestSeedGraph_RequiresNeo4j(t *testing.T) {
	setEnv(t)
	_, err := run(t, nil, "seed-graph")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEO4J_URI")
}

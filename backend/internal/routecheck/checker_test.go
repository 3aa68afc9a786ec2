package routecheck

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolshelf/backend/internal/api"
	"toolshelf/backend/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newChecker(t *testing.T, srv *httptest.Server) *Checker {
	t.Helper()
	c, err := New(Options{BaseURL: srv.URL, Concurrency: 4, Client: srv.Client()})
	require.NoError(t, err)
	return c
}

func TestCheck_APIRouterPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := catalog.Builtin()
	router, err := api.NewRouter(api.Options{Registry: reg})
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	defer srv.Close()

	report, err := newChecker(t, srv).Check(context.Background(), reg)
	require.NoError(t, err)
	assert.True(t, report.OK(), "%+v", report.Failures)
	assert.Equal(t, reg.Len(), report.Checked)
	assert.Equal(t, (reg.Len()+11)/12, report.ListingPages)
}

// brokenSite serves two tools where /tools/b renders the wrong page and the
// listing links a stray path instead of /tools/b.
func brokenSite() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tools/a", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="tool-page" data-tool-id="a"></div>`)
	})
	mux.HandleFunc("/tools/b", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="tool-page" data-tool-id="a"></div>`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<a class="tool-card" href="/tools/a"></a>
<a class="tool-card" href="/tools/stray"></a>
<nav class="pager" data-page="1" data-total-pages="1"></nav>`)
	})
	return mux
}

func TestCheck_ReportsFailures(t *testing.T) {
	reg, err := catalog.New([]catalog.Descriptor{
		{ID: "a", Name: "A", Path: "/tools/a", Category: catalog.CategoryText},
		{ID: "b", Name: "B", Path: "/tools/b", Category: catalog.CategoryText},
		{ID: "c", Name: "C", Path: "/tools/c", Category: catalog.CategoryText},
	})
	require.NoError(t, err)

	srv := httptest.NewServer(brokenSite())
	defer srv.Close()

	report, err := newChecker(t, srv).Check(context.Background(), reg)
	require.NoError(t, err)
	assert.False(t, report.OK())

	reasons := map[string][]string{}
	for _, f := range report.Failures {
		reasons[f.Path] = append(reasons[f.Path], f.Reason)
	}
	assert.Equal(t, []string{`serves tool "a", want "b"`, "missing from listing"}, reasons["/tools/b"])
	assert.Equal(t, []string{"status 404", "missing from listing"}, reasons["/tools/c"])
	assert.Equal(t, []string{"listed but not in catalog"}, reasons["/tools/stray"])
	assert.NotContains(t, reasons, "/tools/a")
}

func TestCheck_Cancelled(t *testing.T) {
	srv := httptest.NewServer(brokenSite())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newChecker(t, srv).Check(ctx, catalog.Builtin())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareListing(t *testing.T) {
	got := compareListing(
		[]string{"/a", "/b", "/c"},
		[]string{"/a", "/b", "/b", "/z", "/y"},
	)
	assert.Equal(t, []Failure{
		{Path: "/b", Reason: "listed 2 times"},
		{Path: "/c", Reason: "missing from listing"},
		{Path: "/y", Reason: "listed but not in catalog"},
		{Path: "/z", Reason: "listed but not in catalog"},
	}, got)

	assert.Empty(t, compareListing([]string{"/a"}, []string{"/a"}))
}

func TestNew_RejectsRelativeBase(t *testing.T) {
	_, err := New(Options{BaseURL: "localhost:8080"})
	assert.Error(t, err)
	_, err = New(Options{BaseURL: "/relative"})
	assert.Error(t, err)
}

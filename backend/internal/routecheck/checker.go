// Package routecheck verifies a running site against the catalog: every tool
// path must serve that tool's page, and the listing must link each tool
// exactly once.
package routecheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"toolshelf/backend/internal/catalog"
	apperrors "toolshelf/backend/pkg/errors"
	"toolshelf/backend/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxListingPages stops a runaway walk when a pager never ends
const maxListingPages = 500

// Options configures a Checker
type Options struct {
	BaseURL     string
	Concurrency int
	Timeout     time.Duration
	// Client overrides the HTTP client, mainly for tests
	Client *http.Client
}

// Failure is one path that did not behave
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report is the outcome of a full check
type Report struct {
	Checked      int       `json:"checked"`
	ListingPages int       `json:"listing_pages"`
	Failures     []Failure `json:"failures"`
}

// OK reports whether no failure was recorded
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Checker fetches pages from a base URL
type Checker struct {
	base        *url.URL
	client      *http.Client
	concurrency int
	logger      *zap.Logger
}

// New validates opts and builds a Checker
func New(opts Options) (*Checker, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, apperrors.NewConfigValidationFailed("base_url", fmt.Sprintf("%q is not an absolute URL", opts.BaseURL))
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 8
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &Checker{
		base:        base,
		client:      client,
		concurrency: opts.Concurrency,
		logger:      logger.Named("routecheck"),
	}, nil
}

// Check fetches every tool path and walks the listing. Route problems are
// collected in the report; the error is only set when ctx ends early.
func (c *Checker) Check(ctx context.Context, reg *catalog.Registry) (*Report, error) {
	tools := reg.All()
	results := make([]error, len(tools))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, d := range tools {
		g.Go(func() error {
			results[i] = c.checkToolPage(gctx, d)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(tools), Failures: []Failure{}}
	for i, err := range results {
		if err == nil {
			continue
		}
		reason := err.Error()
		var mismatch *apperrors.ErrRouteMismatch
		if errors.As(err, &mismatch) {
			reason = mismatch.Reason
		}
		report.Failures = append(report.Failures, Failure{Path: tools[i].Path, Reason: reason})
	}

	listed, pages, err := c.walkListing(ctx)
	report.ListingPages = pages
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report.Failures = append(report.Failures, Failure{Path: "/", Reason: err.Error()})
	} else {
		report.Failures = append(report.Failures, compareListing(reg.Paths(), listed)...)
	}

	c.logger.Info("Route check finished",
		zap.Int("checked", report.Checked),
		zap.Int("listing_pages", report.ListingPages),
		zap.Int("failures", len(report.Failures)),
	)
	return report, nil
}

func (c *Checker) fetch(ctx context.Context, ref string) (*goquery.Document, error) {
	target, err := c.base.Parse(ref)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func (c *Checker) checkToolPage(ctx context.Context, d catalog.Descriptor) error {
	doc, err := c.fetch(ctx, d.Path)
	if err != nil {
		return apperrors.NewRouteMismatch(d.Path, err.Error())
	}

	page := doc.Find("div.tool-page")
	if page.Length() != 1 {
		return apperrors.NewRouteMismatch(d.Path, fmt.Sprintf("expected one tool page, found %d", page.Length()))
	}
	if got := page.AttrOr("data-tool-id", ""); got != d.ID {
		return apperrors.NewRouteMismatch(d.Path, fmt.Sprintf("serves tool %q, want %q", got, d.ID))
	}
	return nil
}

// walkListing follows the pager from page 1 and returns every card link in
// the order seen, duplicates included.
func (c *Checker) walkListing(ctx context.Context) ([]string, int, error) {
	var links []string
	total := 1
	page := 1
	for ; page <= total && page <= maxListingPages; page++ {
		doc, err := c.fetch(ctx, "/?page="+strconv.Itoa(page))
		if err != nil {
			return nil, page - 1, fmt.Errorf("listing page %d: %w", page, err)
		}

		if page == 1 {
			n, err := strconv.Atoi(doc.Find("nav.pager").AttrOr("data-total-pages", ""))
			if err != nil || n < 1 {
				return nil, 1, fmt.Errorf("listing page 1: missing pager")
			}
			total = n
		}

		doc.Find("a.tool-card").Each(func(_ int, s *goquery.Selection) {
			if href, ok := s.Attr("href"); ok {
				links = append(links, c.pathOf(href))
			}
		})
	}
	return links, page - 1, nil
}

// pathOf reduces a card href to a path on the checked host
func (c *Checker) pathOf(href string) string {
	u, err := c.base.Parse(href)
	if err != nil {
		return href
	}
	return u.Path
}

// compareListing reports registry paths missing from the listing, listed
// paths that are not in the registry and paths listed more than once.
func compareListing(want, listed []string) []Failure {
	expected := make(map[string]bool, len(want))
	for _, p := range want {
		expected[p] = true
	}

	seen := make(map[string]int, len(listed))
	for _, p := range listed {
		seen[p]++
	}

	var failures []Failure
	for _, p := range want {
		switch n := seen[p]; {
		case n == 0:
			failures = append(failures, Failure{Path: p, Reason: "missing from listing"})
		case n > 1:
			failures = append(failures, Failure{Path: p, Reason: fmt.Sprintf("listed %d times", n)})
		}
	}

	var extra []string
	for p := range seen {
		if !expected[p] {
			extra = append(extra, p)
		}
	}
	sort.Strings(extra)
	for _, p := range extra {
		failures = append(failures, Failure{Path: p, Reason: "listed but not in catalog"})
	}
	return failures
}

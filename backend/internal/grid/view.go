package grid

import (
	"toolshelf/backend/internal/catalog"
)

// Source is the part of the registry the grid reads
type Source interface {
	ByCategory(cat catalog.Category) []catalog.Descriptor
	Search(query string) []catalog.Descriptor
}

// Filter computes the visible list: the category view when the query is
// blank, otherwise the search results restricted to the category.
func Filter(src Source, query string, cat catalog.Category) []catalog.Descriptor {
	if cat == "" {
		cat = catalog.All
	}
	if catalog.NormalizeQuery(query) == "" {
		return src.ByCategory(cat)
	}
	hits := src.Search(query)
	if cat == catalog.All {
		return hits
	}
	out := make([]catalog.Descriptor, 0, len(hits))
	for _, d := range hits {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Request is one scheduled recomputation of the visible list
type Request struct {
	Seq      uint64
	Query    string
	Category catalog.Category
}

// Result carries the outcome of a Request back to the view
type Result struct {
	Seq   uint64
	Items []catalog.Descriptor
}

// Compute runs a Request. It is pure, so it may run on any goroutine.
func Compute(src Source, req Request) Result {
	return Result{Seq: req.Seq, Items: Filter(src, req.Query, req.Category)}
}

// View is the per-viewer grid state: query, category, page cursor, hover
// index and the last accepted list. It is not safe for concurrent use; the
// owner applies results on its own goroutine.
type View struct {
	query    string
	category catalog.Category
	page     int
	hover    int
	items    []catalog.Descriptor
	seq      uint64
	pageSize int
}

// NewView returns a view on page 1 of All, synchronously filled from src
func NewView(src Source) *View {
	v := &View{category: catalog.All, page: 1, hover: -1, pageSize: PageSize}
	v.Apply(Compute(src, v.Begin()))
	return v
}

// Query returns the active search text
func (v *View) Query() string { return v.query }

// Category returns the selected category
func (v *View) Category() catalog.Category { return v.category }

// CurrentPage returns the 1-based page number
func (v *View) CurrentPage() int { return v.page }

// TotalPages returns the page count for the current list
func (v *View) TotalPages() int { return TotalPages(len(v.items), v.pageSize) }

// Total returns the number of tools in the current list
func (v *View) Total() int { return len(v.items) }

// Items returns the cards on the current page
func (v *View) Items() []catalog.Descriptor {
	return Page(v.items, v.pageSize, v.page)
}

// Hover returns the hovered card index on the current page, or -1
func (v *View) Hover() int { return v.hover }

// SetCategory selects a category and returns the recomputation to run.
// The page resets to 1.
func (v *View) SetCategory(cat catalog.Category) Request {
	v.category = cat
	v.page = 1
	v.hover = -1
	return v.Begin()
}

// SetQuery changes the search text and returns the recomputation to run.
// The page resets to 1.
func (v *View) SetQuery(query string) Request {
	v.query = query
	v.page = 1
	v.hover = -1
	return v.Begin()
}

// Begin issues a Request for the current query and category. Any Request
// issued earlier becomes stale.
func (v *View) Begin() Request {
	v.seq++
	return Request{Seq: v.seq, Query: v.query, Category: v.category}
}

// Apply installs res if it answers the latest Request and reports whether
// it did. Stale results are dropped.
func (v *View) Apply(res Result) bool {
	if res.Seq != v.seq {
		return false
	}
	v.items = res.Items
	v.page = ClampPage(v.page, len(v.items), v.pageSize)
	v.clampHover()
	return true
}

// Refresh recomputes synchronously
func (v *View) Refresh(src Source) {
	v.Apply(Compute(src, v.Begin()))
}

// GotoPage moves to page, clamped to the valid range
func (v *View) GotoPage(page int) {
	v.page = ClampPage(page, len(v.items), v.pageSize)
	v.clampHover()
}

// NextPage advances one page, staying on the last page
func (v *View) NextPage() { v.GotoPage(v.page + 1) }

// PrevPage goes back one page, staying on page 1
func (v *View) PrevPage() { v.GotoPage(v.page - 1) }

// SetHover marks a card on the current page as hovered; out of range clears it
func (v *View) SetHover(i int) {
	v.hover = i
	v.clampHover()
}

// HoveredTool returns the hovered card, if any
func (v *View) HoveredTool() (catalog.Descriptor, bool) {
	items := v.Items()
	if v.hover < 0 || v.hover >= len(items) {
		return catalog.Descriptor{}, false
	}
	return items[v.hover], true
}

func (v *View) clampHover() {
	if v.hover >= len(v.Items()) || v.hover < -1 {
		v.hover = -1
	}
}

package api

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/icons"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"glyph": icons.ForTool,
	}).ParseFS(templateFS, "templates/*.tmpl")
}

type categoryLink struct {
	Category catalog.Category
	Glyph    string
	Count    int
	URL      string
	Active   bool
}

type indexPage struct {
	Title string
	listing
	Categories []categoryLink
	PrevURL    string
	NextURL    string
}

type toolPage struct {
	Title       string
	Tool        catalog.Descriptor
	Related     []catalog.Descriptor
	CategoryURL string
}

// listingURL renders the query string for a listing page. Defaults are
// omitted so the first page of All is always plain "/".
func listingURL(query string, cat catalog.Category, page int) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if cat != "" && cat != catalog.All {
		v.Set("category", string(cat))
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func (s *server) categoryLinks(query string, active catalog.Category) []categoryLink {
	links := []categoryLink{{
		Category: catalog.All,
		Glyph:    icons.ForCategory(catalog.All),
		Count:    s.registry.Len(),
		URL:      listingURL(query, catalog.All, 1),
		Active:   active == catalog.All,
	}}
	for _, cc := range s.registry.CategoryCounts() {
		links = append(links, categoryLink{
			Category: cc.Category,
			Glyph:    icons.ForCategory(cc.Category),
			Count:    cc.Count,
			URL:      listingURL(query, cc.Category, 1),
			Active:   active == cc.Category,
		})
	}
	return links
}

// index renders the paginated grid. Unknown categories fall back to All
// rather than failing, since the page is reached through user-edited links.
func (s *server) index(c *gin.Context) {
	params, err := parseListingParams(c)
	if err != nil {
		params.category = catalog.All
	}
	l := buildListing(s.registry, params)

	page := indexPage{
		Title:      "All tools",
		listing:    l,
		Categories: s.categoryLinks(l.Query, l.Category),
	}
	if l.Category != catalog.All {
		page.Title = string(l.Category) + " tools"
	}
	if l.Page > 1 {
		page.PrevURL = listingURL(l.Query, l.Category, l.Page-1)
	}
	if l.Page < l.TotalPages {
		page.NextURL = listingURL(l.Query, l.Category, l.Page+1)
	}

	c.HTML(http.StatusOK, "index.tmpl", page)
}

// toolPageHandler serves the shell a browser-side tool mounts into. One
// handler is registered per descriptor path.
func (s *server) toolPageHandler(d catalog.Descriptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		related, err := s.related.Related(c.Request.Context(), d.ID, constants.DefaultRelatedLimit)
		if err != nil {
			s.logger.Warn("Failed to load related tools",
				zap.String("tool_id", d.ID),
				zap.Error(err),
			)
			related = nil
		}

		c.HTML(http.StatusOK, "tool.tmpl", toolPage{
			Title:       d.Name,
			Tool:        d,
			Related:     related,
			CategoryURL: listingURL("", d.Category, 1),
		})
	}
}

func (s *server) notFound(c *gin.Context) {
	if isAPIPath(c.Request.URL.Path) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{
		"Title": "Not found",
		"Path":  c.Request.URL.Path,
	})
}

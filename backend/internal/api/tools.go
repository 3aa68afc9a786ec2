package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/grid"
	apperrors "toolshelf/backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type listingParams struct {
	query    string
	category catalog.Category
	page     int
}

// listing is one page of the filtered grid
type listing struct {
	Items      []catalog.Descriptor `json:"items"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
	Total      int                  `json:"total"`
	Category   catalog.Category     `json:"category"`
	Query      string               `json:"query"`
}

// parseListingParams reads q, category and page. A malformed page is
// treated as the first page; an unknown category is an error.
func parseListingParams(c *gin.Context) (listingParams, error) {
	p := listingParams{
		query:    strings.TrimSpace(c.Query("q")),
		category: catalog.All,
		page:     1,
	}
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p.page = n
		}
	}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		cat, ok := catalog.ParseCategory(raw)
		if !ok {
			return p, apperrors.NewUnknownCategory("", raw)
		}
		p.category = cat
	}
	return p, nil
}

func buildListing(reg *catalog.Registry, p listingParams) listing {
	items := grid.Filter(reg, p.query, p.category)
	page := grid.ClampPage(p.page, len(items), grid.PageSize)
	return listing{
		Items:      grid.Page(items, grid.PageSize, page),
		Page:       page,
		TotalPages: grid.TotalPages(len(items), grid.PageSize),
		Total:      len(items),
		Category:   p.category,
		Query:      p.query,
	}
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"tools":  s.registry.Len(),
	})
}

func (s *server) listTools(c *gin.Context) {
	params, err := parseListingParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	c.JSON(http.StatusOK, buildListing(s.registry, params))
}

func (s *server) featuredTools(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.Featured())
}

func (s *server) newTools(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.NewTools())
}

func (s *server) getTool(c *gin.Context) {
	d, err := s.registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *server) relatedTools(c *gin.Context) {
	limit := constants.DefaultRelatedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > constants.MaxRelatedLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be between 1 and %d", constants.MaxRelatedLimit)})
			return
		}
		limit = n
	}

	id := c.Param("id")
	related, err := s.related.Related(c.Request.Context(), id, limit)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
			return
		}
		s.logger.Error("Failed to find related tools", zap.String("tool_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find related tools"})
		return
	}
	c.JSON(http.StatusOK, related)
}

func (s *server) categories(c *gin.Context) {
	out := make([]catalog.CategoryCount, 0, len(catalog.Categories())+1)
	out = append(out, catalog.CategoryCount{Category: catalog.All, Count: s.registry.Len()})
	out = append(out, s.registry.CategoryCounts()...)
	c.JSON(http.StatusOK, out)
}

func (s *server) search(c *gin.Context) {
	exact := []catalog.Descriptor{}
	partial := []catalog.Descriptor{}
	for _, hit := range s.registry.SearchTiered(c.Query("q")) {
		if hit.Tier == catalog.TierExact {
			exact = append(exact, hit.Tool)
		} else {
			partial = append(partial, hit.Tool)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"exact":   exact,
		"partial": partial,
	})
}

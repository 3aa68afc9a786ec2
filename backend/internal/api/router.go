// Package api serves the tool catalog over HTTP: a JSON API under /api, the
// server-rendered grid at / and one page shell per tool path.
package api

import (
	"fmt"
	"strings"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options wires the router's dependencies
type Options struct {
	Registry *catalog.Registry
	// Related defaults to ranking inside Registry
	Related RelatedFinder
	// Notes enables the /api/notes endpoints when set
	Notes  NoteStore
	Logger *zap.Logger
}

type server struct {
	registry *catalog.Registry
	related  RelatedFinder
	notes    NoteStore
	logger   *zap.Logger
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// checkToolPath rejects descriptor paths the router cannot register as a
// plain static route of their own.
func checkToolPath(path string) error {
	switch {
	case path == "/" || path == "/health" || isAPIPath(path):
		return fmt.Errorf("tool path %q collides with a reserved route", path)
	case strings.ContainsAny(path, ":*?#"):
		return fmt.Errorf("tool path %q contains route metacharacters", path)
	}
	return nil
}

// NewRouter builds the gin engine. Every registry path becomes its own route
// so there is exactly one page per tool; any other path is a 404.
func NewRouter(opts Options) (*gin.Engine, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("api: registry is required")
	}
	for _, p := range opts.Registry.Paths() {
		if err := checkToolPath(p); err != nil {
			return nil, err
		}
	}

	s := &server{
		registry: opts.Registry,
		related:  opts.Related,
		notes:    opts.Notes,
		logger:   opts.Logger,
	}
	if s.related == nil {
		s.related = CatalogRelated{Registry: opts.Registry}
	}
	if s.logger == nil {
		s.logger = logger.Named("api")
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("api: parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(requestID())
	router.Use(ginLogger(s.logger))
	router.Use(gin.Recovery())
	router.Use(cors())

	// Health check
	router.GET("/health", s.health)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/tools", s.listTools)
		api.GET("/tools/featured", s.featuredTools)
		api.GET("/tools/new", s.newTools)
		api.GET("/tools/:id", s.getTool)
		api.GET("/tools/:id/related", s.relatedTools)
		api.GET("/categories", s.categories)
		api.GET("/search", s.search)

		if s.notes != nil {
			api.GET("/notes", s.listNotes)
			api.POST("/notes", s.createNote)
			api.GET("/notes/:id", s.getNote)
			api.PUT("/notes/:id", s.updateNote)
			api.DELETE("/notes/:id", s.deleteNote)
		}
	}

	// Pages
	router.GET("/", s.index)
	for _, d := range opts.Registry.All() {
		router.GET(d.Path, s.toolPageHandler(d))
	}
	router.NoRoute(s.notFound)

	s.logger.Debug("Router built",
		zap.Int("tool_routes", opts.Registry.Len()),
		zap.Bool("notes", s.notes != nil),
	)
	return router, nil
}

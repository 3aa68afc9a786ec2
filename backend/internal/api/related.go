package api

import (
	"context"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/pkg/logger"

	"go.uber.org/zap"
)

// RelatedFinder ranks tools related to a given tool
type RelatedFinder interface {
	Related(ctx context.Context, id string, limit int) ([]catalog.Descriptor, error)
}

// CatalogRelated ranks by shared tags inside the in-memory registry
type CatalogRelated struct {
	Registry *catalog.Registry
}

// Related implements RelatedFinder
func (c CatalogRelated) Related(_ context.Context, id string, limit int) ([]catalog.Descriptor, error) {
	return c.Registry.Related(id, limit)
}

// relatedIDSource is satisfied by graph.Repository
type relatedIDSource interface {
	RelatedTools(ctx context.Context, id string, limit int) ([]string, error)
}

// GraphRelated asks the graph mirror first and falls back to the registry
// when the mirror is unreachable or out of date.
type GraphRelated struct {
	source   relatedIDSource
	registry *catalog.Registry
	logger   *zap.Logger
}

// NewGraphRelated wraps a graph mirror for the given registry
func NewGraphRelated(source relatedIDSource, registry *catalog.Registry) *GraphRelated {
	return &GraphRelated{
		source:   source,
		registry: registry,
		logger:   logger.Named("related"),
	}
}

// Related implements RelatedFinder
func (g *GraphRelated) Related(ctx context.Context, id string, limit int) ([]catalog.Descriptor, error) {
	if _, err := g.registry.Get(id); err != nil {
		return nil, err
	}

	ids, err := g.source.RelatedTools(ctx, id, limit)
	if err != nil {
		g.logger.Warn("Graph lookup failed, using catalog",
			zap.String("tool_id", id),
			zap.Error(err),
		)
		return g.registry.Related(id, limit)
	}

	out := make([]catalog.Descriptor, 0, len(ids))
	for _, rid := range ids {
		// the mirror may lag behind a reloaded catalog
		d, err := g.registry.Get(rid)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

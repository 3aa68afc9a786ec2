package graph

import (
	"context"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	apperrors "toolshelf/backend/pkg/errors"
	"toolshelf/backend/pkg/logger"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Repository mirrors the tool catalog into Neo4j so related tools can be
// found by walking shared tags.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Named("graph"),
	}
}

// Connect opens a driver and verifies connectivity before returning it
func Connect(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}
	return driver, nil
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

var schemaStatements = []string{
	`CREATE CONSTRAINT tool_id IF NOT EXISTS FOR (t:Tool) REQUIRE t.id IS UNIQUE`,
	`CREATE CONSTRAINT tool_path IF NOT EXISTS FOR (t:Tool) REQUIRE t.path IS UNIQUE`,
	`CREATE CONSTRAINT category_name IF NOT EXISTS FOR (c:Category) REQUIRE c.name IS UNIQUE`,
	`CREATE CONSTRAINT tag_name IF NOT EXISTS FOR (g:Tag) REQUIRE g.name IS UNIQUE`,
}

// EnsureSchema creates the uniqueness constraints. Safe to call repeatedly.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	for _, stmt := range schemaStatements {
		result, err := session.Run(ctx, stmt, nil)
		if err != nil {
			return apperrors.NewGraphQueryFailed(stmt, err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return apperrors.NewGraphQueryFailed(stmt, err)
		}
	}
	return nil
}

const (
	clearLinksQuery = `
		MATCH (t:Tool)-[rel:IN_CATEGORY|TAGGED]->()
		WHERE t.id IN $ids
		DELETE rel
	`

	upsertToolsQuery = `
		UNWIND $tools AS tool
		MERGE (t:Tool {id: tool.id})
		SET t.name = tool.name,
		    t.description = tool.description,
		    t.path = tool.path,
		    t.icon = tool.icon,
		    t.featured = tool.featured,
		    t.is_new = tool.isNew,
		    t.position = tool.position,
		    t.synced_at = datetime()
		MERGE (c:Category {name: tool.category})
		MERGE (t)-[:IN_CATEGORY]->(c)
	`

	linkTagsQuery = `
		UNWIND $tools AS tool
		MATCH (t:Tool {id: tool.id})
		UNWIND tool.tags AS tagName
		MERGE (g:Tag {name: tagName})
		MERGE (t)-[:TAGGED]->(g)
	`

	pruneToolsQuery = `
		MATCH (t:Tool)
		WHERE NOT t.id IN $ids
		DETACH DELETE t
		RETURN count(*) AS removed
	`

	pruneOrphansQuery = `
		MATCH (n)
		WHERE (n:Tag OR n:Category) AND NOT (n)<--()
		DELETE n
	`
)

// SyncCatalog makes the graph match tools: every tool is merged with its
// category and tags, and tools no longer present are removed. It runs in a
// single write transaction and returns the number of pruned tools.
func (r *Repository) SyncCatalog(ctx context.Context, tools []catalog.Descriptor) (int, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	ids := make([]interface{}, 0, len(tools))
	for _, t := range tools {
		ids = append(ids, t.ID)
	}
	params := map[string]interface{}{
		"ids":   ids,
		"tools": toolParams(tools),
	}

	removed, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		for _, q := range []string{clearLinksQuery, upsertToolsQuery, linkTagsQuery} {
			result, err := tx.Run(ctx, q, params)
			if err != nil {
				return nil, apperrors.NewGraphQueryFailed(q, err)
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, apperrors.NewGraphQueryFailed(q, err)
			}
		}

		result, err := tx.Run(ctx, pruneToolsQuery, params)
		if err != nil {
			return nil, apperrors.NewGraphQueryFailed(pruneToolsQuery, err)
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, apperrors.NewGraphQueryFailed(pruneToolsQuery, err)
		}
		n := getIntFromRecord(record, "removed")

		result, err = tx.Run(ctx, pruneOrphansQuery, nil)
		if err != nil {
			return nil, apperrors.NewGraphQueryFailed(pruneOrphansQuery, err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, apperrors.NewGraphQueryFailed(pruneOrphansQuery, err)
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("Catalog synced to graph",
		zap.Int("tools", len(tools)),
		zap.Int("pruned", removed.(int)),
	)
	return removed.(int), nil
}

// RelatedTools returns the ids of up to limit tools sharing at least one
// tag with id, most shared tags first, ties in catalog order.
func (r *Repository) RelatedTools(ctx context.Context, id string, limit int) ([]string, error) {
	if limit < 1 {
		limit = constants.DefaultRelatedLimit
	}

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (t:Tool {id: $id})
		OPTIONAL MATCH (t)-[:TAGGED]->(g:Tag)<-[:TAGGED]-(other:Tool)
		WITH t, other, count(g) AS shared
		RETURN t.id AS target, collect(CASE WHEN other IS NULL THEN NULL ELSE {id: other.id, shared: shared, position: other.position} END) AS hits
	`

	result, err := session.Run(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed(query, err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperrors.NewGraphQueryFailed(query, err)
		}
		return nil, apperrors.NewToolNotFound(id)
	}

	return rankHits(result.Record(), limit), nil
}

// CategoryCounts returns the number of mirrored tools per category, in
// catalog enumeration order. Categories without tools report zero.
func (r *Repository) CategoryCounts(ctx context.Context) ([]catalog.CategoryCount, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (c:Category)<-[:IN_CATEGORY]-(t:Tool)
		RETURN c.name AS category, count(t) AS tools
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed(query, err)
	}

	counts := make(map[catalog.Category]int)
	for result.Next(ctx) {
		record := result.Record()
		counts[catalog.Category(getStringFromRecord(record, "category"))] = getIntFromRecord(record, "tools")
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewGraphQueryFailed(query, err)
	}

	out := make([]catalog.CategoryCount, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		out = append(out, catalog.CategoryCount{Category: c, Count: counts[c]})
	}
	return out, nil
}

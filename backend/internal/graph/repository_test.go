package graph

import (
	"context"
	"os"
	"testing"

	"toolshelf/backend/internal/catalog"
	apperrors "toolshelf/backend/pkg/errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func TestRankHits(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"target", "hits"},
		Values: []interface{}{
			"password-generator",
			[]interface{}{
				map[string]interface{}{"id": "b", "shared": int64(1), "position": int64(2)},
				map[string]interface{}{"id": "a", "shared": int64(3), "position": int64(9)},
				map[string]interface{}{"id": "c", "shared": int64(1), "position": int64(1)},
				map[string]interface{}{"id": "d", "shared": int64(0), "position": int64(0)},
				nil,
			},
		},
	}

	assert.Equal(t, []string{"a", "c", "b"}, rankHits(record, 10))
	assert.Equal(t, []string{"a", "c"}, rankHits(record, 2))
}

func TestRankHits_NoHits(t *testing.T) {
	record := &neo4j.Record{Keys: []string{"hits"}, Values: []interface{}{[]interface{}{}}}
	got := rankHits(record, 4)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestToolParams(t *testing.T) {
	reg := catalog.Builtin()
	params := toolParams(reg.All())

	assert.Len(t, params, reg.Len())
	first := params[0]
	assert.Equal(t, reg.All()[0].ID, first["id"])
	assert.Equal(t, int64(0), first["position"])
	assert.IsType(t, "", first["category"])
	assert.IsType(t, []interface{}{}, first["tags"])
}

// The tests below require a running Neo4j instance.
// Set NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD environment variables.
func TestRepository_SyncAndRelated(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver := createTestDriver(t)
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	reg := catalog.Builtin()
	if _, err := repo.SyncCatalog(ctx, reg.All()); err != nil {
		t.Fatalf("SyncCatalog failed: %v", err)
	}

	ids, err := repo.RelatedTools(ctx, "password-generator", 4)
	if err != nil {
		t.Fatalf("RelatedTools failed: %v", err)
	}
	want, err := reg.Related("password-generator", 4)
	if err != nil {
		t.Fatalf("Related failed: %v", err)
	}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d related tools, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i].ID {
			t.Errorf("Related[%d]: expected %s, got %s", i, want[i].ID, ids[i])
		}
	}

	counts, err := repo.CategoryCounts(ctx)
	if err != nil {
		t.Fatalf("CategoryCounts failed: %v", err)
	}
	assert.Equal(t, reg.CategoryCounts(), counts)
}

func TestRepository_SyncPrunes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver := createTestDriver(t)
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	all := catalog.Builtin().All()

	if _, err := repo.SyncCatalog(ctx, all); err != nil {
		t.Fatalf("SyncCatalog failed: %v", err)
	}
	removed, err := repo.SyncCatalog(ctx, all[1:])
	if err != nil {
		t.Fatalf("SyncCatalog failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 pruned tool, got %d", removed)
	}

	// restore the full mirror for other tests
	defer repo.SyncCatalog(ctx, all)

	_, err = repo.RelatedTools(ctx, all[0].ID, 4)
	if !apperrors.IsNotFound(err) {
		t.Errorf("Expected tool not found, got %v", err)
	}
}

func createTestDriver(t *testing.T) neo4j.DriverWithContext {
	t.Helper()

	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI not set")
	}
	user := os.Getenv("NEO4J_USER")
	if user == "" {
		user = "neo4j"
	}

	driver, err := Connect(context.Background(), uri, user, os.Getenv("NEO4J_PASSWORD"))
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	return driver
}

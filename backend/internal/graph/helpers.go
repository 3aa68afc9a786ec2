package graph

import (
	"sort"

	"toolshelf/backend/internal/catalog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ============================================================================
// Record helpers
// ============================================================================

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getIntFromRecord(record *neo4j.Record, key string) int {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return int(i)
	}
	if i, ok := val.(int); ok {
		return i
	}
	return 0
}

// toolParams flattens descriptors into the list parameter used by UNWIND
func toolParams(tools []catalog.Descriptor) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tools))
	for i, t := range tools {
		tags := make([]interface{}, 0, len(t.Tags))
		for _, tag := range t.Tags {
			tags = append(tags, tag)
		}
		out = append(out, map[string]interface{}{
			"id":          t.ID,
			"name":        t.Name,
			"description": t.Description,
			"path":        t.Path,
			"category":    string(t.Category),
			"icon":        t.Icon,
			"tags":        tags,
			"featured":    t.Featured,
			"isNew":       t.IsNew,
			"position":    int64(i),
		})
	}
	return out
}

type relatedHit struct {
	id       string
	shared   int64
	position int64
}

// rankHits orders the collected related-tool maps by shared tag count,
// then catalog position, and returns at most limit ids.
func rankHits(record *neo4j.Record, limit int) []string {
	val, _ := record.Get("hits")
	raw, _ := val.([]interface{})

	hits := make([]relatedHit, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		h := relatedHit{id: getStringFromMap(m, "id")}
		h.shared, _ = m["shared"].(int64)
		h.position, _ = m["position"].(int64)
		if h.id == "" || h.shared == 0 {
			continue
		}
		hits = append(hits, h)
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].shared != hits[j].shared {
			return hits[i].shared > hits[j].shared
		}
		return hits[i].position < hits[j].position
	})

	out := make([]string, 0, limit)
	for i := 0; i < len(hits) && i < limit; i++ {
		out = append(out, hits[i].id)
	}
	return out
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if str, ok := m[key].(string); ok {
		return str
	}
	return ""
}

package catalog

import "strings"

// Tier says how a search hit matched
type Tier string

const (
	// TierExact hits contain the query in their name
	TierExact Tier = "exact"
	// TierPartial hits match only through a tag, the category or the description
	TierPartial Tier = "partial"
)

// Hit is one search result with the tier it matched in
type Hit struct {
	Tool Descriptor `json:"tool"`
	Tier Tier       `json:"tier"`
}

// Search returns exact-tier matches followed by partial-tier matches, each
// in registry order. The query is lowercased and trimmed and then used as a
// single substring; a blank query returns an empty slice.
func (r *Registry) Search(query string) []Descriptor {
	hits := r.SearchTiered(query)
	out := make([]Descriptor, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Tool)
	}
	return out
}

// SearchTiered is Search with the tier of every hit
func (r *Registry) SearchTiered(query string) []Hit {
	q := NormalizeQuery(query)
	if q == "" {
		return []Hit{}
	}

	var exact, partial []Hit
	for _, d := range r.All() {
		switch {
		case strings.Contains(strings.ToLower(d.Name), q):
			exact = append(exact, Hit{Tool: d, Tier: TierExact})
		case matchesPartial(d, q):
			partial = append(partial, Hit{Tool: d, Tier: TierPartial})
		}
	}

	return append(append(make([]Hit, 0, len(exact)+len(partial)), exact...), partial...)
}

// NormalizeQuery lowercases and trims a raw query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func matchesPartial(d Descriptor, q string) bool {
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(string(d.Category)), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}

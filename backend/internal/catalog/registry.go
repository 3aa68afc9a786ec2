package catalog

import (
	"sort"
	"strings"

	"toolshelf/backend/internal/constants"
	apperrors "toolshelf/backend/pkg/errors"
)

// Registry is an immutable, ordered collection of tool descriptors.
// Every accessor returns copies; the zero value is an empty registry.
type Registry struct {
	tools  []Descriptor
	byID   map[string]int
	byPath map[string]int
}

// New validates descriptors and builds a registry preserving their order.
// Tags are lowercased, trimmed and deduplicated.
func New(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		tools:  make([]Descriptor, 0, len(descriptors)),
		byID:   make(map[string]int, len(descriptors)),
		byPath: make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		d = d.clone()
		if err := normalize(&d); err != nil {
			return nil, err
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, apperrors.NewDuplicateField("id", d.ID)
		}
		if _, dup := r.byPath[d.Path]; dup {
			return nil, apperrors.NewDuplicateField("path", d.Path)
		}
		r.byID[d.ID] = len(r.tools)
		r.byPath[d.Path] = len(r.tools)
		r.tools = append(r.tools, d)
	}

	return r, nil
}

// Builtin returns the registry compiled into the binary
func Builtin() *Registry {
	r, err := New(builtinTools)
	if err != nil {
		panic("catalog: invalid builtin registry: " + err.Error())
	}
	return r
}

func normalize(d *Descriptor) error {
	d.ID = strings.TrimSpace(d.ID)
	d.Name = strings.TrimSpace(d.Name)
	d.Path = strings.TrimSpace(d.Path)

	switch {
	case d.ID == "":
		return apperrors.NewInvalidDescriptor(d.Name, "id is required")
	case d.Name == "":
		return apperrors.NewInvalidDescriptor(d.ID, "name is required")
	case d.Path == "":
		return apperrors.NewInvalidDescriptor(d.ID, "path is required")
	case !strings.HasPrefix(d.Path, "/"):
		return apperrors.NewInvalidDescriptor(d.ID, "path must start with /")
	case !d.Category.Valid():
		return apperrors.NewUnknownCategory(d.ID, string(d.Category))
	}

	tags := d.Tags[:0]
	seen := make(map[string]struct{}, len(d.Tags))
	for _, tag := range d.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if _, dup := seen[tag]; dup || tag == "" {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	d.Tags = tags
	return nil
}

// Len returns the number of tools
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tools)
}

// All returns the full registry in order
func (r *Registry) All() []Descriptor {
	return r.filter(func(Descriptor) bool { return true })
}

// Featured returns tools flagged as featured
func (r *Registry) Featured() []Descriptor {
	return r.filter(func(d Descriptor) bool { return d.Featured })
}

// NewTools returns tools flagged as new
func (r *Registry) NewTools() []Descriptor {
	return r.filter(func(d Descriptor) bool { return d.IsNew })
}

// ByCategory returns every tool for All, otherwise only tools in cat.
// Unknown categories match nothing.
func (r *Registry) ByCategory(cat Category) []Descriptor {
	if cat == All {
		return r.All()
	}
	return r.filter(func(d Descriptor) bool { return d.Category == cat })
}

// Get looks a tool up by id
func (r *Registry) Get(id string) (Descriptor, error) {
	if r != nil {
		if i, ok := r.byID[id]; ok {
			return r.tools[i].clone(), nil
		}
	}
	return Descriptor{}, apperrors.NewToolNotFound(id)
}

// ByPath looks a tool up by its route
func (r *Registry) ByPath(path string) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	i, ok := r.byPath[path]
	if !ok {
		return Descriptor{}, false
	}
	return r.tools[i].clone(), true
}

// Paths returns every tool route in registry order
func (r *Registry) Paths() []string {
	paths := make([]string, 0, r.Len())
	for _, d := range r.All() {
		paths = append(paths, d.Path)
	}
	return paths
}

// CategoryCounts returns the enumeration with the number of tools in each
func (r *Registry) CategoryCounts() []CategoryCount {
	counts := make(map[Category]int)
	for _, d := range r.All() {
		counts[d.Category]++
	}
	out := make([]CategoryCount, 0, len(Categories()))
	for _, c := range Categories() {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

// Related returns up to limit other tools ranked by the number of shared
// tags, ties broken by registry order. Tools sharing no tag are excluded.
func (r *Registry) Related(id string, limit int) ([]Descriptor, error) {
	target, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = constants.DefaultRelatedLimit
	}

	want := make(map[string]struct{}, len(target.Tags))
	for _, tag := range target.Tags {
		want[tag] = struct{}{}
	}

	type scored struct {
		d     Descriptor
		score int
	}
	var hits []scored
	for _, d := range r.All() {
		if d.ID == target.ID {
			continue
		}
		score := 0
		for _, tag := range d.Tags {
			if _, ok := want[tag]; ok {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{d: d, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]Descriptor, 0, limit)
	for i := 0; i < len(hits) && i < limit; i++ {
		out = append(out, hits[i].d)
	}
	return out, nil
}

func (r *Registry) filter(keep func(Descriptor) bool) []Descriptor {
	out := []Descriptor{}
	if r == nil {
		return out
	}
	for _, d := range r.tools {
		if keep(d) {
			out = append(out, d.clone())
		}
	}
	return out
}

package catalog

import "strings"

// Category is a member of the closed tool category enumeration
type Category string

const (
	CategoryUtilities     Category = "Utilities"
	CategorySEO           Category = "SEO"
	CategoryImage         Category = "Image"
	CategoryText          Category = "Text"
	CategorySecurity      Category = "Security"
	CategoryDevelopment   Category = "Development"
	CategoryDesign        Category = "Design"
	CategoryContent       Category = "Content"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// All selects every category in ByCategory. It is not itself a category.
const All Category = "All"

// Categories returns the enumeration in display order
func Categories() []Category {
	return []Category{
		CategoryUtilities,
		CategorySEO,
		CategoryImage,
		CategoryText,
		CategorySecurity,
		CategoryDevelopment,
		CategoryDesign,
		CategoryContent,
		CategoryMiscellaneous,
	}
}

// Valid reports whether c is a member of the enumeration
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves user input case-insensitively, accepting the All sentinel.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(All)) {
		return All, true
	}
	for _, known := range Categories() {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return Category(s), false
}

// Descriptor is the static metadata record of one utility tool
type Descriptor struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Path        string   `json:"path" yaml:"path"`
	Category    Category `json:"category" yaml:"category"`
	Icon        string   `json:"icon" yaml:"icon"` // symbolic glyph name, resolved by the icons package
	Tags        []string `json:"tags" yaml:"tags"`
	Featured    bool     `json:"featured" yaml:"featured"`
	IsNew       bool     `json:"isNew" yaml:"isNew"`
	IsFeatured  bool     `json:"isFeatured" yaml:"isFeatured"`
}

func (d Descriptor) clone() Descriptor {
	d.Tags = append([]string(nil), d.Tags...)
	return d
}

// CategoryCount pairs a category with the number of registry entries in it
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Package icons resolves the symbolic icon names stored in tool descriptors
// to glyphs a front-end can draw. Descriptors never carry renderable data.
package icons

import "toolshelf/backend/internal/catalog"

// Fallback is drawn for names missing from the table
const Fallback = "🧰"

var glyphs = map[string]string{
	"AlignLeft":   "📝",
	"BarChart2":   "📊",
	"Binary":      "🔢",
	"BookOpen":    "📖",
	"Bot":         "🤖",
	"Braces":      "🧾",
	"Calculator":  "🧮",
	"Calendar":    "📅",
	"Clock":       "🕒",
	"Code":        "💻",
	"Coins":       "🪙",
	"Crop":        "✂️",
	"Dices":       "🎲",
	"FileCode":    "📄",
	"FileImage":   "🖼️",
	"FileKey":     "🔏",
	"FileText":    "📃",
	"Film":        "🎞️",
	"Fingerprint": "🆔",
	"GitCompare":  "🔀",
	"Hash":        "#️⃣",
	"Heading":     "📰",
	"Image":       "🖼️",
	"KeyRound":    "🔑",
	"Keyboard":    "⌨️",
	"Link":        "🔗",
	"Link2":       "🔗",
	"ListX":       "🧹",
	"Lock":        "🔒",
	"Maximize":    "↔️",
	"Network":     "🕸️",
	"NotebookPen": "🗒️",
	"Palette":     "🎨",
	"Percent":     "💯",
	"Pipette":     "💧",
	"QrCode":      "🔳",
	"RefreshCw":   "🔄",
	"Regex":       "🔍",
	"Ruler":       "📏",
	"Search":      "🔎",
	"ShieldCheck": "🛡️",
	"Square":      "⬛",
	"Star":        "⭐",
	"Tags":        "🏷️",
	"Timer":       "⏱️",
	"Type":        "🔤",
}

var categoryGlyphs = map[catalog.Category]string{
	catalog.All:                   "🗂️",
	catalog.CategoryUtilities:     "🛠️",
	catalog.CategorySEO:           "📈",
	catalog.CategoryImage:         "🖼️",
	catalog.CategoryText:          "📝",
	catalog.CategorySecurity:      "🔐",
	catalog.CategoryDevelopment:   "💻",
	catalog.CategoryDesign:        "🎨",
	catalog.CategoryContent:       "✍️",
	catalog.CategoryMiscellaneous: "🎲",
}

// Glyph returns the glyph for an icon name
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return Fallback
}

// Known reports whether name has an entry in the table
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}

// ForTool returns the glyph for a descriptor's icon
func ForTool(d catalog.Descriptor) string {
	return Glyph(d.Icon)
}

// ForCategory returns the glyph shown next to a category label
func ForCategory(c catalog.Category) string {
	if g, ok := categoryGlyphs[c]; ok {
		return g
	}
	return Fallback
}

// Package chardef implements the character category map of spec.md
// §4.2: a sorted range table classifying each code point into a
// bitmask of category flags, read from a char.def-style text resource.
package chardef

// Category is a bitmask of character category flags. Spec.md §2 lists
// the category set; flag order matches original_source's CategoryType
// enum so that char.def files can be used unmodified.
type Category uint32

const (
	KANJI Category = 1 << iota
	SYMBOL
	NUMERIC
	ALPHA
	HIRAGANA
	KATAKANA
	KANJINUMERIC
	GREEK
	CYRILLIC
	USER1
	USER2
	USER3
	USER4
	NOOOVBOW
	DEFAULT
)

var names = map[string]Category{
	"KANJI":        KANJI,
	"SYMBOL":       SYMBOL,
	"NUMERIC":      NUMERIC,
	"ALPHA":        ALPHA,
	"HIRAGANA":     HIRAGANA,
	"KATAKANA":     KATAKANA,
	"KANJINUMERIC": KANJINUMERIC,
	"GREEK":        GREEK,
	"CYRILLIC":     CYRILLIC,
	"USER1":        USER1,
	"USER2":        USER2,
	"USER3":        USER3,
	"USER4":        USER4,
	"NOOOVBOW":     NOOOVBOW,
	"DEFAULT":      DEFAULT,
}

// ParseCategoryName resolves a char.def type name ("KANJI", "HIRAGANA",
// ...) into its flag, reporting ok=false for an unknown name.
func ParseCategoryName(name string) (Category, bool) {
	c, ok := names[name]
	return c, ok
}

// Contains reports whether every flag set in other is also set in c.
func (c Category) Contains(other Category) bool { return c&other == other }

// Intersects reports whether c and other share any flag.
func (c Category) Intersects(other Category) bool { return c&other != 0 }

// Add returns c with other's flags set.
func (c Category) Add(other Category) Category { return c | other }

// All lists every individual category flag, in declaration order, for
// callers that need to iterate the flags set in a mask (e.g. the
// MeCab-style OOV provider visiting every category type at a position).
var All = []Category{
	KANJI, SYMBOL, NUMERIC, ALPHA, HIRAGANA, KATAKANA, KANJINUMERIC,
	GREEK, CYRILLIC, USER1, USER2, USER3, USER4, NOOOVBOW, DEFAULT,
}

// Each calls fn for every individual flag set in c.
func (c Category) Each(fn func(Category)) {
	for _, f := range All {
		if c&f != 0 {
			fn(f)
		}
	}
}

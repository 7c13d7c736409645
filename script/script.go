/*
Package script classifies Unicode text into the closed set of script
categories which the font selection stage understands.

Categories are deliberately coarser than Unicode script properties: CJK
merges Han, Kana and the CJK punctuation blocks, because a single font
family serves them; Emoji and Symbols are policy categories with no
Unicode script of their own. The enumeration is closed so that priority
tables over it can be matched exhaustively — adding a category is a
compile-time-visible change, not a new string key.

Detection reports every category present in a string. It applies no
priority and makes no selection decision; that is the job of the
fontbook package.
*/
package script

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.scripts'
func tracer() tracing.Trace {
	return tracing.Select("textprep.scripts")
}

// Category is one writing-system bucket relevant for font selection.
type Category uint8

const (
	Unknown Category = iota // code points outside every known range
	Latin                   // Latin letters, ASCII, Latin supplements, common punctuation
	Thai                    // Thai block, including combining vowels and tone marks
	Hangul                  // precomposed syllables plus Jamo blocks
	CJK                     // Han ideographs, Kana, CJK punctuation, full-width forms
	Arabic                  // Arabic blocks and presentation forms
	Hebrew                  // Hebrew block and presentation forms
	Emoji                   // pictographs, emoticons, dingbats, flags
	Symbols                 // currency, arrows, math operators, geometric shapes

	numCategories = iota
)

var categoryNames = [...]string{
	Unknown: "Unknown",
	Latin:   "Latin",
	Thai:    "Thai",
	Hangul:  "Hangul",
	CJK:     "CJK",
	Arabic:  "Arabic",
	Hebrew:  "Hebrew",
	Emoji:   "Emoji",
	Symbols: "Symbols",
}

// String returns the category's canonical name, as used in manifest files.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// ParseCategory maps a canonical category name to its Category value.
// Unrecognized names yield (Unknown, false).
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return Unknown, false
}

// All lists every category in enumeration order.
func All() []Category {
	cats := make([]Category, numCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Set is a bitset of categories. The zero value is the empty set.
type Set uint16

// Add returns the set with c included.
func (s Set) Add(c Category) Set {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s Set) Has(c Category) bool {
	return s&(1<<c) != 0
}

// IsEmpty reports whether no category is in the set.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Categories lists the members of the set in enumeration order.
func (s Set) Categories() []Category {
	var cats []Category
	for c := Category(0); c < numCategories; c++ {
		if s.Has(c) {
			cats = append(cats, c)
		}
	}
	return cats
}

// String renders the set as a '+'-joined list of category names.
func (s Set) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	var out string
	for _, c := range s.Categories() {
		if out != "" {
			out += "+"
		}
		out += c.String()
	}
	return out
}

// SetOf builds a Set from the given categories.
func SetOf(cats ...Category) Set {
	var s Set
	for _, c := range cats {
		s = s.Add(c)
	}
	return s
}

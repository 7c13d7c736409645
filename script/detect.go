package script

import "unicode"

// Detect reports every script category present in text. It scans each code
// point exactly once and applies no priority between categories.
//
// Whitespace and neutral code points (combining marks, variation selectors)
// contribute nothing. A string without any contributing code point — empty,
// pure whitespace, or punctuation-only — yields {Latin}, so that a selector
// consuming the result always has a deterministic default.
func Detect(text string) Set {
	var s Set
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		c, ok := Lookup(r)
		if !ok {
			continue
		}
		s = s.Add(c)
	}
	if s.IsEmpty() {
		s = s.Add(Latin)
		tracer().Debugf("no script-specific code points, defaulting to %v", s)
	}
	return s
}

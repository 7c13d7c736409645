/*
Package fontbook maps detected script categories to verified font
families.

A manifest file declares the families available for embedding: which
scripts each family serves, where its font resources live, and what the
resource bytes must hash to. The Book loads families lazily on first
use, verifies them (content hash, size sanity, presence of shaping
tables) and caches the verified record for the process lifetime. A
family that fails verification is excluded, never silently used —
scripts depending on it fall back to the default family.

Selection is per run and deterministic: when several scripts are present
in one run, a fixed priority order decides which family wins. Scripts
with the narrowest specialized glyph coverage rank highest, because the
broad default family structurally cannot render them, while it can
render Latin punctuation mixed into, say, a Hangul-dominant line.

The Book is safe for concurrent use from parallel document-generation
requests: population is guarded per family, and a populated record is
immutable.
*/
package fontbook

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textprep.fonts")
}

/*
Package sanitize prepares raw text for embedding into a generated document.

Sanitization does exactly two things, in order:

▪︎ Normalize to NFC. Combining sequences — Thai vowels and tone marks in
particular — must compose canonically so that the shaping stage of the
rendering backend sees one consistent representation. Decomposed input
risks marks detaching from their base character during line breaking.

▪︎ Remove control characters. Every code point in the C0 range (except
newline) and the whole C1 range is deleted. A control character has no
visual representation, and a retained one has historically spliced into
the following character during rendering, producing spurious punctuation.
This pass is zero-tolerance: removal is never conditional.

Nothing else is ever deleted or substituted. Earlier incarnations of this
kind of cleanup worked from an allow-list and destroyed ideographs,
currency signs and rare punctuation; the policy here inverts the default
to "preserve unless control character". See allowlist.go for the ranges
this guarantee is tested against.

Sanitization never fails: degenerate input yields an empty result.
*/
package sanitize

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'textprep.sanitize'
func tracer() tracing.Trace {
	return tracing.Select("textprep.sanitize")
}

// Removal is the diagnostic record for one removed code point.
type Removal struct {
	Codepoint rune   // the removed code point
	Hex       string // `U+XXXX` form, for logs only
}

// Name returns the Unicode character name of the removed code point.
func (r Removal) Name() string {
	return runenames.Name(r.Codepoint)
}

// Result is the outcome of sanitizing one text run.
//
// Text is NFC-normalized and free of control characters; Removed lists the
// deleted code points in input order and is nil when nothing was removed.
// Sanitizing a Result's Text again returns it unchanged.
type Result struct {
	Text    string
	Removed []Removal
}

// Option configures a single sanitization call.
type Option func(*config)

type config struct {
	itemID string
}

// WithItemID attaches an opaque correlation key to removal diagnostics.
// The key is logged verbatim and never interpreted.
func WithItemID(id string) Option {
	return func(c *config) {
		c.itemID = id
	}
}

// Sanitize normalizes raw to NFC and strips control characters.
//
// Each removed code point is recorded in the result and traced, together
// with the item id if one was supplied via WithItemID. The text content
// itself is never traced. Empty input yields an empty Result.
func Sanitize(raw string, opts ...Option) Result {
	if raw == "" {
		return Result{}
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	normalized := norm.NFC.String(raw)
	var removed []Removal
	cleaned := strings.Map(func(r rune) rune {
		if !isControl(r) {
			return r
		}
		removed = append(removed, Removal{Codepoint: r, Hex: hexForm(r)})
		return -1
	}, normalized)
	if len(removed) > 0 {
		// Stripping may have joined a base letter and a combining mark that
		// the control character kept apart, leaving a composable pair the
		// first NFC pass could not see.
		cleaned = norm.NFC.String(cleaned)
		logRemovals(cfg.itemID, removed)
	}
	return Result{Text: cleaned, Removed: removed}
}

// isControl reports whether r must be removed: C0 except newline, DEL,
// and all of C1.
func isControl(r rune) bool {
	if r == '\n' {
		return false
	}
	return (r >= 0x0000 && r <= 0x001F) || (r >= 0x007F && r <= 0x009F)
}

// hexForm formats a code point as `U+XXXX`, widening beyond four digits
// for supplementary-plane values.
func hexForm(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

func logRemovals(itemID string, removed []Removal) {
	hexes := make([]string, len(removed))
	for i, rm := range removed {
		hexes[i] = rm.Hex
	}
	tracer().Infof("removed %d control code point(s) [item=%s]: %s",
		len(removed), itemID, strings.Join(hexes, " "))
}

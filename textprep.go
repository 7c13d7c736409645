/*
Package textprep prepares arbitrary Unicode text for correct rendering
inside a generated paginated document.

Input text is user- or ingest-supplied and routinely mixes Thai, Latin,
CJK, Hangul, Arabic, Hebrew, emoji and symbol content, sprinkled with
control characters from careless sources. The pipeline is:

▪︎ sanitize — normalize to NFC and strip control characters, preserving
everything else (package sanitize)

▪︎ detect — report every script category present in the cleaned run
(package script)

▪︎ select — pick the one font family to embed the whole run with
(package fontbook)

The caller — the document-composition layer — supplies one text run and
an opaque item id for diagnostics, and receives cleaned text plus a
font-family id that is guaranteed to exist in the loaded manifest.
Preparation never fails: degenerate input yields empty text with the
default family, and coverage gaps degrade to the default family with a
logged diagnostic.

All calls are CPU-bound and deterministic; the only shared state is the
font-family cache inside fontbook.Book, which is safe for concurrent
use.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package textprep

import (
	"github.com/glyphwise/textprep/fontbook"
	"github.com/glyphwise/textprep/sanitize"
	"github.com/glyphwise/textprep/script"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textprep'
func tracer() tracing.Trace {
	return tracing.Select("textprep")
}

// TextRun is one piece of text to prepare, with an opaque diagnostic
// correlation key. Runs are transient; nothing about them persists
// beyond the call.
type TextRun struct {
	Raw    string
	ItemID string
}

// Prepared is the outcome of preparing one run.
type Prepared struct {
	Text     string             // NFC-normalized, control-free text
	FamilyID string             // font family to embed Text with
	Removed  []sanitize.Removal // stripped code points, nil if none
	Scripts  script.Set         // scripts detected in Text
}

// Prepare sanitizes a run, detects its scripts and selects the best-fit
// font family from the book. It never fails; see the package comment
// for the degradation rules.
func Prepare(book *fontbook.Book, run TextRun) Prepared {
	res := sanitize.Sanitize(run.Raw, sanitize.WithItemID(run.ItemID))
	scripts := script.Detect(res.Text)
	family := book.SelectFont(scripts)
	if len(res.Removed) > 0 {
		tracer().Debugf("prepared run [item=%s]: %d removal(s), scripts=%v, family=%s",
			run.ItemID, len(res.Removed), scripts, family)
	}
	return Prepared{
		Text:     res.Text,
		FamilyID: family,
		Removed:  res.Removed,
		Scripts:  scripts,
	}
}

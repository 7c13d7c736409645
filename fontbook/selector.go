package fontbook

import "github.com/glyphwise/textprep/script"

// selectionPriority decides which family wins when several scripts share
// one run. Narrow, specialized glyph repertoires outrank the broad
// default family: the default cannot contain Hangul syllables or Han
// ideographs, while it happily renders the Latin punctuation mixed into
// a Hangul-dominant line. The order is empirically derived from observed
// rendering defects; change it only together with the selector tests.
//
// Thai, Latin and Unknown are absent on purpose — they map to the
// default family, which is the Thai+Latin primary.
var selectionPriority = []script.Category{
	script.Hangul,
	script.CJK,
	script.Arabic,
	script.Hebrew,
	script.Emoji,
	script.Symbols,
}

// SelectFont picks the single best-fit family id for a whole text run,
// given the scripts detected in it. The result is always an id present
// in the manifest.
//
// A detected script whose families are all excluded or absent falls
// back down the priority order, ultimately to the default family. The
// fallback is a logged diagnostic, never an error: document generation
// must not fail over missing exotic-script coverage.
func (bk *Book) SelectFont(scripts script.Set) string {
	for _, cat := range selectionPriority {
		if !scripts.Has(cat) {
			continue
		}
		if id, ok := bk.coveringFamily(cat); ok {
			tracer().Debugf("selected family %q for %v", id, scripts)
			return id
		}
		tracer().Infof("coverage gap: no usable family for script %s [detected=%v], falling back",
			cat, scripts)
	}
	return bk.manifest.DefaultFamily
}

// coveringFamily finds the first usable manifest family covering a
// category, verifying candidates lazily in manifest order.
func (bk *Book) coveringFamily(cat script.Category) (string, bool) {
	for i := range bk.manifest.Families {
		rec := &bk.manifest.Families[i]
		if !rec.ScriptSet().Has(cat) {
			continue
		}
		if bk.Usable(rec.FamilyID) {
			return rec.FamilyID, true
		}
	}
	return "", false
}

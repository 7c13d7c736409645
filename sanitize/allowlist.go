package sanitize

// The preservation allow-list is a policy table, not a filter. It is
// realized by the narrowness of the deletion predicate — isControl matches
// control ranges and nothing else — so there is no second source of truth
// that could drift out of sync with the filter. The table below documents
// the classes of content the "preserve unless control character" guarantee
// was introduced for; the package tests assert that every range survives
// sanitization byte for byte.

type preservedRange struct {
	lo, hi rune
	class  string
}

var preservedRanges = []preservedRange{
	{0x0020, 0x007E, "ASCII printable incl. symbol punctuation @ # $ % ^ & * ~ | { } [ ] ( )"},
	{0x00A1, 0x00FF, "Latin-1 punctuation, currency and letters"},
	{0x0E01, 0x0E5B, "Thai consonants, vowels, tone marks, baht sign"},
	{0x2010, 0x2027, "dashes, quotes, bullets"},
	{0x2190, 0x21FF, "arrows"},
	{0x20A0, 0x20CF, "currency symbols ₽ € ₹ ₩"},
	{0x2200, 0x22FF, "math operators ± × ÷ ≈ ≠ ≤ ≥"},
	{0x3040, 0x30FF, "kana"},
	{0x4E00, 0x9FFF, "CJK unified ideographs"},
	{0xAC00, 0xD7AF, "Hangul syllables"},
	{0x0590, 0x05F4, "Hebrew"},
	{0x0600, 0x06FF, "Arabic"},
	{0x1F300, 0x1F6FF, "emoji pictographs"},
}

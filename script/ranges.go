package script

// Disjoint code-point ranges, sorted by lower bound. Block names follow the
// Unicode chart names. Ranges not listed here classify as Unknown.
//
// The table merges blocks into the coarse categories of this package:
// everything a CJK family renders (Han, Kana, CJK punctuation, width forms)
// is CJK, and the emoji-presentation blocks are Emoji even where Unicode
// files them under symbols.
//
// The pseudo-category `neutral` marks code points that inherit their
// classification from surrounding text (combining marks, variation
// selectors, general punctuation) and therefore contribute nothing to
// detection.

const neutral = Category(numCategories)

type scriptRange struct {
	lo, hi rune
	cat    Category
}

var scriptRanges = []scriptRange{
	{0x0020, 0x007E, Latin},    // Basic Latin (printable)
	{0x00A0, 0x02FF, Latin},    // Latin-1 Supplement .. Spacing Modifier Letters
	{0x0300, 0x036F, neutral},  // Combining Diacritical Marks
	{0x0590, 0x05FF, Hebrew},   // Hebrew
	{0x0600, 0x06FF, Arabic},   // Arabic
	{0x0750, 0x077F, Arabic},   // Arabic Supplement
	{0x08A0, 0x08FF, Arabic},   // Arabic Extended-A
	{0x0E00, 0x0E7F, Thai},     // Thai
	{0x1100, 0x11FF, Hangul},   // Hangul Jamo
	{0x1E00, 0x1EFF, Latin},    // Latin Extended Additional
	{0x2000, 0x206F, neutral},  // General Punctuation
	{0x2070, 0x209F, Symbols},  // Superscripts and Subscripts
	{0x20A0, 0x20CF, Symbols},  // Currency Symbols
	{0x20D0, 0x20FF, neutral},  // Combining Marks for Symbols
	{0x2100, 0x214F, Symbols},  // Letterlike Symbols
	{0x2150, 0x218F, Symbols},  // Number Forms
	{0x2190, 0x21FF, Symbols},  // Arrows
	{0x2200, 0x22FF, Symbols},  // Mathematical Operators
	{0x2300, 0x23FF, Symbols},  // Miscellaneous Technical
	{0x2460, 0x24FF, Symbols},  // Enclosed Alphanumerics
	{0x25A0, 0x25FF, Symbols},  // Geometric Shapes
	{0x2600, 0x26FF, Emoji},    // Miscellaneous Symbols
	{0x2700, 0x27BF, Emoji},    // Dingbats
	{0x2B00, 0x2BFF, Symbols},  // Miscellaneous Symbols and Arrows
	{0x3000, 0x303F, CJK},      // CJK Symbols and Punctuation
	{0x3040, 0x309F, CJK},      // Hiragana
	{0x30A0, 0x30FF, CJK},      // Katakana
	{0x3130, 0x318F, Hangul},   // Hangul Compatibility Jamo
	{0x31F0, 0x31FF, CJK},      // Katakana Phonetic Extensions
	{0x3400, 0x4DBF, CJK},      // CJK Unified Ideographs Extension A
	{0x4E00, 0x9FFF, CJK},      // CJK Unified Ideographs
	{0xA960, 0xA97F, Hangul},   // Hangul Jamo Extended-A
	{0xAC00, 0xD7AF, Hangul},   // Hangul Syllables
	{0xD7B0, 0xD7FF, Hangul},   // Hangul Jamo Extended-B
	{0xF900, 0xFAFF, CJK},      // CJK Compatibility Ideographs
	{0xFB1D, 0xFB4F, Hebrew},   // Hebrew presentation forms (Alphabetic Pres. Forms)
	{0xFB50, 0xFDFF, Arabic},   // Arabic Presentation Forms-A
	{0xFE00, 0xFE0F, neutral},  // Variation Selectors
	{0xFE70, 0xFEFF, Arabic},   // Arabic Presentation Forms-B
	{0xFF00, 0xFFEF, CJK},      // Halfwidth and Fullwidth Forms
	{0x1F1E6, 0x1F1FF, Emoji},  // Regional Indicator Symbols (flags)
	{0x1F300, 0x1F5FF, Emoji},  // Miscellaneous Symbols and Pictographs
	{0x1F600, 0x1F64F, Emoji},  // Emoticons
	{0x1F680, 0x1F6FF, Emoji},  // Transport and Map Symbols
	{0x1F900, 0x1F9FF, Emoji},  // Supplemental Symbols and Pictographs
	{0x1FA70, 0x1FAFF, Emoji},  // Symbols and Pictographs Extended-A
	{0x20000, 0x2A6DF, CJK},    // CJK Unified Ideographs Extension B
	{0x2A700, 0x2EBEF, CJK},    // CJK Unified Ideographs Extensions C-F
	{0x30000, 0x3134A, CJK},    // CJK Unified Ideographs Extension G
}

// Lookup classifies a single code point. The second return value is false
// for neutral code points, which inherit their classification from
// surrounding text and must not contribute to detection.
func Lookup(r rune) (Category, bool) {
	lo, hi := 0, len(scriptRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		rg := scriptRanges[mid]
		switch {
		case r < rg.lo:
			hi = mid
		case r > rg.hi:
			lo = mid + 1
		default:
			if rg.cat == neutral {
				return Unknown, false
			}
			return rg.cat, true
		}
	}
	return Unknown, true
}

package script

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRangeTableSortedAndDisjoint(t *testing.T) {
	for i := 1; i < len(scriptRanges); i++ {
		prev, cur := scriptRanges[i-1], scriptRanges[i]
		if prev.lo > prev.hi {
			t.Errorf("range %d is inverted: %04X..%04X", i-1, prev.lo, prev.hi)
		}
		if cur.lo <= prev.hi {
			t.Errorf("ranges %d and %d overlap or are unsorted: %04X..%04X / %04X..%04X",
				i-1, i, prev.lo, prev.hi, cur.lo, cur.hi)
		}
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		r    rune
		want Category
	}{
		{'A', Latin},
		{'z', Latin},
		{'é', Latin},
		{'@', Latin},
		{'ค', Thai},
		{'฿', Thai}, // baht sign lives in the Thai block
		{'엔', Hangul},
		{'ᄀ', Hangul},
		{'她', CJK},
		{'あ', CJK},
		{'カ', CJK},
		{'。', CJK},
		{'م', Arabic},
		{'ש', Hebrew},
		{'€', Symbols},
		{'₽', Symbols},
		{'≠', Symbols},
		{'→', Symbols},
		{'■', Symbols},
		{'☀', Emoji},
		{'✂', Emoji},
		{'😀', Emoji},
		{'🚀', Emoji},
		{'🇩', Emoji},
		{'Я', Unknown}, // Cyrillic is not a supported category
		{'Ω', Unknown}, // Greek is not a supported category
	}
	for _, c := range cases {
		got, ok := Lookup(c.r)
		if !ok {
			t.Errorf("Lookup(%q) classified as neutral, want %s", c.r, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("Lookup(%q) = %s, want %s", c.r, got, c.want)
		}
	}
}

func TestLookupNeutral(t *testing.T) {
	for _, r := range []rune{'́', '‍', '️', '—'} {
		if _, ok := Lookup(r); ok {
			t.Errorf("Lookup(%U) should be neutral", r)
		}
	}
}

func TestDetect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.scripts")
	defer teardown()
	//
	cases := []struct {
		text string
		want Set
	}{
		{"", SetOf(Latin)},
		{"   \n ", SetOf(Latin)},
		{"“—”", SetOf(Latin)}, // neutral punctuation only
		{"hello world", SetOf(Latin)},
		{"NMIXX 엔믹스", SetOf(Latin, Hangul)},
		{"99 คืนไป (Q&A) ~~Roblox", SetOf(Latin, Thai)},
		{"Trailer 她@Memory! ₽hen", SetOf(Latin, CJK, Symbols)},
		{"مرحبا", SetOf(Arabic)},
		{"שלום hello", SetOf(Hebrew, Latin)},
		{"🚀🔥", SetOf(Emoji)},
		{"Привет", SetOf(Unknown)},
	}
	for _, c := range cases {
		got := Detect(c.text)
		if got != c.want {
			t.Errorf("Detect(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestDetectNeverEmpty(t *testing.T) {
	inputs := []string{"", " ", "́", "x", "文", "🙂", "️‍"}
	for _, in := range inputs {
		if got := Detect(in); got.IsEmpty() {
			t.Errorf("Detect(%q) returned the empty set", in)
		}
	}
}

func TestSetOperations(t *testing.T) {
	s := SetOf(Hangul, Latin)
	if !s.Has(Hangul) || !s.Has(Latin) {
		t.Errorf("set %v misses added members", s)
	}
	if s.Has(CJK) {
		t.Errorf("set %v contains CJK, should not", s)
	}
	cats := s.Categories()
	if len(cats) != 2 || cats[0] != Latin || cats[1] != Hangul {
		t.Errorf("Categories() = %v, want [Latin Hangul] in enumeration order", cats)
	}
	if s.String() != "Latin+Hangul" {
		t.Errorf("String() = %q, want %q", s.String(), "Latin+Hangul")
	}
}

func TestCategoryNames(t *testing.T) {
	for _, c := range All() {
		parsed, ok := ParseCategory(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseCategory(%q) = %v, %v — round trip broken", c.String(), parsed, ok)
		}
	}
	if _, ok := ParseCategory("Klingon"); ok {
		t.Errorf("ParseCategory accepted an unknown name")
	}
}

package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rune thresholds below which a comment is considered too short. Ideographic
// CJK scripts pack more meaning per character, so their threshold is lower.
const (
	shortCommentRunes    = 10
	shortCommentRunesCJK = 4
)

// cjkSymbolBlocks covers the CJK symbol and compatibility blocks that are not
// part of the Han script table.
var cjkSymbolBlocks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x303F, Stride: 1}, // CJK symbols and punctuation
		{Lo: 0x31C0, Hi: 0x31EF, Stride: 1}, // CJK strokes
		{Lo: 0x3200, Hi: 0x32FF, Stride: 1}, // enclosed CJK letters and months
		{Lo: 0x3300, Hi: 0x33FF, Stride: 1}, // CJK compatibility
		{Lo: 0xFE30, Hi: 0xFE4F, Stride: 1}, // CJK compatibility forms
	},
}

// cjk covers the ideographic CJK blocks the short-comment heuristic treats as
// CJK. Kana- and hangul-led comments keep the default threshold.
var cjk = []*unicode.RangeTable{
	unicode.Han,
	cjkSymbolBlocks,
}

// CommentTooShort reports whether a changeset comment is too short to be
// meaningful. The comment is stripped of surrounding whitespace first; an
// empty comment is never flagged (emptiness is a separate condition). A
// comment starting with an ideographic CJK rune needs at least 4 runes, any
// other at least 10.
func CommentTooShort(comment string) bool {
	s := strings.TrimSpace(comment)
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	threshold := shortCommentRunes
	if unicode.IsOneOf(cjk, first) {
		threshold = shortCommentRunesCJK
	}
	return utf8.RuneCountInString(s) < threshold
}

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmkit/changeset/pkg/validate"
)

func TestCommentTooShort(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		short   bool
	}{
		{"empty never flagged", "", false},
		{"whitespace only never flagged", "   \t ", false},
		{"two latin chars flagged", "ok", true},
		{"nine latin chars flagged", "123456789", true},
		{"ten latin chars pass", "1234567890", false},
		{"surrounding whitespace stripped", "  ok  ", true},
		{"three han runes flagged", "修路桥", true},
		{"four han runes pass", "修复道路", false},
		{"five-rune hiragana comment flagged", "みちなおす", true},
		{"five-rune hangul comment flagged", "길을 고침", true},
		{"katakana keeps the default threshold", "ミチナオス", true},
		{"ten-rune hiragana comment passes", "みちをなおしました。", false},
		{"cjk threshold keyed on first rune", "修abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.short, validate.CommentTooShort(tt.comment))
		})
	}
}

package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmkit/changeset/pkg/tags"
)

func TestMergeOverwrites(t *testing.T) {
	s := tags.From(map[string]string{"comment": "old", "locale": "en"})
	s.Merge(map[string]string{"comment": "new", "source": "survey"})

	assert.Equal(t, "new", s["comment"])
	assert.Equal(t, "survey", s["source"])
	assert.Equal(t, "en", s["locale"])
}

func TestMergeNilIsNoop(t *testing.T) {
	s := tags.From(map[string]string{"comment": "c"})
	s.Merge(nil)
	assert.Len(t, s, 1)
}

func TestPruneEmpty(t *testing.T) {
	s := tags.From(map[string]string{
		"comment":    "added a road",
		"source":     "",
		"hashtags":   "   ",
		"created_by": "editor/1.0",
	})
	s.PruneEmpty()

	assert.Equal(t, []string{"comment", "created_by"}, s.Keys())
}

func TestMergeAgent(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		agent    string
		expected string
	}{
		{
			name:     "absent created_by",
			existing: "",
			agent:    "editor/1.0",
			expected: "editor/1.0",
		},
		{
			name:     "foreign created_by gets agent appended",
			existing: "other-tool/2.3",
			agent:    "editor/1.0",
			expected: "other-tool/2.3;editor/1.0",
		},
		{
			name:     "already merged stays unchanged",
			existing: "other-tool/2.3;editor/1.0",
			agent:    "editor/1.0",
			expected: "other-tool/2.3;editor/1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tags.New()
			if tt.existing != "" {
				s[tags.CreatedBy] = tt.existing
			}
			s.MergeAgent(tt.agent)
			assert.Equal(t, tt.expected, s[tags.CreatedBy])
		})
	}
}

func TestMergeAgentIdempotent(t *testing.T) {
	s := tags.From(map[string]string{tags.CreatedBy: "other-tool/2.3"})
	s.MergeAgent("editor/1.0")
	first := s[tags.CreatedBy]
	s.MergeAgent("editor/1.0")

	assert.Equal(t, first, s[tags.CreatedBy])
}

func TestEmptyPairs(t *testing.T) {
	s := tags.From(map[string]string{
		"comment":  "",        // exempt
		"source":   "",        // exempt
		"key":      "",        // value empty -> reported
		"":         "dangler", // key empty -> reported
		"hashtags": "#a",      // fine
	})

	pairs := s.EmptyPairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "=dangler", pairs[0].String())
	assert.Equal(t, "key=", pairs[1].String())
}

func TestEmptyPairsBothBlankAccepted(t *testing.T) {
	s := tags.From(map[string]string{"": "  "})
	assert.Empty(t, s.EmptyPairs())
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", tags.Shorten("short", 10))
	assert.Equal(t, "long st...", tags.Shorten("long string here", 10))
	// rune-safe truncation
	assert.Equal(t, "日本...", tags.Shorten("日本語テキスト", 5))
}

func TestCloneIsIndependent(t *testing.T) {
	s := tags.From(map[string]string{"comment": "c"})
	c := s.Clone()
	c["comment"] = "changed"

	assert.Equal(t, "c", s["comment"])
}

package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmkit/changeset/pkg/tags"
)

func TestSanitizeHashtags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "mixed prefixes",
			input:    "foo;#bar;baz",
			expected: []string{"#foo", "#bar", "#baz"},
		},
		{
			name:     "duplicates collapse order preserving",
			input:    "foo;#foo;bar;foo",
			expected: []string{"#foo", "#bar"},
		},
		{
			name:     "empty tokens skipped",
			input:    "foo;;bar;",
			expected: []string{"#foo", "#bar"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tags.SanitizeHashtags(tt.input))
		})
	}
}

func TestAppendHashtags(t *testing.T) {
	assert.Equal(t, "fixed roads #mapparty #osm", tags.AppendHashtags("fixed roads", "mapparty;#osm"))
	assert.Equal(t, "#mapparty", tags.AppendHashtags("", "mapparty"))
	assert.Equal(t, "fixed roads", tags.AppendHashtags("fixed roads", ""))
	assert.Equal(t, "", tags.AppendHashtags("", ""))
}

// Package tags models the key/value metadata attached to an OSM changeset
// and the finalization rules applied to it before upload.
package tags

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osmkit/changeset/pkg/constants"
)

// Well-known changeset tag keys.
const (
	// Comment is the changeset comment tag key.
	Comment = "comment"

	// Source is the changeset source tag key.
	Source = "source"

	// CreatedBy is the client identification tag key.
	CreatedBy = "created_by"

	// Hashtags is the dataset-declared hashtag list tag key.
	Hashtags = "hashtags"
)

// Set is a changeset tag set: a mapping from unique string keys to values.
// A Set is constructed fresh per upload attempt and discarded afterwards.
type Set map[string]string

// New returns an empty tag set.
func New() Set {
	return make(Set)
}

// From returns a tag set seeded with a copy of m. A nil map yields an empty set.
func From(m map[string]string) Set {
	s := make(Set, len(m))
	for k, v := range m {
		s[k] = v
	}
	return s
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	return From(s)
}

// Merge copies all entries of other into the set, overwriting existing keys.
// A nil map is a no-op.
func (s Set) Merge(other map[string]string) {
	for k, v := range other {
		s[k] = v
	}
}

// Keys returns the keys of the set in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PruneEmpty removes all entries whose value is empty or whitespace-only.
func (s Set) PruneEmpty() {
	for k, v := range s {
		if strings.TrimSpace(v) == "" {
			delete(s, k)
		}
	}
}

// MergeAgent resolves the created_by tag against the uploading client's agent
// string: absent or empty becomes the agent, a value not containing the agent
// gets it appended separated by ';', and a value already containing the agent
// is left unchanged. The operation is idempotent.
func (s Set) MergeAgent(agent string) {
	createdBy := s[CreatedBy]
	switch {
	case createdBy == "":
		s[CreatedBy] = agent
	case !strings.Contains(createdBy, agent):
		s[CreatedBy] = createdBy + ";" + agent
	}
}

// Pair is a single changeset tag.
type Pair struct {
	Key   string
	Value string
}

// String formats the pair as "key=value".
func (p Pair) String() string {
	return fmt.Sprintf("%s=%s", p.Key, p.Value)
}

// EmptyPairs returns the tags whose key or value (but not both) is blank
// after stripping whitespace. The comment and source keys are exempt since
// empty values there are handled by their own validators. Results are ordered
// by key.
func (s Set) EmptyPairs() []Pair {
	var pairs []Pair
	for _, k := range s.Keys() {
		v := s[k]
		keyEmpty := strings.TrimSpace(k) == ""
		valueEmpty := strings.TrimSpace(v) == ""
		if k == Comment || k == Source {
			continue
		}
		if keyEmpty != valueEmpty {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	}
	return pairs
}

// Shorten truncates s to at most max runes, appending "..." when truncated.
func Shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// ShortenToTagLength truncates s to the maximum changeset tag value length.
func ShortenToTagLength(s string) string {
	return Shorten(s, constants.MaxTagLength)
}

// Package history manages the bounded, most-recent-first histories of
// previously used changeset comment and source values, including the
// staleness rule that keeps old entries from seeding new uploads.
package history

import (
	"strings"
	"time"

	"github.com/agentstation/utc"
)

// Record pushes value to the front of an ordered, duplicate-free history and
// truncates it to limit entries. An already-present value moves to the front
// instead of being duplicated. Blank values are ignored.
func Record(history []string, value string, limit int) []string {
	if strings.TrimSpace(value) == "" {
		return history
	}
	out := make([]string, 0, len(history)+1)
	out = append(out, value)
	for _, entry := range history {
		if entry == value {
			continue
		}
		out = append(out, entry)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MostRecent returns the head of the history, but only while the history is
// fresh: the last recorded use must be younger than maxAge at the given now.
// Stale or empty histories yield ("", false).
func MostRecent(history []string, lastUsed utc.Time, maxAge time.Duration, now utc.Time) (string, bool) {
	if len(history) == 0 {
		return "", false
	}
	if now.Sub(lastUsed) >= maxAge {
		return "", false
	}
	return history[0], true
}

// DefaultSources returns the fixed fallback list for the source history.
func DefaultSources() []string {
	return []string{"knowledge", "survey", "Bing"}
}

package history

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/osmkit/changeset/pkg/constants"
)

// Store persists history lists and scalars in the preference store.
type Store interface {
	// List returns the string list stored under key, or def when unset.
	List(key string, def []string) []string

	// PutList stores a string list under key.
	PutList(key string, values []string)

	// Int64 returns the integer stored under key, or def when unset.
	Int64(key string, def int64) int64

	// PutInt64 stores an integer under key.
	PutInt64(key string, value int64)
}

// Manager reads and records the comment and source histories through a Store.
type Manager struct {
	store  Store
	limit  int
	clock  func() utc.Time
	maxAge *time.Duration
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLimit sets the maximum number of retained history entries.
func WithLimit(limit int) ManagerOption {
	return func(m *Manager) {
		m.limit = limit
	}
}

// WithClock sets the time source, used by tests to control staleness.
func WithClock(clock func() utc.Time) ManagerOption {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithMaxAge fixes the comment staleness window instead of reading it from
// the store. Zero or negative disables comment history recording.
func WithMaxAge(maxAge time.Duration) ManagerOption {
	return func(m *Manager) {
		m.maxAge = &maxAge
	}
}

// NewManager creates a Manager on top of the given store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store: store,
		limit: constants.DefaultHistoryLimit,
		clock: utc.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MaxAge returns how long recorded comments stay usable as defaults.
// Zero or negative disables comment history recording.
func (m *Manager) MaxAge() time.Duration {
	if m.maxAge != nil {
		return *m.maxAge
	}
	seconds := m.store.Int64(constants.CommentMaxAgeKey, int64(constants.DefaultHistoryMaxAge/time.Second))
	return time.Duration(seconds) * time.Second
}

// Comments returns the stored comment history, most recent first.
func (m *Manager) Comments() []string {
	return m.store.List(constants.CommentHistoryKey, nil)
}

// Sources returns the stored source history, most recent first, falling back
// to the fixed default sources.
func (m *Manager) Sources() []string {
	return m.store.List(constants.SourceHistoryKey, DefaultSources())
}

// LastComment returns the most recent non-stale history comment.
func (m *Manager) LastComment() (string, bool) {
	return MostRecent(m.Comments(), m.lastUsed(), m.MaxAge(), m.clock())
}

// LastSource returns the most recent non-stale history source.
func (m *Manager) LastSource() (string, bool) {
	return MostRecent(m.Sources(), m.lastUsed(), m.MaxAge(), m.clock())
}

// RecordComment pushes the comment to the front of the comment history and
// stamps the last-used time. Recording is disabled entirely when the
// configured max age is not positive.
func (m *Manager) RecordComment(comment string) {
	if m.MaxAge() <= 0 {
		return
	}
	m.store.PutList(constants.CommentHistoryKey, Record(m.Comments(), comment, m.limit))
	m.store.PutInt64(constants.CommentLastUsedKey, m.clock().Unix())
}

// RecordSource pushes the source to the front of the source history.
// Unlike comments, sources are always recorded.
func (m *Manager) RecordSource(source string) {
	m.store.PutList(constants.SourceHistoryKey, Record(m.Sources(), source, m.limit))
}

func (m *Manager) lastUsed() utc.Time {
	seconds := m.store.Int64(constants.CommentLastUsedKey, 0)
	return utc.Time{Time: time.Unix(seconds, 0).UTC()}
}

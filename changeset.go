package changeset

import (
	"fmt"
	"sync"

	"github.com/osmkit/changeset/pkg/errors"
	"github.com/osmkit/changeset/pkg/history"
	"github.com/osmkit/changeset/pkg/reconcile"
	"github.com/osmkit/changeset/pkg/tags"
	"github.com/osmkit/changeset/pkg/upload"
	"github.com/osmkit/changeset/pkg/validate"
)

// DefaultAgent identifies this library in created_by tags when no agent is
// configured.
const DefaultAgent = "osmkit-changeset/1.0"

// Store is the preference store collaborator: history lists, validation term
// lists and scalars, read and written by key.
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

// Preparer assembles and validates everything an upload needs before it is
// handed to the upload transport.
type Preparer interface {
	// PrepareTags reconciles the final tag set for an upload attempt.
	// selected carries the tags of the user-selected open changeset, nil when
	// none is selected. When keepCurrent is set, the live comment and source
	// values survive instead of history and dataset derived ones.
	PrepareTags(dataset, selected map[string]string, keepCurrent bool, currentComment, currentSource string) tags.Set

	// Tags returns a copy of the most recently prepared tag set.
	Tags() tags.Set

	// ValidateComment checks the comment against the configured term rule.
	ValidateComment(comment string) error

	// ValidateSource checks the source against the configured term rule.
	ValidateSource(source string) error

	// CommentTooShort reports whether the comment fails the length heuristic.
	CommentTooShort(comment string) bool

	// RememberInput records the submitted comment and source in history.
	RememberInput(comment, source string)

	// Check verifies the upload may proceed: no half-empty tags in the
	// prepared set and a usable upload strategy.
	Check(spec upload.Specification) error

	// History exposes the underlying history manager.
	History() *history.Manager
}

// preparer is the internal implementation of the Preparer interface
type preparer struct {
	mu       sync.RWMutex
	prepared tags.Set

	config      *config
	history     *history.Manager
	reconciler  reconcile.Reconciler
	commentRule validate.Rule
	sourceRule  validate.Rule
}

// New creates a new Preparer with the given options.
func New(opts ...Option) (Preparer, error) {
	p := &preparer{
		config: defaultConfig(),
	}
	if err := p.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	managerOpts := []history.ManagerOption{history.WithLimit(p.config.historyLimit)}
	if p.config.historyMaxAge != nil {
		managerOpts = append(managerOpts, history.WithMaxAge(*p.config.historyMaxAge))
	}
	if p.config.clock != nil {
		managerOpts = append(managerOpts, history.WithClock(p.config.clock))
	}
	p.history = history.NewManager(p.config.store, managerOpts...)

	reconciler, err := reconcile.New(reconcile.WithLogger(p.config.logger))
	if err != nil {
		return nil, fmt.Errorf("creating reconciler: %w", err)
	}
	p.reconciler = reconciler

	p.commentRule = p.config.commentRule(p.config.store)
	p.sourceRule = p.config.sourceRule(p.config.store)

	return p, nil
}

// PrepareTags reconciles the final tag set and retains it for Check and Tags.
// Callers must invoke PrepareTags before reading tags for an upload.
func (p *preparer) PrepareTags(dataset, selected map[string]string, keepCurrent bool, currentComment, currentSource string) tags.Set {
	in := reconcile.Input{
		DatasetTags:    dataset,
		ChangesetTags:  selected,
		Agent:          p.config.agent,
		KeepCurrent:    keepCurrent,
		CurrentComment: currentComment,
		CurrentSource:  currentSource,
	}
	if !keepCurrent {
		in.LastComment, _ = p.history.LastComment()
		in.LastSource, _ = p.history.LastSource()
	}

	set := p.reconciler.Reconcile(in)

	p.mu.Lock()
	p.prepared = set
	p.mu.Unlock()

	return set.Clone()
}

// Tags returns a copy of the most recently prepared tag set.
func (p *preparer) Tags() tags.Set {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.prepared == nil {
		return tags.New()
	}
	return p.prepared.Clone()
}

// ValidateComment checks the comment against the configured term rule.
func (p *preparer) ValidateComment(comment string) error {
	return p.commentRule.Validate(comment)
}

// ValidateSource checks the source against the configured term rule.
func (p *preparer) ValidateSource(source string) error {
	return p.sourceRule.Validate(source)
}

// CommentTooShort reports whether the comment fails the length heuristic.
func (p *preparer) CommentTooShort(comment string) bool {
	return validate.CommentTooShort(comment)
}

// RememberInput records the submitted comment and source in history.
func (p *preparer) RememberInput(comment, source string) {
	p.history.RecordComment(comment)
	p.history.RecordSource(source)

	p.config.logger.Debug().
		Str("comment", comment).
		Str("source", source).
		Msg("Recorded upload input history")
}

// Check verifies that the prepared tag set and the strategy can drive an
// upload. Both failures are blocking but user-correctable.
func (p *preparer) Check(spec upload.Specification) error {
	pairs := p.Tags().EmptyPairs()
	if len(pairs) > 0 {
		formatted := make([]string, len(pairs))
		for i, pair := range pairs {
			formatted[i] = pair.String()
		}
		return errors.NewEmptyTagError(formatted)
	}
	return spec.Validate()
}

// History exposes the underlying history manager.
func (p *preparer) History() *history.Manager {
	return p.history
}

// Package reconcile builds the final changeset tag set for an upload attempt
// from the dataset, the selected open changeset, input history defaults, and
// the uploading client's identification.
package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/osmkit/changeset/pkg/logging"
	"github.com/osmkit/changeset/pkg/tags"
)

// Input carries everything the reconciler reads. Missing or nil fields
// degrade to empty values; reconciliation itself never fails.
type Input struct {
	// DatasetTags are the changeset tags declared on the dataset being uploaded.
	DatasetTags map[string]string

	// ChangesetTags are the tags of the user-selected open changeset.
	// Nil means no changeset is selected.
	ChangesetTags map[string]string

	// LastComment is the most recent non-stale history comment, if any.
	LastComment string

	// LastSource is the most recent non-stale history source, if any.
	LastSource string

	// Agent identifies the uploading client for the created_by tag.
	Agent string

	// KeepCurrent preserves the live comment and source values instead of
	// the history and dataset derived ones.
	KeepCurrent bool

	// CurrentComment is the live comment value, used when KeepCurrent is set.
	CurrentComment string

	// CurrentSource is the live source value, used when KeepCurrent is set.
	CurrentSource string
}

// Reconciler produces the final tag set to send with an upload.
type Reconciler interface {
	// Reconcile computes the finalized changeset tag set for the input.
	Reconcile(in Input) tags.Set
}

// reconciler is the default implementation of Reconciler
type reconciler struct {
	logger zerolog.Logger
}

// Option configures a Reconciler
type Option func(*reconciler) error

// New creates a new Reconciler with options
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		logger: *logging.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithLogger sets the logger used to trace reconciliation
func WithLogger(logger zerolog.Logger) Option {
	return func(r *reconciler) error {
		r.logger = logger
		return nil
	}
}

// Reconcile computes the final tag set. Later sources overwrite earlier ones:
// history defaults, then dataset tags, then the selected changeset's tags.
// The created_by tag is cumulative rather than overwritten so provenance is
// preserved across tools that re-upload the same changeset.
func (r *reconciler) Reconcile(in Input) tags.Set {
	set := tags.New()
	hashtags := in.DatasetTags[tags.Hashtags]

	// seed comment and source from history defaults
	if !in.KeepCurrent {
		set[tags.Source] = in.LastSource
		set[tags.Comment] = tags.AppendHashtags(in.LastComment, hashtags)
	}

	set.Merge(in.DatasetTags)

	// the selected open changeset's own tags win over the dataset's
	if in.ChangesetTags != nil {
		set.Merge(in.ChangesetTags)
	}

	if in.Agent != "" {
		set.MergeAgent(in.Agent)
	}

	set.PruneEmpty()

	// overwrite comment and source with the live values
	if in.KeepCurrent {
		set[tags.Source] = in.CurrentSource
		set[tags.Comment] = tags.AppendHashtags(in.CurrentComment, hashtags)
		set.PruneEmpty()
	}

	r.logger.Debug().
		Int("tags", len(set)).
		Bool("keep_current", in.KeepCurrent).
		Bool("changeset_selected", in.ChangesetTags != nil).
		Msg("Reconciled changeset tags")

	return set
}

package changeset

import (
	"time"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/osmkit/changeset/internal/prefs"
	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/errors"
	"github.com/osmkit/changeset/pkg/logging"
	"github.com/osmkit/changeset/pkg/validate"
)

// ruleLoader builds a validation rule from the preference store at
// construction time.
type ruleLoader func(store Store) validate.Rule

// config holds the assembled Preparer configuration
type config struct {
	agent         string
	store         Store
	historyLimit  int
	historyMaxAge *time.Duration
	clock         func() utc.Time
	logger        zerolog.Logger
	commentRule   ruleLoader
	sourceRule    ruleLoader
}

// defaultConfig returns the configuration used when no options are given:
// an in-memory preference store and rules loaded from it.
func defaultConfig() *config {
	return &config{
		agent:        DefaultAgent,
		store:        prefs.New(),
		historyLimit: constants.DefaultHistoryLimit,
		logger:       *logging.Default(),
		commentRule: func(store Store) validate.Rule {
			return validate.LoadRule(store, constants.CommentValidationPrefix, validate.Rule{Subject: "comment"})
		},
		sourceRule: func(store Store) validate.Rule {
			return validate.LoadRule(store, constants.SourceValidationPrefix, validate.Rule{Subject: "source"})
		},
	}
}

// Option is a function that configures a Preparer instance
type Option func(*config) error

// options applies the given options to the configuration
func (p *preparer) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(p.config); err != nil {
			return err
		}
	}
	return nil
}

// WithAgent sets the client identification merged into created_by tags.
func WithAgent(agent string) Option {
	return func(c *config) error {
		if agent == "" {
			return errors.New("agent cannot be empty")
		}
		c.agent = agent
		return nil
	}
}

// WithStore sets the preference store backing history and validation rules.
func WithStore(store Store) Option {
	return func(c *config) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		c.store = store
		return nil
	}
}

// WithHistoryLimit bounds the number of retained history entries.
func WithHistoryLimit(limit int) Option {
	return func(c *config) error {
		if limit < 1 {
			return errors.New("history limit must be positive")
		}
		c.historyLimit = limit
		return nil
	}
}

// WithHistoryMaxAge fixes the comment staleness window instead of reading it
// from the preference store. Zero or negative disables comment recording.
func WithHistoryMaxAge(maxAge time.Duration) Option {
	return func(c *config) error {
		c.historyMaxAge = &maxAge
		return nil
	}
}

// WithClock sets the time source used for history staleness, a test seam.
func WithClock(clock func() utc.Time) Option {
	return func(c *config) error {
		c.clock = clock
		return nil
	}
}

// WithLogger sets the logger for preparation tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithCommentRule overrides the comment term rule instead of loading it from
// the preference store.
func WithCommentRule(rule validate.Rule) Option {
	return func(c *config) error {
		c.commentRule = func(Store) validate.Rule { return rule }
		return nil
	}
}

// WithSourceRule overrides the source term rule instead of loading it from
// the preference store.
func WithSourceRule(rule validate.Rule) Option {
	return func(c *config) error {
		c.sourceRule = func(Store) validate.Rule { return rule }
		return nil
	}
}

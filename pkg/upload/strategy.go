// Package upload defines the strategy used to partition a changeset upload
// into API requests and validates the strategy before the upload starts.
package upload

import (
	"fmt"
	"strconv"

	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/errors"
)

// Strategy enumerates how the primitives of an upload are partitioned into
// API requests.
type Strategy string

// Supported upload strategies. The string forms double as preference values.
const (
	// SingleRequest uploads everything in one request.
	SingleRequest Strategy = "singlerequest"

	// IndividualObjects uploads one request per primitive.
	IndividualObjects Strategy = "individualobjects"

	// Chunked uploads fixed-size batches of primitives.
	Chunked Strategy = "chunked"
)

// DefaultStrategy is used when no strategy preference is stored.
const DefaultStrategy = IndividualObjects

// UnspecifiedChunkSize is the sentinel for a chunk size the user has not set.
const UnspecifiedChunkSize = -1

// String returns the preference string form of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy parses the preference string form of a strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case SingleRequest, IndividualObjects, Chunked:
		return Strategy(s), nil
	default:
		return "", errors.NewParseError("strategy", "", fmt.Sprintf("unknown upload strategy %q", s), nil)
	}
}

// Specification describes the chosen strategy plus its parameters.
type Specification struct {
	// Strategy is the chosen partitioning strategy.
	Strategy Strategy

	// ChunkSize is the batch size for the chunked strategy.
	// UnspecifiedChunkSize means the user has not chosen one yet.
	ChunkSize int

	// CloseChangesetAfterUpload closes the changeset once the upload is done.
	CloseChangesetAfterUpload bool
}

// NewSpecification returns a specification with defaults applied.
func NewSpecification() Specification {
	return Specification{
		Strategy:  DefaultStrategy,
		ChunkSize: UnspecifiedChunkSize,
	}
}

// Validate reports whether the specification can drive an upload. A chunked
// strategy without a positive chunk size is a blocking, user-correctable
// condition returned as a ChunkSizeError.
func (s Specification) Validate() error {
	if s.Strategy == Chunked && s.ChunkSize <= 0 {
		return errors.NewChunkSizeError(s.ChunkSize)
	}
	return nil
}

// Store persists the strategy choice in the preference store.
type Store interface {
	// String returns the string stored under key, or def when unset.
	String(key string, def string) string

	// PutString stores a string under key.
	PutString(key, value string)
}

// Load reads the stored strategy specification, degrading to defaults for
// missing or malformed values.
func Load(store Store) Specification {
	spec := NewSpecification()
	if strategy, err := ParseStrategy(store.String(constants.UploadStrategyKey, DefaultStrategy.String())); err == nil {
		spec.Strategy = strategy
	}
	if size, err := strconv.Atoi(store.String(constants.UploadChunkSizeKey, "")); err == nil && size > 0 {
		spec.ChunkSize = size
	}
	return spec
}

// Save writes the strategy specification back to the preference store.
func Save(store Store, spec Specification) {
	store.PutString(constants.UploadStrategyKey, spec.Strategy.String())
	if spec.ChunkSize > 0 {
		store.PutString(constants.UploadChunkSizeKey, strconv.Itoa(spec.ChunkSize))
	} else {
		store.PutString(constants.UploadChunkSizeKey, "")
	}
}

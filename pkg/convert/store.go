package convert

import (
	"github.com/osmkit/changeset/pkg/constants"
)

// Store persists the conversion policy in the preference store.
type Store interface {
	// String returns the string stored under key, or def when unset.
	String(key, def string) string

	// PutString stores a string under key.
	PutString(key, value string)

	// List returns the string list stored under key, or def when unset.
	List(key string, def []string) []string

	// PutList stores a string list under key.
	PutList(key string, values []string)
}

// LoadMode reads the configured conversion mode, degrading to the default for
// missing or malformed values.
func LoadMode(store Store) Mode {
	mode, err := ParseMode(store.String(constants.GpxConvertKey, DefaultMode.String()))
	if err != nil {
		return DefaultMode
	}
	return mode
}

// LoadLastMode reads the last interactive choice, used to preselect the
// user's answer the next time they are asked. Defaults to ModeAll.
func LoadLastMode(store Store) Mode {
	mode, err := ParseMode(store.String(constants.GpxConvertLastKey, ModeAll.String()))
	if err != nil {
		return ModeAll
	}
	return mode
}

// LoadLists reads the keep and drop key lists.
func LoadLists(store Store) (yes, no []string) {
	return store.List(constants.GpxConvertYesKey, nil), store.List(constants.GpxConvertNoKey, nil)
}

// SaveOutcome writes a resolved choice back to the preference store: the
// policy mode, the last interactive choice, and the updated key lists.
func SaveOutcome(store Store, out Outcome) {
	store.PutString(constants.GpxConvertKey, out.Mode.String())
	store.PutString(constants.GpxConvertLastKey, out.LastMode.String())
	store.PutList(constants.GpxConvertYesKey, out.Yes)
	store.PutList(constants.GpxConvertNoKey, out.No)
}

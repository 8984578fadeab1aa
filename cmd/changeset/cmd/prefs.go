package cmd

import (
	"os"

	"github.com/osmkit/changeset/internal/prefs"
	"github.com/osmkit/changeset/pkg/logging"
)

// openStore loads the preference file, or returns an empty store when the
// file does not exist yet.
func openStore() (*prefs.Store, string, error) {
	path, err := defaultPrefsPath()
	if err != nil {
		return nil, "", err
	}

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		logging.Debug().Str("path", path).Msg("Preference file missing, starting empty")
		return prefs.New(), path, nil
	}

	store, err := prefs.Load(path)
	if err != nil {
		return nil, "", err
	}
	return store, path, nil
}

// saveStore persists the store back to its preference file.
func saveStore(store *prefs.Store, path string) error {
	if err := store.SaveAs(path); err != nil {
		return err
	}
	logging.Debug().Str("path", path).Msg("Saved preferences")
	return nil
}

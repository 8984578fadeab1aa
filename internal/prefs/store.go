// Package prefs provides the preference store backing history lists,
// validation term lists, and strategy choices. It wraps Viper so values can
// come from config files, environment variables, or runtime writes.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/errors"
)

// Store reads and writes preference values by key. Every getter takes the
// default to return for unset keys, mirroring how callers declare their
// fallbacks at the call site.
type Store struct {
	v *viper.Viper
}

// New creates an empty in-memory preference store.
func New() *Store {
	return &Store{v: viper.New()}
}

// Load creates a store backed by the YAML preference file at path.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError("prefs", "reading preference file", err)
	}
	return &Store{v: v}, nil
}

// SaveAs writes the current preferences to a YAML file at path, creating
// missing parent directories.
func (s *Store) SaveAs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.NewConfigError("prefs", "creating preference directory", err)
	}
	if err := s.v.WriteConfigAs(path); err != nil {
		return errors.NewConfigError("prefs", "writing preference file", err)
	}
	if err := os.Chmod(path, constants.FilePermissions); err != nil {
		return errors.NewConfigError("prefs", "setting preference file permissions", err)
	}
	return nil
}

// List returns the string list stored under key, or def when unset.
func (s *Store) List(key string, def []string) []string {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetStringSlice(key)
}

// PutList stores a string list under key.
func (s *Store) PutList(key string, values []string) {
	s.v.Set(key, values)
}

// String returns the string stored under key, or def when unset.
func (s *Store) String(key, def string) string {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetString(key)
}

// PutString stores a string under key.
func (s *Store) PutString(key, value string) {
	s.v.Set(key, value)
}

// Int returns the integer stored under key, or def when unset.
func (s *Store) Int(key string, def int) int {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetInt(key)
}

// PutInt stores an integer under key.
func (s *Store) PutInt(key string, value int) {
	s.v.Set(key, value)
}

// Int64 returns the integer stored under key, or def when unset.
func (s *Store) Int64(key string, def int64) int64 {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetInt64(key)
}

// PutInt64 stores an integer under key.
func (s *Store) PutInt64(key string, value int64) {
	s.v.Set(key, value)
}

// Bool returns the boolean stored under key, or def when unset.
func (s *Store) Bool(key string, def bool) bool {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetBool(key)
}

// PutBool stores a boolean under key.
func (s *Store) PutBool(key string, value bool) {
	s.v.Set(key, value)
}

// HistoryLimit returns the configured history size bound.
func (s *Store) HistoryLimit() int {
	return s.Int("upload.history.size", constants.DefaultHistoryLimit)
}

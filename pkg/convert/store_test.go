package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/convert"
)

type memStore struct {
	strings map[string]string
	lists   map[string][]string
}

func newMemStore() *memStore {
	return &memStore{strings: map[string]string{}, lists: map[string][]string{}}
}

func (s *memStore) String(key, def string) string {
	if v, ok := s.strings[key]; ok {
		return v
	}
	return def
}

func (s *memStore) PutString(key, value string) { s.strings[key] = value }

func (s *memStore) List(key string, def []string) []string {
	if v, ok := s.lists[key]; ok {
		return v
	}
	return def
}

func (s *memStore) PutList(key string, values []string) { s.lists[key] = values }

func TestLoadModeDefaults(t *testing.T) {
	store := newMemStore()

	assert.Equal(t, convert.ModeAsk, convert.LoadMode(store))
	assert.Equal(t, convert.ModeAll, convert.LoadLastMode(store))

	yes, no := convert.LoadLists(store)
	assert.Empty(t, yes)
	assert.Empty(t, no)
}

func TestLoadModeMalformedDegrades(t *testing.T) {
	store := newMemStore()
	store.strings[constants.GpxConvertKey] = "sometimes"
	store.strings[constants.GpxConvertLastKey] = "maybe"

	assert.Equal(t, convert.ModeAsk, convert.LoadMode(store))
	assert.Equal(t, convert.ModeAll, convert.LoadLastMode(store))
}

func TestSaveOutcomeRoundTrip(t *testing.T) {
	store := newMemStore()

	out := convert.Resolve(convert.Choice{
		Mode:     convert.ModeList,
		Kept:     []string{"name"},
		Remember: true,
	}, []string{"name", "desc"}, nil, nil)

	convert.SaveOutcome(store, out)

	assert.Equal(t, convert.ModeList, convert.LoadMode(store))
	assert.Equal(t, convert.ModeList, convert.LoadLastMode(store))

	yes, no := convert.LoadLists(store)
	assert.Equal(t, []string{"name"}, yes)
	assert.Equal(t, []string{"desc"}, no)
}

func TestSaveOutcomeWithoutRemember(t *testing.T) {
	store := newMemStore()

	out := convert.Resolve(convert.Choice{
		Mode: convert.ModeAll,
		Kept: []string{"name", "desc"},
	}, []string{"name", "desc"}, nil, nil)

	convert.SaveOutcome(store, out)

	// the policy stays ask; only the last interactive choice is recorded
	assert.Equal(t, convert.ModeAsk, convert.LoadMode(store))
	assert.Equal(t, convert.ModeAll, convert.LoadLastMode(store))
}

package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmkit/changeset/pkg/errors"
	"github.com/osmkit/changeset/pkg/presets"
)

func TestTypes(t *testing.T) {
	types, err := presets.Types("node,way,closedway")
	require.NoError(t, err)
	assert.Equal(t, []presets.Type{presets.TypeNode, presets.TypeWay, presets.TypeClosedWay}, types)
}

func TestTypesDeduplicates(t *testing.T) {
	types, err := presets.Types("node,node,way")
	require.NoError(t, err)
	assert.Equal(t, []presets.Type{presets.TypeNode, presets.TypeWay}, types)
}

func TestTypesCached(t *testing.T) {
	first, err := presets.Types("relation,multipolygon")
	require.NoError(t, err)

	second, err := presets.Types("relation,multipolygon")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTypesEmpty(t *testing.T) {
	_, err := presets.Types("")
	assert.True(t, errors.IsInvalidInput(err))
}

func TestTypesUnknownToken(t *testing.T) {
	_, err := presets.Types("node,area")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	// a later valid parse of the same prefix is unaffected
	_, err = presets.Types("node")
	assert.NoError(t, err)
}

func TestParseTypeTrimsWhitespace(t *testing.T) {
	typ, err := presets.ParseType(" way ")
	require.NoError(t, err)
	assert.Equal(t, presets.TypeWay, typ)
}

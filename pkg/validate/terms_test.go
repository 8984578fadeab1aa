package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmkit/changeset/pkg/errors"
	"github.com/osmkit/changeset/pkg/validate"
)

func TestValidateMandatoryTermsSatisfied(t *testing.T) {
	rule := validate.Rule{Subject: "comment", Mandatory: []string{"survey"}}
	assert.NoError(t, rule.Validate("survey complete"))
}

func TestValidateForbiddenTermFound(t *testing.T) {
	rule := validate.Rule{
		Subject:   "comment",
		Mandatory: []string{"fixed"},
		Forbidden: []string{"test"},
	}

	err := rule.Validate("Fixed a test road")
	require.Error(t, err)

	var forbidden *errors.ForbiddenTermsError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, []string{"test"}, forbidden.Terms)
	assert.True(t, errors.IsUploadRejected(err))
}

func TestValidateMissingMandatoryTerms(t *testing.T) {
	rule := validate.Rule{Subject: "source", Mandatory: []string{"survey", "bing"}}

	err := rule.Validate("local knowledge")
	require.Error(t, err)

	var missing *errors.MissingTermsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"survey", "bing"}, missing.Terms)
}

func TestValidateMissingReportedBeforeForbidden(t *testing.T) {
	rule := validate.Rule{
		Mandatory: []string{"fixed"},
		Forbidden: []string{"test"},
	}

	err := rule.Validate("a test road")
	var missing *errors.MissingTermsError
	require.ErrorAs(t, err, &missing)
}

func TestValidateExceptionSuppressesForbidden(t *testing.T) {
	rule := validate.Rule{
		Forbidden:  []string{"import"},
		Exceptions: []string{"approved import"},
	}

	assert.Error(t, rule.Validate("bulk import of buildings"))
	assert.NoError(t, rule.Validate("approved import of buildings"))
}

func TestValidateCaseInsensitive(t *testing.T) {
	rule := validate.Rule{
		Mandatory:  []string{"FIXED"},
		Forbidden:  []string{"TEST"},
		Exceptions: []string{"CONTEST"},
	}

	assert.NoError(t, rule.Validate("fixed the contest venue"))
	assert.Error(t, rule.Validate("fixed a test road"))
}

func TestValidateEmptyRulePasses(t *testing.T) {
	assert.NoError(t, validate.Rule{}.Validate("anything at all"))
	assert.NoError(t, validate.Rule{}.Validate(""))
}

type fakeStore map[string][]string

func (f fakeStore) List(key string, def []string) []string {
	if v, ok := f[key]; ok {
		return v
	}
	return def
}

func TestLoadRule(t *testing.T) {
	store := fakeStore{
		"upload.comment.mandatory-terms": {"survey"},
		"upload.comment.forbidden-terms": {"test"},
	}

	def := validate.Rule{Subject: "comment", Exceptions: []string{"contest"}}
	rule := validate.LoadRule(store, "upload.comment", def)

	assert.Equal(t, []string{"survey"}, rule.Mandatory)
	assert.Equal(t, []string{"test"}, rule.Forbidden)
	// unset list falls back to the default
	assert.Equal(t, []string{"contest"}, rule.Exceptions)
	assert.Equal(t, "comment", rule.Subject)
}

// Package validate checks user-supplied changeset comment and source values
// against configurable term lists and length heuristics before an upload.
package validate

import (
	"strings"

	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/errors"
)

// Store reads term lists from the preference store.
type Store interface {
	// List returns the string list stored under key, or def when unset.
	List(key string, def []string) []string
}

// Rule is a named set of term lists applied to an upload value. All terms are
// matched case-insensitively as substrings.
type Rule struct {
	// Subject names what is validated, e.g. "comment" or "source".
	Subject string

	// Mandatory terms must all be contained in the value.
	Mandatory []string

	// Forbidden terms must not be contained in the value.
	Forbidden []string

	// Exceptions suppress forbidden-term failures when contained in the value.
	Exceptions []string
}

// LoadRule builds a rule from the preference store under the given prefix,
// falling back to the defaults of def for unset lists. The prefix is combined
// with the ".mandatory-terms", ".forbidden-terms" and ".exception-terms"
// suffixes, e.g. "upload.comment.mandatory-terms".
func LoadRule(store Store, prefix string, def Rule) Rule {
	return Rule{
		Subject:    def.Subject,
		Mandatory:  store.List(prefix+constants.MandatoryTermsSuffix, def.Mandatory),
		Forbidden:  store.List(prefix+constants.ForbiddenTermsSuffix, def.Forbidden),
		Exceptions: store.List(prefix+constants.ExceptionTermsSuffix, def.Exceptions),
	}
}

// Validate checks value against the rule. Missing mandatory terms are
// reported before forbidden terms; a forbidden term is only reported when no
// exception term is contained in the value. A nil return means the value
// passed.
func (r Rule) Validate(value string) error {
	valueLc := strings.ToLower(value)

	var missing []string
	for _, term := range r.Mandatory {
		if !strings.Contains(valueLc, strings.ToLower(term)) {
			missing = append(missing, strings.ToLower(term))
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingTermsError(r.subject(), missing)
	}

	excepted := false
	for _, term := range r.Exceptions {
		if strings.Contains(valueLc, strings.ToLower(term)) {
			excepted = true
			break
		}
	}

	var forbidden []string
	for _, term := range r.Forbidden {
		if strings.Contains(valueLc, strings.ToLower(term)) && !excepted {
			forbidden = append(forbidden, strings.ToLower(term))
		}
	}
	if len(forbidden) > 0 {
		return errors.NewForbiddenTermsError(r.subject(), forbidden)
	}

	return nil
}

func (r Rule) subject() string {
	if r.Subject == "" {
		return "value"
	}
	return r.Subject
}

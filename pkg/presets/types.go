// Package presets parses the primitive type lists declared by tagging
// presets, memoizing parse results since the same attribute strings repeat
// across thousands of preset items.
package presets

import (
	"fmt"
	"strings"

	"github.com/osmkit/changeset/internal/lru"
	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/errors"
)

// Type is a primitive type a tagging preset applies to.
type Type string

// Supported preset primitive types.
const (
	TypeNode         Type = "node"
	TypeWay          Type = "way"
	TypeClosedWay    Type = "closedway"
	TypeRelation     Type = "relation"
	TypeMultipolygon Type = "multipolygon"
)

// String returns the attribute string form of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType parses a single preset type token.
func ParseType(s string) (Type, error) {
	switch Type(strings.TrimSpace(s)) {
	case TypeNode, TypeWay, TypeClosedWay, TypeRelation, TypeMultipolygon:
		return Type(strings.TrimSpace(s)), nil
	default:
		return "", errors.NewValidationError("types", s, fmt.Sprintf("unknown preset type %q", s))
	}
}

// typeCache memoizes successful parses of the types attribute.
var typeCache = lru.New[string, []Type](constants.TypeCacheSize)

// Types parses a comma-separated preset types attribute into the set of
// primitive types, deduplicated and order-preserving. Empty attributes and
// unknown tokens are validation errors; only successful parses are cached.
func Types(attr string) ([]Type, error) {
	if attr == "" {
		return nil, errors.NewValidationError("types", attr, "empty types attribute")
	}
	if cached, ok := typeCache.Get(attr); ok {
		return cached, nil
	}

	var out []Type
	seen := make(map[Type]struct{})
	for _, token := range strings.Split(attr, ",") {
		t, err := ParseType(token)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	typeCache.Put(attr, out)
	return out, nil
}

// Package convert implements the decision kernel for converting GPX fields
// into OSM tags: which discovered keys to keep, which to drop, and when the
// caller has to ask the user.
package convert

import (
	"fmt"

	"github.com/osmkit/changeset/pkg/errors"
)

// Mode is the configured tag conversion policy.
type Mode string

// Supported conversion modes. The string forms double as preference values.
const (
	// ModeAll converts every discovered field.
	ModeAll Mode = "all"

	// ModeList converts only the fields on the keep list.
	ModeList Mode = "list"

	// ModeAsk defers the decision to the user on every conversion.
	ModeAsk Mode = "ask"

	// ModeNo converts no fields.
	ModeNo Mode = "no"
)

// DefaultMode applies when no conversion preference is stored.
const DefaultMode = ModeAsk

// String returns the preference string form of the mode.
func (m Mode) String() string {
	return string(m)
}

// ParseMode parses the preference string form of a conversion mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll, ModeList, ModeAsk, ModeNo:
		return Mode(s), nil
	default:
		return "", errors.NewParseError("mode", "", fmt.Sprintf("unknown conversion mode %q", s), nil)
	}
}

// Action is the outcome of planning a conversion.
type Action int

const (
	// KeepAll keeps every converted tag.
	KeepAll Action = iota

	// KeepListed keeps only the tags whose keys are in Decision.Keep.
	KeepListed

	// DropAll removes every converted tag.
	DropAll

	// NeedsChoice means the caller must ask the user before proceeding.
	NeedsChoice
)

// Decision is the planned handling of the discovered keys.
type Decision struct {
	Action Action

	// Keep lists the keys to retain when Action is KeepListed.
	Keep []string
}

// Plan decides how the discovered keys are handled under the given mode and
// keep/drop lists. The user must be consulted when the mode says to always
// ask, or when a discovered key is on neither list.
func Plan(mode Mode, discovered, yes, no []string) Decision {
	switch mode {
	case ModeNo:
		return Decision{Action: DropAll}
	case ModeAll:
		return Decision{Action: KeepAll}
	}

	// list or ask: nothing to filter without discovered keys
	if len(discovered) == 0 {
		return Decision{Action: KeepAll}
	}

	known := make(map[string]struct{}, len(yes)+len(no))
	for _, k := range yes {
		known[k] = struct{}{}
	}
	for _, k := range no {
		known[k] = struct{}{}
	}

	if mode == ModeAsk {
		return Decision{Action: NeedsChoice}
	}
	for _, k := range discovered {
		if _, ok := known[k]; !ok {
			return Decision{Action: NeedsChoice}
		}
	}

	if containsAll(yes, discovered) {
		return Decision{Action: KeepAll}
	}
	return Decision{Action: KeepListed, Keep: append([]string(nil), yes...)}
}

// Choice is the user's answer to a NeedsChoice plan.
type Choice struct {
	// Mode is the selected handling: ModeAll, ModeList or ModeNo.
	Mode Mode

	// Kept holds the discovered keys the user checked. Unchecked discovered
	// keys go to the drop list.
	Kept []string

	// Remember persists Mode as the new policy instead of asking again.
	Remember bool
}

// Outcome carries the state to persist and the resulting decision after a
// user choice has been applied.
type Outcome struct {
	Decision Decision

	// Yes and No are the updated keep/drop lists.
	Yes []string
	No  []string

	// Mode is the policy to persist, and LastMode the last interactive choice.
	Mode     Mode
	LastMode Mode
}

// Resolve reassigns every discovered key to the keep or drop list according
// to the user's choice and derives the final decision. Lists stay
// deduplicated and order-preserving.
func Resolve(choice Choice, discovered, yes, no []string) Outcome {
	kept := make(map[string]struct{}, len(choice.Kept))
	for _, k := range choice.Kept {
		kept[k] = struct{}{}
	}

	outYes := append([]string(nil), yes...)
	outNo := append([]string(nil), no...)
	for _, k := range discovered {
		if _, ok := kept[k]; ok {
			outYes = appendUnique(outYes, k)
			outNo = remove(outNo, k)
		} else {
			outNo = appendUnique(outNo, k)
			outYes = remove(outYes, k)
		}
	}

	out := Outcome{
		Yes:      outYes,
		No:       outNo,
		LastMode: choice.Mode,
		Mode:     DefaultMode,
	}
	if choice.Remember {
		out.Mode = choice.Mode
	}

	switch choice.Mode {
	case ModeAll:
		out.Decision = Decision{Action: KeepAll}
	case ModeNo:
		out.Decision = Decision{Action: DropAll}
	default:
		if containsAll(outYes, discovered) {
			out.Decision = Decision{Action: KeepAll}
		} else {
			out.Decision = Decision{Action: KeepListed, Keep: append([]string(nil), outYes...)}
		}
	}
	return out
}

func containsAll(haystack, needles []string) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, k := range haystack {
		set[k] = struct{}{}
	}
	for _, k := range needles {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func remove(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

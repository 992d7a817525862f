package bot

import (
	"santase/internal/domain"
)

// Rule is one named step of a decision ladder. Apply returns false when the
// rule does not fire.
type Rule struct {
	Name  string
	Apply func(t *turn) (domain.Action, bool)
}

// Ladder is an ordered list of rules; the first one that fires wins.
type Ladder []Rule

// Decide runs the rules in order and returns the first action produced.
func (l Ladder) Decide(t *turn) (domain.Action, string, bool) {
	for _, r := range l {
		if action, ok := r.Apply(t); ok {
			return action, r.Name, true
		}
	}
	return domain.Action{}, "", false
}

// Names lists the rule names in evaluation order.
func (l Ladder) Names() []string {
	names := make([]string, len(l))
	for i, r := range l {
		names[i] = r.Name
	}
	return names
}

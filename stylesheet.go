package gstyle

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrStyleSheetCycle is returned when group inheritance forms a cycle.
	ErrStyleSheetCycle = errors.New("gstyle: style sheet contains a cycle")
	// ErrDuplicateTrait is returned when two rules use the same trait.
	ErrDuplicateTrait = errors.New("gstyle: duplicate trait")
	// ErrUnknownGroup is returned when a trait inherits an undeclared group.
	ErrUnknownGroup = errors.New("gstyle: unknown group")
)

// Target describes a component for trait matching.
type Target struct {
	ID     string
	Type   string
	Groups []string
}

// Trait selects the components a rule applies to. Empty fields match
// anything; a trait with no fields matches every component.
type Trait struct {
	ID    string
	Type  string
	Group string
	// Inherits names groups whose rules run before this one.
	Inherits []string
}

func (t Trait) key() string {
	return t.ID + "\x00" + t.Type + "\x00" + t.Group
}

func (t Trait) String() string {
	switch {
	case t.ID != "":
		return "#" + t.ID
	case t.Group != "":
		return "." + t.Group
	case t.Type != "":
		return t.Type
	}
	return "*"
}

func (t Trait) matches(target Target) bool {
	return (t.ID == "" || t.ID == target.ID) &&
		(t.Type == "" || t.Type == target.Type) &&
		(t.Group == "" || slices.Contains(target.Groups, t.Group))
}

// Rule styles every component its trait matches.
type Rule struct {
	Trait Trait
	Apply func(Style) Style
}

// StyleSheet applies rules to components in inheritance order: a rule for
// a group runs after the rules of the groups it inherits, and rules that
// are otherwise unordered run in declaration order.
type StyleSheet struct {
	rules   []Rule
	order   []int            // rule indices, parents first
	byGroup map[string][]int // group name to rule indices
}

// NewStyleSheet builds a style sheet. It fails on duplicate traits, on
// inheritance of undeclared groups, and on inheritance cycles.
func NewStyleSheet(rules ...Rule) (*StyleSheet, error) {
	ss := &StyleSheet{
		rules:   slices.Clone(rules),
		byGroup: make(map[string][]int),
	}
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		k := r.Trait.key()
		if seen[k] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateTrait, r.Trait)
		}
		seen[k] = true
		if r.Trait.Group != "" {
			ss.byGroup[r.Trait.Group] = append(ss.byGroup[r.Trait.Group], i)
		}
	}
	for _, r := range rules {
		for _, g := range r.Trait.Inherits {
			if _, ok := ss.byGroup[g]; !ok {
				return nil, fmt.Errorf("%w %q inherited by %v", ErrUnknownGroup, g, r.Trait)
			}
		}
	}
	order, err := ss.sort()
	if err != nil {
		return nil, err
	}
	ss.order = order
	return ss, nil
}

// sort orders the rules parents first with a depth-first search.
func (ss *StyleSheet) sort() ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(ss.rules))
	order := make([]int, 0, len(ss.rules))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w at %v", ErrStyleSheetCycle, ss.rules[i].Trait)
		}
		state[i] = visiting
		for _, g := range ss.rules[i].Trait.Inherits {
			for _, parent := range ss.byGroup[g] {
				if err := visit(parent); err != nil {
					return err
				}
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}
	for i := range ss.rules {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Len returns the number of rules.
func (ss *StyleSheet) Len() int { return len(ss.rules) }

// Run applies every rule matching target, and the rules of the groups they
// inherit, to start.
func (ss *StyleSheet) Run(target Target, start Style) Style {
	applicable := make([]bool, len(ss.rules))
	var mark func(i int)
	mark = func(i int) {
		if applicable[i] {
			return
		}
		applicable[i] = true
		for _, g := range ss.rules[i].Trait.Inherits {
			for _, parent := range ss.byGroup[g] {
				mark(parent)
			}
		}
	}
	for i, r := range ss.rules {
		if r.Trait.matches(target) {
			mark(i)
		}
	}
	s := start
	for _, i := range ss.order {
		if applicable[i] && ss.rules[i].Apply != nil {
			s = ss.rules[i].Apply(s)
		}
	}
	return s
}

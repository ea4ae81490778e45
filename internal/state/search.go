package state

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern indicates a search string that does not compile as a
// regular expression.
var ErrInvalidPattern = errors.New("invalid search pattern")

// compileSearch compiles pattern case-insensitively, anchored at the
// start of the matched field. Matching stops at the pattern's end, so
// "rtr" matches "rtr1" but "tr1" matches nothing.
func compileSearch(pattern string) (*regexp.Regexp, error) {
	// The raw pattern must compile on its own before wrapping. A string
	// with an unbalanced ")" would otherwise close the anchoring group
	// early and match mid-field.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	re, err := regexp.Compile("^(?i:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

func matches(re *regexp.Regexp, e Entity) bool {
	return re.MatchString(e.EntityID()) || re.MatchString(e.EntityName())
}

// SearchFirst returns the first entity in collection order whose id or
// name matches pattern, scanning no further than the first hit.
func SearchFirst[E Entity](entities []E, pattern string) (E, bool, error) {
	var zero E
	re, err := compileSearch(pattern)
	if err != nil {
		return zero, false, err
	}
	for _, e := range entities {
		if matches(re, e) {
			return e, true, nil
		}
	}
	return zero, false, nil
}

// SearchAll returns every matching entity, preserving collection order.
// A nil result means zero matches, which callers may treat as distinct
// from an empty collection.
func SearchAll[E Entity](entities []E, pattern string) ([]E, error) {
	re, err := compileSearch(pattern)
	if err != nil {
		return nil, err
	}
	var matched []E
	for _, e := range entities {
		if matches(re, e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

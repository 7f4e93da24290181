// Package lightning provides a thin, stateful wrapper around the
// lightning remark pattern: a set of small, purpose-built accessors
// over a single regex match.
package lightning

import (
	"strings"

	"github.com/aerowx/noaaweather/pattern"
)

// typeOrder is the fixed order types are concatenated in by
// TypesString, regardless of the order they appeared in the input.
var typeOrder = []string{"IC", "CC", "CG", "CA", "CW"}

var typeGroups = map[string]string{
	"IC": "typeic",
	"CC": "typecc",
	"CG": "typecg",
	"CA": "typeca",
	"CW": "typecw",
}

// Matcher binds a single regex match attempt against an input string.
type Matcher struct {
	input   string
	groups  map[string]string
	matched bool
}

// New creates a Matcher over input. Call Find before using any other method.
func New(input string) *Matcher {
	return &Matcher{input: input}
}

// Find attempts to match the lightning pattern against the input,
// returning whether it matched. It may be called more than once; each
// call re-evaluates the same input.
func (m *Matcher) Find() bool {
	groups, _, ok := pattern.Groups(pattern.Lightning, m.input)
	m.groups = groups
	m.matched = ok
	return ok
}

// Group returns the matched text for a named capture group, or false
// if that group did not participate in the match. Group panics if name
// is not a group defined on the lightning pattern — that is a
// programmer error, not a data error.
func (m *Matcher) Group(name string) (string, bool) {
	if !validGroupName(name) {
		panic("lightning: unknown group name " + name)
	}
	if !m.matched {
		return "", false
	}
	v, ok := m.groups[name]
	return v, ok
}

func validGroupName(name string) bool {
	for _, n := range pattern.Lightning.SubexpNames() {
		if n == name {
			return true
		}
	}
	return false
}

// HasAnyTypes reports whether any of the IC/CC/CG/CA/CW type groups matched.
func (m *Matcher) HasAnyTypes() bool {
	if !m.matched {
		return false
	}
	for _, g := range typeGroups {
		if m.groups[g] != "" {
			return true
		}
	}
	return false
}

// TypesString returns the concatenation of all matched type codes in
// fixed order IC, CC, CG, CA, CW, or ("", false) if none matched.
func (m *Matcher) TypesString() (string, bool) {
	if !m.HasAnyTypes() {
		return "", false
	}
	var sb strings.Builder
	for _, code := range typeOrder {
		if m.groups[typeGroups[code]] != "" {
			sb.WriteString(code)
		}
	}
	return sb.String(), true
}

// HasType reports whether code appears among the matched types.
func (m *Matcher) HasType(code string) bool {
	types, ok := m.TypesString()
	if !ok {
		return false
	}
	return strings.Contains(types, code)
}

// ReplaceFirst returns the input with the first match of the lightning
// pattern replaced by replacement.
func (m *Matcher) ReplaceFirst(replacement string) string {
	loc := pattern.Lightning.FindStringIndex(m.input)
	if loc == nil {
		return m.input
	}
	return m.input[:loc[0]] + replacement + m.input[loc[1]:]
}

// Frequency returns the OCNL/FRQ/CONS frequency qualifier, if present.
func (m *Matcher) Frequency() (string, bool) {
	return m.Group("freq")
}

// Location returns the DSNT/VC/OHD/AP... location qualifier, if present.
func (m *Matcher) Location() (string, bool) {
	return m.Group("loc")
}

// Direction returns the primary and, if present, secondary compass
// direction of the lightning activity.
func (m *Matcher) Direction() (primary, secondary string, ok bool) {
	primary, ok = m.Group("dir")
	secondary, _ = m.Group("dir2")
	return primary, secondary, ok
}

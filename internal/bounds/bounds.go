// Package bounds holds the optional minimum and maximum accepted by the
// numeric-entry dialog.
//
// A Policy is a value type. SetMin and SetMax return an updated copy and never
// fail: text that is empty, disabled or not a number simply leaves the bound
// absent. When a new bound conflicts with the other one (min > max), the
// older bound is cleared and its enabled flag reset. The most recently written
// bound always wins; callers observe the loss through Cleared.
package bounds

import (
	"github.com/dshills/calcsettings/internal/numeric"
)

// Side identifies one of the two bounds.
type Side uint8

const (
	// SideNone means no bound.
	SideNone Side = iota
	// SideMin is the minimum bound.
	SideMin
	// SideMax is the maximum bound.
	SideMax
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideMin:
		return "min"
	case SideMax:
		return "max"
	default:
		return "unknown"
	}
}

// Policy is an optional [min, max] range. If both bounds are present,
// min <= max holds after every mutation.
type Policy struct {
	min, max               *numeric.Value
	minEnabled, maxEnabled bool
	cleared                Side
}

// SetMin returns the policy with the minimum set from text.
func (p Policy) SetMin(text string, enabled bool) Policy {
	p.min = parseBound(text, enabled)
	p.minEnabled = enabled
	p.cleared = SideNone
	if p.conflicting() {
		p.max = nil
		p.maxEnabled = false
		p.cleared = SideMax
	}
	return p
}

// SetMax returns the policy with the maximum set from text.
func (p Policy) SetMax(text string, enabled bool) Policy {
	p.max = parseBound(text, enabled)
	p.maxEnabled = enabled
	p.cleared = SideNone
	if p.conflicting() {
		p.min = nil
		p.minEnabled = false
		p.cleared = SideMin
	}
	return p
}

// Min returns the minimum, or nil when unbounded below.
func (p Policy) Min() *numeric.Value {
	return copyValue(p.min)
}

// Max returns the maximum, or nil when unbounded above.
func (p Policy) Max() *numeric.Value {
	return copyValue(p.max)
}

// MinEnabled reports the state of the minimum's enabling flag.
func (p Policy) MinEnabled() bool {
	return p.minEnabled
}

// MaxEnabled reports the state of the maximum's enabling flag.
func (p Policy) MaxEnabled() bool {
	return p.maxEnabled
}

// Cleared reports which bound, if any, the last SetMin or SetMax call
// discarded to keep min <= max.
func (p Policy) Cleared() Side {
	return p.cleared
}

// Contains reports whether v lies inside the inclusive range.
// Absent bounds do not constrain.
func (p Policy) Contains(v numeric.Value) bool {
	if p.min != nil && v.Cmp(*p.min) < 0 {
		return false
	}
	if p.max != nil && v.Cmp(*p.max) > 0 {
		return false
	}
	return true
}

// Equal reports whether two policies hold the same bounds and flags.
func (p Policy) Equal(o Policy) bool {
	return numeric.Equal(p.min, o.min) &&
		numeric.Equal(p.max, o.max) &&
		p.minEnabled == o.minEnabled &&
		p.maxEnabled == o.maxEnabled
}

func (p Policy) conflicting() bool {
	return p.min != nil && p.max != nil && p.min.Cmp(*p.max) > 0
}

// parseBound returns nil for disabled, empty or unparseable text.
func parseBound(text string, enabled bool) *numeric.Value {
	if !enabled {
		return nil
	}
	v, err := numeric.Parse(text)
	if err != nil {
		return nil
	}
	return &v
}

func copyValue(v *numeric.Value) *numeric.Value {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Package dialog defines the immutable settings snapshot handed to the
// calculator dialog for one presentation.
//
// Build is a pure aggregation and never fails. In particular it does not check
// the initial value against the bounds: clamping or rejecting an out-of-range
// initial value is the dialog's job when it is presented.
package dialog

import (
	"github.com/dshills/calcsettings/internal/bounds"
	"github.com/dshills/calcsettings/internal/format"
	"github.com/dshills/calcsettings/internal/numeric"
)

// Behavior holds the dialog's boolean switches.
type Behavior struct {
	ExpressionShown          bool
	ExpressionEditable       bool
	AnswerButtonShown        bool
	SignButtonShown          bool
	OrderOfOperationsApplied bool
	EvaluateOnOperation      bool
	ZeroShownWhenNoValue     bool
}

// DefaultBehavior returns the switches a freshly created dialog uses.
func DefaultBehavior() Behavior {
	return Behavior{
		SignButtonShown:          true,
		OrderOfOperationsApplied: true,
		ZeroShownWhenNoValue:     true,
	}
}

// Settings is one dialog presentation's configuration. It is safe to share
// by pointer; nothing mutates it after Build.
type Settings struct {
	initial  *numeric.Value
	bounds   bounds.Policy
	format   format.Policy
	behavior Behavior
	layout   NumpadLayout
}

// Build aggregates the parts into Settings.
func Build(initial *numeric.Value, b bounds.Policy, f format.Policy, behavior Behavior, layout NumpadLayout) *Settings {
	s := &Settings{
		bounds:   b,
		format:   f,
		behavior: behavior,
		layout:   layout,
	}
	if initial != nil {
		s.initial = numeric.Ptr(*initial)
	}
	return s
}

// InitialValue returns the value the dialog opens with, or nil.
func (s *Settings) InitialValue() *numeric.Value {
	if s.initial == nil {
		return nil
	}
	return numeric.Ptr(*s.initial)
}

// Bounds returns the accepted range.
func (s *Settings) Bounds() bounds.Policy { return s.bounds }

// Format returns the formatting policy.
func (s *Settings) Format() format.Policy { return s.format }

// Behavior returns the boolean switches.
func (s *Settings) Behavior() Behavior { return s.behavior }

// NumpadLayout returns the digit button arrangement.
func (s *Settings) NumpadLayout() NumpadLayout { return s.layout }

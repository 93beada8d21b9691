package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/calcsettings/internal/bounds"
	"github.com/dshills/calcsettings/internal/config/registry"
	"github.com/dshills/calcsettings/internal/dialog"
	"github.com/dshills/calcsettings/internal/format"
	"github.com/dshills/calcsettings/internal/numeric"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	want := Options{
		Min:               Field{Text: "-10000000000", Enabled: true},
		Max:               Field{Text: "10000000000", Enabled: true},
		Style:             format.StyleStandard,
		MaxIntegerDigits:  Field{Text: "10", Enabled: true},
		MaxFractionDigits: Field{Text: "8", Enabled: true},
		Rounding:          numeric.RoundHalfEven,
		GroupSize:         -1,
		Placeholder:       format.DefaultPlaceholder,
		Behavior:          dialog.DefaultBehavior(),
		Layout:            dialog.LayoutCalculator,
	}
	if o != want {
		t.Errorf("DefaultOptions() = %+v, want %+v", o, want)
	}
}

func TestDefaultOptions_Policies(t *testing.T) {
	o := DefaultOptions()

	b := o.BoundsPolicy()
	if got := b.Min(); got == nil || got.String() != "-10000000000" {
		t.Errorf("BoundsPolicy().Min() = %v, want -10000000000", got)
	}
	if got := b.Max(); got == nil || got.String() != "10000000000" {
		t.Errorf("BoundsPolicy().Max() = %v, want 10000000000", got)
	}

	f := o.FormatPolicy()
	want := format.Derive(format.StyleStandard, "10", true, "8", true)
	if f != want {
		t.Errorf("FormatPolicy() = %+v, want %+v", f, want)
	}
}

func TestOptions_Set(t *testing.T) {
	tests := []struct {
		path  string
		raw   any
		check func(Options) bool
	}{
		{registry.BoundsMin, "abc", func(o Options) bool { return o.Min.Text == "abc" }},
		{registry.BoundsMaxEnabled, false, func(o Options) bool { return !o.Max.Enabled }},
		{registry.FormatStyle, "currency", func(o Options) bool { return o.Style == format.StyleCurrency }},
		{registry.FormatStyle, 1, func(o Options) bool { return o.Style == format.StyleCurrency }},
		{registry.FormatRounding, "floor", func(o Options) bool { return o.Rounding == numeric.RoundFloor }},
		{registry.FormatGroupSize, int64(4), func(o Options) bool { return o.GroupSize == 4 }},
		{registry.FormatPlaceholder, "", func(o Options) bool { return o.Placeholder == "" }},
		{registry.DialogExpressionEditable, true, func(o Options) bool { return o.Behavior.ExpressionEditable }},
		{registry.DialogNumpadLayout, 1, func(o Options) bool { return o.Layout == dialog.LayoutPhone }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			o := DefaultOptions()
			if err := o.Set(tt.path, tt.raw); err != nil {
				t.Fatalf("Set(%q, %v) error = %v", tt.path, tt.raw, err)
			}
			if !tt.check(o) {
				t.Errorf("Set(%q, %v) not applied: %+v", tt.path, tt.raw, o)
			}
		})
	}
}

func TestOptions_SetInvalid(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		raw      any
		wantCode ValidationErrorCode
		wantErr  error
	}{
		{"unknown", "bounds.step", "1", ErrCodeUnknownOption, ErrUnknownOption},
		{"bool as text", registry.BoundsMinEnabled, "yes", ErrCodeTypeMismatch, ErrTypeMismatch},
		{"text as int", registry.BoundsMin, 5, ErrCodeTypeMismatch, ErrTypeMismatch},
		{"style index", registry.FormatStyle, 7, ErrCodeInvalidSelector, ErrInvalidIndex},
		{"layout name", registry.DialogNumpadLayout, "grid", ErrCodeInvalidSelector, ErrInvalidEnum},
		{"group size", registry.FormatGroupSize, -3, ErrCodeOutOfRange, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			before := o

			err := o.Set(tt.path, tt.raw)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Set() error = %v, want *ValidationError", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", verr.Code, tt.wantCode)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Set() error = %v, want %v", err, tt.wantErr)
			}
			if o != before {
				t.Error("rejected Set() modified options")
			}
		})
	}
}

func TestOptions_SetText(t *testing.T) {
	o := DefaultOptions()

	if err := o.SetText(registry.BoundsMinEnabled, "off"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}
	if err := o.SetText(registry.FormatGroupSize, "0"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}
	if err := o.SetText(registry.DialogNumpadLayout, "1"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}
	if err := o.SetText(registry.FormatRounding, "HALF_UP"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}

	if o.Min.Enabled || o.GroupSize != 0 || o.Layout != dialog.LayoutPhone || o.Rounding != numeric.RoundHalfUp {
		t.Errorf("SetText() not applied: %+v", o)
	}

	if err := o.SetText(registry.FormatGroupSize, "three"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetText(groupSize, three) error = %v, want ErrTypeMismatch", err)
	}
}

func TestOptions_Get(t *testing.T) {
	o := DefaultOptions()
	o.Style = format.StyleCurrency

	tests := []struct {
		path string
		want any
	}{
		{registry.BoundsMin, "-10000000000"},
		{registry.BoundsMinEnabled, true},
		{registry.FormatStyle, "currency"},
		{registry.FormatRounding, "half-even"},
		{registry.FormatGroupSize, -1},
		{registry.DialogNumpadLayout, "calculator"},
		{"nope", nil},
	}
	for _, tt := range tests {
		if got := o.Get(tt.path); got != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOptions_GetSetRoundTrip(t *testing.T) {
	src := DefaultOptions()
	src.Min = Field{Text: "1", Enabled: false}
	src.Style = format.StyleCurrency
	src.Layout = dialog.LayoutPhone
	src.GroupSize = 2

	var dst Options
	for _, s := range registry.Default().All() {
		if err := dst.Set(s.Path, src.Get(s.Path)); err != nil {
			t.Fatalf("Set(%q) error = %v", s.Path, err)
		}
	}
	if dst != src {
		t.Errorf("round trip = %+v, want %+v", dst, src)
	}
}

func TestOptions_Apply(t *testing.T) {
	o := DefaultOptions()
	err := o.Apply(map[string]any{
		"bounds": map[string]any{
			"min":        "5",
			"maxEnabled": "false",
		},
		"format.style":     "currency",
		"format.groupSize": int64(3),
		"dialog": map[string]any{
			"numpadLayout": 7,
			"unknown":      true,
		},
	})

	if o.Min.Text != "5" || o.Max.Enabled || o.Style != format.StyleCurrency || o.GroupSize != 3 {
		t.Errorf("Apply() valid entries not applied: %+v", o)
	}
	if !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Apply() error = %v, want ErrInvalidIndex", err)
	}
	if !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Apply() error = %v, want ErrUnknownOption", err)
	}
}

func TestOptions_ApplyNumbers(t *testing.T) {
	tests := []struct {
		name string
		path string
		raw  any
		want string
	}{
		{"int", registry.BoundsMin, -5, "-5"},
		{"int64", registry.FormatMaxIntegerDigits, int64(4), "4"},
		{"uint64", registry.BoundsMax, uint64(18446744073709551615), "18446744073709551615"},
		{"float", registry.BoundsMax, 2.5, "2.5"},
		{"whole float", registry.BoundsMin, float64(100), "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			if err := o.Apply(map[string]any{tt.path: tt.raw}); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got := o.Get(tt.path); got != tt.want {
				t.Errorf("Get(%q) = %v, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOptions_ApplyNumberForFlag(t *testing.T) {
	o := DefaultOptions()
	err := o.Apply(map[string]any{registry.BoundsMinEnabled: int64(1)})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Apply() error = %v, want ErrTypeMismatch", err)
	}
}

func TestDiff(t *testing.T) {
	a := DefaultOptions()
	b := a
	b.Max.Enabled = false
	b.Behavior.AnswerButtonShown = true

	got := Diff(a, b)
	want := []string{registry.BoundsMaxEnabled, registry.DialogAnswerButtonShown}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
	if d := Diff(a, a); len(d) != 0 {
		t.Errorf("Diff(a, a) = %v, want empty", d)
	}
}

func TestOptions_BoundsPolicyMinWins(t *testing.T) {
	o := DefaultOptions()
	o.Min = Field{Text: "10", Enabled: true}
	o.Max = Field{Text: "5", Enabled: true}

	b := o.BoundsPolicy()
	if b.Max() != nil || b.MaxEnabled() {
		t.Errorf("max = %v (enabled %v), want cleared", b.Max(), b.MaxEnabled())
	}
	if got := b.Min(); got == nil || got.String() != "10" {
		t.Errorf("min = %v, want 10", got)
	}
	if b.Cleared() != bounds.SideMax {
		t.Errorf("Cleared() = %v, want %v", b.Cleared(), bounds.SideMax)
	}
}

func TestOptions_FormatPolicyLocale(t *testing.T) {
	o := DefaultOptions()
	o.Style = format.StyleCurrency
	o.Locale = "de-DE"
	o.MaxFractionDigits = Field{Text: "4", Enabled: true}

	p := o.FormatPolicy()
	if got := p.Symbols().Decimal; got != "," {
		t.Errorf("de-DE decimal separator = %q, want \",\"", got)
	}
	if got := p.MinFractionDigits(); got != 2 {
		t.Errorf("EUR MinFractionDigits() = %d, want 2", got)
	}

	o.Locale = "not a locale!"
	o.Currency = "XYZW"
	if got := o.FormatPolicy().Symbols().Decimal; got != "." {
		t.Errorf("fallback decimal separator = %q, want \".\"", got)
	}
}

func TestOptions_FormatPolicyOverrides(t *testing.T) {
	o := DefaultOptions()
	o.DecimalSeparator = ","
	o.GroupSeparator = " "
	o.GroupSize = 3
	o.Placeholder = "-"

	p := o.FormatPolicy()
	v := numeric.MustParse("1234567.5")
	if got := p.Format(&v); got != "1 234 567,5" {
		t.Errorf("Format() = %q, want %q", got, "1 234 567,5")
	}
	if got := p.Format(nil); got != "-" {
		t.Errorf("Format(nil) = %q, want -", got)
	}
}

func TestValidationErrorCode_String(t *testing.T) {
	tests := []struct {
		code ValidationErrorCode
		want string
	}{
		{ErrCodeUnknownOption, "unknown_option"},
		{ErrCodeTypeMismatch, "type_mismatch"},
		{ErrCodeInvalidSelector, "invalid_selector"},
		{ErrCodeOutOfRange, "out_of_range"},
		{ValidationErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

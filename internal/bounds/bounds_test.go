package bounds

import (
	"testing"

	"github.com/dshills/calcsettings/internal/numeric"
)

func TestPolicy_ZeroValueUnbounded(t *testing.T) {
	var p Policy
	if p.Min() != nil || p.Max() != nil {
		t.Fatal("zero policy should be unbounded")
	}
	if !p.Contains(numeric.MustParse("-1E100")) || !p.Contains(numeric.MustParse("1E100")) {
		t.Error("zero policy should contain everything")
	}
}

func TestPolicy_SetMin_AbsentCases(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		enabled bool
	}{
		{"disabled", "5", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"garbage", "five", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Policy{}.SetMin(tt.text, tt.enabled)
			if p.Min() != nil {
				t.Errorf("SetMin(%q, %v) min = %v, want absent", tt.text, tt.enabled, p.Min())
			}
			if p.MinEnabled() != tt.enabled {
				t.Errorf("MinEnabled() = %v, want %v", p.MinEnabled(), tt.enabled)
			}
			if p.Cleared() != SideNone {
				t.Errorf("Cleared() = %v, want none", p.Cleared())
			}
		})
	}
}

func TestPolicy_ValidPairsAccepted(t *testing.T) {
	pairs := [][2]string{
		{"-1E10", "1E10"},
		{"0", "0"},
		{"-5.5", "-5.4"},
		{"1", "100000000000000000000000000000"},
	}

	for _, pair := range pairs {
		p := Policy{}.SetMin(pair[0], true).SetMax(pair[1], true)
		if p.Min() == nil || p.Max() == nil {
			t.Fatalf("pair %v: expected both bounds present", pair)
		}
		if !p.Min().Equal(numeric.MustParse(pair[0])) || !p.Max().Equal(numeric.MustParse(pair[1])) {
			t.Errorf("pair %v: got [%v, %v]", pair, p.Min(), p.Max())
		}
		if p.Cleared() != SideNone {
			t.Errorf("pair %v: Cleared() = %v", pair, p.Cleared())
		}
	}
}

func TestPolicy_MaxAfterMinClearsMin(t *testing.T) {
	p := Policy{}.SetMin("-1E10", true).SetMax("-1E11", true)

	if p.Min() != nil {
		t.Errorf("min = %v, want absent", p.Min())
	}
	if p.MinEnabled() {
		t.Error("min enabled flag should be reset")
	}
	if p.Max() == nil || !p.Max().Equal(numeric.MustParse("-1E11")) {
		t.Errorf("max = %v, want -1E11", p.Max())
	}
	if !p.MaxEnabled() {
		t.Error("max should stay enabled")
	}
	if p.Cleared() != SideMin {
		t.Errorf("Cleared() = %v, want min", p.Cleared())
	}
}

func TestPolicy_MinAfterMaxClearsMax(t *testing.T) {
	p := Policy{}.SetMax("10", true).SetMin("11", true)

	if p.Max() != nil || p.MaxEnabled() {
		t.Errorf("max = %v (enabled %v), want absent and disabled", p.Max(), p.MaxEnabled())
	}
	if p.Min() == nil || !p.Min().Equal(numeric.FromInt(11)) {
		t.Errorf("min = %v, want 11", p.Min())
	}
	if p.Cleared() != SideMax {
		t.Errorf("Cleared() = %v, want max", p.Cleared())
	}
}

func TestPolicy_ClearedResetsOnNextMutation(t *testing.T) {
	p := Policy{}.SetMax("10", true).SetMin("11", true)
	p = p.SetMin("12", true)
	if p.Cleared() != SideNone {
		t.Errorf("Cleared() = %v, want none", p.Cleared())
	}
}

func TestPolicy_InvariantHoldsForSequences(t *testing.T) {
	inputs := []string{"5", "-3", "", "x", "1E3", "-1E3", "0", "2.5"}
	p := Policy{}
	for i, in := range inputs {
		for j, other := range inputs {
			if (i+j)%2 == 0 {
				p = p.SetMin(in, true).SetMax(other, j%3 != 0)
			} else {
				p = p.SetMax(in, true).SetMin(other, i%3 != 0)
			}
			if lo, hi := p.Min(), p.Max(); lo != nil && hi != nil && lo.Cmp(*hi) > 0 {
				t.Fatalf("invariant broken after (%q, %q): min %v > max %v", in, other, lo, hi)
			}
		}
	}
}

func TestPolicy_Contains(t *testing.T) {
	p := Policy{}.SetMin("-1", true).SetMax("1", true)

	tests := []struct {
		v    string
		want bool
	}{
		{"-1", true},
		{"0", true},
		{"1", true},
		{"1.0000001", false},
		{"-1.5", false},
	}
	for _, tt := range tests {
		if got := p.Contains(numeric.MustParse(tt.v)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPolicy_AccessorsReturnCopies(t *testing.T) {
	p := Policy{}.SetMin("1", true)
	m := p.Min()
	*m = numeric.FromInt(99)
	if !p.Min().Equal(numeric.FromInt(1)) {
		t.Error("mutating the returned min changed the policy")
	}
}

func TestSide_String(t *testing.T) {
	tests := []struct {
		s    Side
		want string
	}{
		{SideNone, "none"},
		{SideMin, "min"},
		{SideMax, "max"},
		{Side(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Side(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

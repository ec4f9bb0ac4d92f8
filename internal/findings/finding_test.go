package findings

import "testing"

func TestSeverityAtLeast(t *testing.T) {
	cases := []struct {
		s     Severity
		floor Severity
		want  bool
	}{
		{SeverityCritical, SeverityLow, true},
		{SeverityCritical, SeverityCritical, true},
		{SeverityHigh, SeverityCritical, false},
		{SeverityMedium, SeverityMedium, true},
		{SeverityLow, SeverityMedium, false},
	}
	for _, tc := range cases {
		if got := tc.s.AtLeast(tc.floor); got != tc.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tc.s, tc.floor, got, tc.want)
		}
	}
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		if !s.Valid() {
			t.Errorf("%s must be valid", s)
		}
	}
	if Severity("fatal").Valid() {
		t.Error("unknown severity must not validate")
	}
	if Severity("").Valid() {
		t.Error("empty severity must not validate")
	}
}

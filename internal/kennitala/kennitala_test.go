package kennitala

import (
	"errors"
	"testing"
	"time"
)

func TestParseAcceptsValidIdentifiers(t *testing.T) {
	cases := []struct {
		input      string
		normalized string
		birthDate  time.Time
	}{
		{"010190-1234", "0101901234", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"0101901234", "0101901234", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"311299-5678", "3112995678", time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"290204-0001", "2902040001", time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"010100-1111", "0101001111", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		kt, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tc.input, err)
		}
		if kt.Normalized != tc.normalized {
			t.Fatalf("Parse(%q): normalized = %q, want %q", tc.input, kt.Normalized, tc.normalized)
		}
		if !kt.BirthDate.Equal(tc.birthDate) {
			t.Fatalf("Parse(%q): birth date = %v, want %v", tc.input, kt.BirthDate, tc.birthDate)
		}
	}
}

func TestParseCenturyPivot(t *testing.T) {
	// Pivot 50: 51-99 resolve to the 1900s, 00-50 to the 2000s.
	cases := []struct {
		input string
		year  int
	}{
		{"010151-0000", 1951},
		{"010199-0000", 1999},
		{"010150-0000", 2050},
		{"010100-0000", 2000},
	}

	for _, tc := range cases {
		kt, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tc.input, err)
		}
		if got := kt.BirthDate.Year(); got != tc.year {
			t.Fatalf("Parse(%q): year = %d, want %d", tc.input, got, tc.year)
		}
	}
}

func TestParseWithPolicyCustomPivot(t *testing.T) {
	policy := CenturyPolicy{Pivot: 30}

	kt, err := ParseWithPolicy("010140-0000", policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := kt.BirthDate.Year(); got != 1940 {
		t.Fatalf("pivot 30: year = %d, want 1940", got)
	}

	kt, err = ParseWithPolicy("010120-0000", policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := kt.BirthDate.Year(); got != 2020 {
		t.Fatalf("pivot 30: year = %d, want 2020", got)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"010190", ErrInvalidFormat},       // too short
		{"010190-12345", ErrInvalidFormat}, // too long
		{"01019012345", ErrInvalidFormat},  // 11 digits
		{"010190123", ErrInvalidFormat},    // 9 digits
		{"abc123-def4", ErrInvalidFormat},  // non-numeric
		{"010190_1234", ErrInvalidFormat},  // wrong separator
		{"", ErrInvalidFormat},
		{"320190-1234", ErrInvalidDate}, // day 32
		{"011390-1234", ErrInvalidDate}, // month 13
		{"300290-1234", ErrInvalidDate}, // Feb 30
		{"290203-0001", ErrInvalidDate}, // Feb 29 in a non-leap year
		{"000190-1234", ErrInvalidDate}, // day 0
		{"010090-1234", ErrInvalidDate}, // month 0
	}

	for _, tc := range cases {
		_, err := Parse(tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q): error = %v, want %v", tc.input, err, tc.want)
		}
	}
}

func TestResolveYearClampsBadPivot(t *testing.T) {
	policy := CenturyPolicy{Pivot: -1}
	if got := policy.ResolveYear(51); got != 1951 {
		t.Fatalf("ResolveYear(51) = %d, want 1951", got)
	}
	if got := policy.ResolveYear(50); got != 2050 {
		t.Fatalf("ResolveYear(50) = %d, want 2050", got)
	}
}

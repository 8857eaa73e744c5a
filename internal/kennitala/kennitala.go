// Package kennitala parses and validates Icelandic national identifiers.
package kennitala

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFormat = errors.New("invalid_kennitala_format")
	ErrInvalidLength = errors.New("invalid_kennitala_length")
	ErrInvalidDate   = errors.New("invalid_kennitala_date")
)

var shapePattern = regexp.MustCompile(`^\d{6}-?\d{4}$`)

// DefaultCenturyPivot splits two-digit years between the 1900s and 2000s.
// Years above the pivot resolve to 1900+yy, the rest to 2000+yy.
const DefaultCenturyPivot = 50

// CenturyPolicy controls how the embedded two-digit year is resolved to a
// full year. The pivot rule is a simplification: real kennitala numbers carry
// a century digit and a mod-11 check digit, neither of which is consulted
// here. Callers that need registry-grade validation must not rely on this
// package alone.
type CenturyPolicy struct {
	Pivot int
}

// DefaultPolicy returns the pivot-50 policy used by the service.
func DefaultPolicy() CenturyPolicy {
	return CenturyPolicy{Pivot: DefaultCenturyPivot}
}

func (p CenturyPolicy) withDefaults() CenturyPolicy {
	if p.Pivot <= 0 || p.Pivot > 99 {
		p.Pivot = DefaultCenturyPivot
	}
	return p
}

// ResolveYear maps a two-digit year to a full year under the policy.
func (p CenturyPolicy) ResolveYear(yy int) int {
	p = p.withDefaults()
	if yy > p.Pivot {
		return 1900 + yy
	}
	return 2000 + yy
}

// Kennitala is a validated, normalized identifier.
type Kennitala struct {
	// Normalized is the 10-digit form with the separator stripped.
	Normalized string
	// BirthDate is the calendar date embedded in the first six digits,
	// resolved under the parsing policy.
	BirthDate time.Time
}

// String returns the normalized 10-digit form.
func (k Kennitala) String() string { return k.Normalized }

// Parse validates a candidate identifier under the default century policy.
func Parse(s string) (Kennitala, error) {
	return ParseWithPolicy(s, DefaultPolicy())
}

// ParseWithPolicy validates a candidate identifier. Accepted shapes are
// DDMMYY-XXXX and DDMMYYXXXX. The embedded day, month and resolved year must
// form a real calendar date.
func ParseWithPolicy(s string, policy CenturyPolicy) (Kennitala, error) {
	s = strings.TrimSpace(s)
	if !shapePattern.MatchString(s) {
		return Kennitala{}, ErrInvalidFormat
	}

	normalized := strings.ReplaceAll(s, "-", "")
	if len(normalized) != 10 {
		return Kennitala{}, ErrInvalidLength
	}

	day, _ := strconv.Atoi(normalized[0:2])
	month, _ := strconv.Atoi(normalized[2:4])
	yy, _ := strconv.Atoi(normalized[4:6])

	year := policy.ResolveYear(yy)

	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birthDate.Year() != year || birthDate.Month() != time.Month(month) || birthDate.Day() != day {
		return Kennitala{}, ErrInvalidDate
	}

	return Kennitala{
		Normalized: normalized,
		BirthDate:  birthDate,
	}, nil
}

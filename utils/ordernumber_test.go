package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	at := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)

	got := GenerateOrderNumber(at)

	if !orderNumberPattern.MatchString(got) {
		t.Errorf("GenerateOrderNumber() = %q, want match for %s", got, orderNumberPattern)
	}
	if !strings.HasPrefix(got, "ORD-07032026-") {
		t.Errorf("GenerateOrderNumber() = %q, want ddmmyyyy date segment 07032026", got)
	}
}

func TestGenerateOrderNumberUsesGivenDate(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "new year", at: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), want: "ORD-01012026-"},
		{name: "end of year", at: time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), want: "ORD-31122025-"},
		{name: "single digit day and month", at: time.Date(2026, time.February, 3, 9, 0, 0, 0, time.UTC), want: "ORD-03022026-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateOrderNumber(tt.at); !strings.HasPrefix(got, tt.want) {
				t.Errorf("GenerateOrderNumber() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestGenerateOrderNumberSuffixVaries(t *testing.T) {
	at := time.Now()
	seen := map[string]bool{}

	for i := 0; i < 1000; i++ {
		seen[GenerateOrderNumber(at)] = true
	}

	// 36^6 possible suffixes; 1000 draws colliding down to a handful
	// would mean the generator is broken, not unlucky.
	if len(seen) < 990 {
		t.Errorf("got %d distinct order numbers out of 1000", len(seen))
	}
}

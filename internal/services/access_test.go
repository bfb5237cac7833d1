package services

import (
	"testing"
	"time"
)

func TestComputeAge(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		birthDate *string
		want      *int
	}{
		{"birthday today", strPtr("2000-06-15"), intPtr(24)},
		{"birthday tomorrow", strPtr("2000-06-16"), intPtr(23)},
		{"birthday yesterday", strPtr("2000-06-14"), intPtr(24)},
		{"later month", strPtr("2000-12-01"), intPtr(23)},
		{"earlier month", strPtr("2000-01-31"), intPtr(24)},
		{"nil birth date", nil, nil},
		{"empty birth date", strPtr(""), nil},
		{"unparseable", strPtr("15/06/2000"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeAge(tc.birthDate, asOf)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("ComputeAge(%v) = %v, want %v", tc.birthDate, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("ComputeAge(%v) = %d, want %d", *tc.birthDate, *got, *tc.want)
			}
		})
	}
}

func TestCanWatch(t *testing.T) {
	cases := []struct {
		name   string
		age    *int
		rating string
		want   bool
	}{
		{"unknown age sees everything", nil, "18", true},
		{"unknown age free rating", nil, "L", true},
		{"17 blocked from 18", intPtr(17), "18", false},
		{"18 allowed at 18", intPtr(18), "18", true},
		{"9 allowed at L", intPtr(9), "L", true},
		{"9 blocked from 10", intPtr(9), "10", false},
		{"10 allowed at 10", intPtr(10), "10", true},
		{"13 blocked from 14", intPtr(13), "14", false},
		{"unknown rating treated as free", intPtr(5), "PG-13", true},
		{"empty rating treated as free", intPtr(0), "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanWatch(tc.age, tc.rating); got != tc.want {
				t.Errorf("CanWatch(%v, %q) = %v, want %v", tc.age, tc.rating, got, tc.want)
			}
		})
	}
}

func TestRatingFloor(t *testing.T) {
	floors := map[string]int{"L": 0, "10": 10, "12": 12, "14": 14, "16": 16, "18": 18, "??": 0}
	for rating, want := range floors {
		if got := RatingFloor(rating); got != want {
			t.Errorf("RatingFloor(%q) = %d, want %d", rating, got, want)
		}
	}
}

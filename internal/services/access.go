package services

import (
	"time"
)

// ratingFloors maps the Brazilian age-rating codes to the minimum
// viewer age. Unknown codes fall through to 0 (treated as free).
var ratingFloors = map[string]int{
	"L":  0,
	"10": 10,
	"12": 12,
	"14": 14,
	"16": 16,
	"18": 18,
}

// ComputeAge returns whole years between birthDate ("YYYY-MM-DD") and
// asOf, minus one when the asOf month/day has not reached the birth
// month/day yet. Nil, empty, or unparseable birth dates yield nil.
func ComputeAge(birthDate *string, asOf time.Time) *int {
	if birthDate == nil || *birthDate == "" {
		return nil
	}

	birth, err := time.Parse("2006-01-02", *birthDate)
	if err != nil {
		return nil
	}

	age := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		age--
	}
	return &age
}

// RatingFloor maps an age-rating code to its minimum viewer age.
func RatingFloor(rating string) int {
	return ratingFloors[rating]
}

// CanWatch decides whether a viewer may see a title. A nil age
// (unauthenticated viewer, or no birth date on file) sees everything;
// this default-permissive policy is deliberate.
func CanWatch(age *int, rating string) bool {
	if age == nil {
		return true
	}
	return *age >= RatingFloor(rating)
}

package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Location is a region and city pair. The original case is kept for display;
// comparisons are case-insensitive.
type Location struct {
	Region string `json:"region"`
	City   string `json:"city"`
}

// NewLocation trims both parts and fails with ErrInvalidLocation when either is blank.
func NewLocation(region, city string) (Location, error) {
	region = strings.TrimSpace(region)
	city = strings.TrimSpace(city)
	if region == "" {
		return Location{}, fmt.Errorf("%w: region is required", ErrInvalidLocation)
	}
	if city == "" {
		return Location{}, fmt.Errorf("%w: city is required", ErrInvalidLocation)
	}
	return Location{Region: region, City: city}, nil
}

// Key is the normalized form used for equality and hashing.
func (l Location) Key() string {
	return foldCase(l.Region) + "/" + foldCase(l.City)
}

// Equal compares two locations ignoring case and surrounding whitespace.
func (l Location) Equal(other Location) bool {
	return l.Key() == other.Key()
}

func (l Location) String() string {
	return l.Region + "/" + l.City
}

// foldCase applies Unicode case folding; a cases.Caser is not safe for concurrent use.
func foldCase(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return foldCase(a) == foldCase(b)
}

package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Text constraints shared by the editable fields of every category.
const (
	MaxTitleLength       = 80
	MaxDescriptionLength = 80
	MinCapacity          = 1
	MaxCapacity          = 99
)

// forbiddenChars may not appear in free-text fields.
const forbiddenChars = `<>()%#@"'`

// BaseDefinition carries the editable fields shared by every category.
type BaseDefinition struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (d BaseDefinition) violations() []Violation {
	var out []Violation
	out = appendText(out, FieldTitle, d.Title, MaxTitleLength)
	out = appendText(out, FieldDescription, d.Description, MaxDescriptionLength)
	return out
}

func (d BaseDefinition) applyTo(b *BaseOffer) {
	b.Title = strings.TrimSpace(d.Title)
	b.Description = strings.TrimSpace(d.Description)
}

func appendText(out []Violation, field, value string, maxLen int) []Violation {
	switch {
	case strings.TrimSpace(value) == "":
		return append(out, Violation{Field: field, Message: "must not be blank"})
	case utf8.RuneCountInString(value) > maxLen:
		return append(out, Violation{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxLen)})
	case strings.ContainsAny(value, forbiddenChars):
		return append(out, Violation{Field: field, Message: "must not contain any of " + forbiddenChars})
	}
	return out
}

func appendLocation(out []Violation, field string, loc *Location) []Violation {
	if loc == nil {
		return append(out, Violation{Field: field, Message: "must not be null"})
	}
	if strings.TrimSpace(loc.Region) == "" {
		out = append(out, Violation{Field: field + ".region", Message: "must not be blank"})
	}
	if strings.TrimSpace(loc.City) == "" {
		out = append(out, Violation{Field: field + ".city", Message: "must not be blank"})
	}
	return out
}

func appendCapacity(out []Violation, field string, v *int) []Violation {
	if v == nil {
		return append(out, Violation{Field: field, Message: "must not be null"})
	}
	if *v < MinCapacity || *v > MaxCapacity {
		return append(out, Violation{Field: field, Message: fmt.Sprintf("must be between %d and %d", MinCapacity, MaxCapacity)})
	}
	return out
}

// trimmed returns loc with whitespace removed; callers validate loc first.
func trimmed(loc *Location) Location {
	return Location{Region: strings.TrimSpace(loc.Region), City: strings.TrimSpace(loc.City)}
}

// locationFilter validates an optional location filter. Both parts or neither.
func locationFilter(field string, loc *Location) ([]Condition, error) {
	if loc == nil {
		return nil, nil
	}
	l, err := NewLocation(loc.Region, loc.City)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSearchCriteria, field, err)
	}
	return []Condition{
		EqFold(field+".region", l.Region),
		EqFold(field+".city", l.City),
	}, nil
}

// capacityFilter validates an optional lower bound.
func capacityFilter(field string, v *int) ([]Condition, error) {
	if v == nil {
		return nil, nil
	}
	if *v < MinCapacity {
		return nil, fmt.Errorf("%w: %s must be at least %d", ErrInvalidSearchCriteria, field, MinCapacity)
	}
	return []Condition{AtLeast(field, *v)}, nil
}

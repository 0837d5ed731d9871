package helpers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"pomocua-ads/internal/domain"
)

// CheckParams fails with domain.ErrInvalidSearchCriteria when q holds a key that
// is neither a paging parameter nor listed in allowed.
func CheckParams(q url.Values, allowed ...string) error {
	known := map[string]struct{}{ParamPage: {}, ParamSize: {}, ParamSort: {}}
	for _, k := range allowed {
		known[k] = struct{}{}
	}
	for k := range q {
		if _, ok := known[k]; !ok {
			return fmt.Errorf("%w: unknown parameter %q", domain.ErrInvalidSearchCriteria, k)
		}
	}
	return nil
}

// LocationParam reads prefix.region and prefix.city. It returns nil when both
// are absent; half-specified locations are left to criteria validation.
func LocationParam(q url.Values, prefix string) *domain.Location {
	region, hasRegion := lookup(q, prefix+".region")
	city, hasCity := lookup(q, prefix+".city")
	if !hasRegion && !hasCity {
		return nil
	}
	return &domain.Location{Region: region, City: city}
}

// IntParam reads an optional integer.
func IntParam(q url.Values, key string) (*int, error) {
	raw, ok := lookup(q, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidSearchCriteria, key)
	}
	return &v, nil
}

// DateParam reads an optional YYYY-MM-DD date.
func DateParam(q url.Values, key string) (*domain.Date, error) {
	raw, ok := lookup(q, key)
	if !ok {
		return nil, nil
	}
	d, err := domain.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date in %s format", domain.ErrInvalidSearchCriteria, key, domain.DateLayout)
	}
	return &d, nil
}

func lookup(q url.Values, key string) (string, bool) {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

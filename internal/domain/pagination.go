package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Page size defaults and limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// SortOrder is one key of a multi-key sort.
type SortOrder struct {
	Field     string
	Direction Direction
}

// PageRequest is a validated, zero-based offset window plus sort keys.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the index of the first item of the page. It saturates at
// math.MaxInt so that a huge page number always lies past the end.
func (p PageRequest) Offset() int {
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Validate fails with ErrInvalidSearchCriteria for a negative page, a size below 1
// or a page whose offset does not fit in an int.
func (p PageRequest) Validate() error {
	if p.Page < 0 || p.Size < 1 {
		return fmt.Errorf("%w: page %d size %d", ErrInvalidSearchCriteria, p.Page, p.Size)
	}
	if p.Page > math.MaxInt/p.Size {
		return fmt.Errorf("%w: page %d is out of range for size %d", ErrInvalidSearchCriteria, p.Page, p.Size)
	}
	return nil
}

// Page is one slice of a filtered and sorted listing.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	PageNumber    int `json:"pageNumber"`
	PageSize      int `json:"pageSize"`
}

// NewPage builds a page. TotalPages is ceiling(total / size).
func NewPage[T any](content []T, total int, req PageRequest) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		PageNumber:    req.Page,
		PageSize:      req.Size,
	}
}

// PageResolver validates raw page, size and sort parameters against a field whitelist.
type PageResolver struct {
	DefaultSize int
	MaxSize     int
}

// NewPageResolver falls back to DefaultPageSize and MaxPageSize for non-positive values.
func NewPageResolver(defaultSize, maxSize int) PageResolver {
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if defaultSize <= 0 || defaultSize > maxSize {
		defaultSize = min(DefaultPageSize, maxSize)
	}
	return PageResolver{DefaultSize: defaultSize, MaxSize: maxSize}
}

// Resolve parses page and size (empty means default) and sort specs of the form
// "field" or "field,asc|desc". Sizes above MaxSize are clamped. The id field is
// appended as the last ascending key so that ties keep insertion order.
func (r PageResolver) Resolve(page, size string, sorts []string, fields FieldSet) (PageRequest, error) {
	req := PageRequest{Page: 0, Size: r.DefaultSize}
	if s := strings.TrimSpace(page); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return PageRequest{}, fmt.Errorf("%w: page must be a non-negative integer", ErrInvalidSearchCriteria)
		}
		req.Page = v
	}
	if s := strings.TrimSpace(size); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return PageRequest{}, fmt.Errorf("%w: size must be a positive integer", ErrInvalidSearchCriteria)
		}
		req.Size = min(v, r.MaxSize)
	}
	if err := req.Validate(); err != nil {
		return PageRequest{}, err
	}

	orders := make([]SortOrder, 0, len(sorts)+1)
	for _, raw := range sorts {
		order, err := ParseSortOrder(raw)
		if err != nil {
			return PageRequest{}, err
		}
		orders = append(orders, order)
	}
	if err := ValidateSort(orders, fields); err != nil {
		return PageRequest{}, err
	}
	req.Sort = withTieBreaker(orders)
	return req, nil
}

// ParseSortOrder parses "field" or "field,direction". Direction is case-insensitive.
func ParseSortOrder(raw string) (SortOrder, error) {
	field, dir, hasDir := strings.Cut(raw, ",")
	field = strings.TrimSpace(field)
	if field == "" {
		return SortOrder{}, fmt.Errorf("%w: empty sort field", ErrInvalidSortField)
	}
	order := SortOrder{Field: field, Direction: Asc}
	if hasDir {
		switch Direction(strings.ToUpper(strings.TrimSpace(dir))) {
		case Asc:
		case Desc:
			order.Direction = Desc
		default:
			return SortOrder{}, fmt.Errorf("%w: unknown direction %q for %s", ErrInvalidSortField, dir, field)
		}
	}
	return order, nil
}

// ValidateSort fails with ErrInvalidSortField for fields that are unknown or not sortable.
func ValidateSort(orders []SortOrder, fields FieldSet) error {
	for _, o := range orders {
		spec, ok := fields.Lookup(o.Field)
		if !ok || !spec.Sortable {
			return fmt.Errorf("%w: %s", ErrInvalidSortField, o.Field)
		}
		if o.Direction != Asc && o.Direction != Desc {
			return fmt.Errorf("%w: unknown direction %q for %s", ErrInvalidSortField, o.Direction, o.Field)
		}
	}
	return nil
}

func withTieBreaker(orders []SortOrder) []SortOrder {
	for _, o := range orders {
		if o.Field == FieldID {
			return orders
		}
	}
	return append(orders, SortOrder{Field: FieldID, Direction: Asc})
}

package helpers

import (
	"net/http"

	"pomocua-ads/internal/domain"
)

// Query parameter names for paging.
const (
	ParamPage = "page"
	ParamSize = "size"
	ParamSort = "sort"
)

// ParsePageRequest reads page, size and the repeatable sort parameter. Malformed
// values fail with domain.ErrInvalidSearchCriteria or domain.ErrInvalidSortField.
func ParsePageRequest(r *http.Request, resolver domain.PageResolver, fields domain.FieldSet) (domain.PageRequest, error) {
	q := r.URL.Query()
	return resolver.Resolve(q.Get(ParamPage), q.Get(ParamSize), q[ParamSort], fields)
}

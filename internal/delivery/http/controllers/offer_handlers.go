package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"pomocua-ads/internal/delivery/http/helpers"
	"pomocua-ads/internal/domain"
)

// offerHandlers holds the request handling shared by every offer category.
type offerHandlers[T domain.Offer, D domain.Definition[T]] struct {
	logger   *slog.Logger
	catalog  domain.OfferCatalog[T, D]
	resolver domain.PageResolver
	fields   domain.FieldSet
}

func (h offerHandlers[T, D]) list(w http.ResponseWriter, r *http.Request, criteria domain.SearchCriteria) {
	page, err := helpers.ParsePageRequest(r, h.resolver, h.fields)
	if err != nil {
		helpers.WriteDomainError(w, r, h.logger, err)
		return
	}
	result, err := h.catalog.List(r.Context(), criteria, page)
	if err != nil {
		helpers.WriteDomainError(w, r, h.logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

func (h offerHandlers[T, D]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	offer, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		helpers.WriteDomainError(w, r, h.logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, offer)
}

func (h offerHandlers[T, D]) create(w http.ResponseWriter, r *http.Request) {
	var def D
	if !helpers.DecodeJSON(w, r, &def) {
		return
	}
	offer, err := h.catalog.Create(r.Context(), def)
	if err != nil {
		helpers.WriteDomainError(w, r, h.logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, offer)
}

func (h offerHandlers[T, D]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	var def D
	if !helpers.DecodeJSON(w, r, &def) {
		return
	}
	if err := h.catalog.Update(r.Context(), id, def); err != nil {
		helpers.WriteDomainError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h offerHandlers[T, D]) softDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.SoftDelete(r.Context(), id); err != nil {
		helpers.WriteDomainError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// offerID reads the {id} path value. Offer IDs are positive integers.
func offerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid offer id")
		return 0, false
	}
	return id, true
}

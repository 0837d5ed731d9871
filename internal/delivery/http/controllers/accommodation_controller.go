package controllers

import (
	"log/slog"
	"net/http"

	"pomocua-ads/internal/delivery/http/helpers"
	"pomocua-ads/internal/domain"
)

// Accommodation query parameters.
const (
	paramCapacity       = "capacity"
	paramLocationRegion = "location.region"
	paramLocationCity   = "location.city"
)

// AccommodationPageResponse is the success envelope for accommodation listings (200).
type AccommodationPageResponse struct {
	Data  domain.Page[*domain.AccommodationOffer] `json:"data"`
	Error *helpers.APIError                       `json:"error"`
}

// AccommodationResponse is the success envelope for a single accommodation offer.
type AccommodationResponse struct {
	Data  *domain.AccommodationOffer `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type AccommodationController struct {
	offerHandlers[*domain.AccommodationOffer, domain.AccommodationDefinition]
}

func NewAccommodationController(
	logger *slog.Logger,
	catalog domain.OfferCatalog[*domain.AccommodationOffer, domain.AccommodationDefinition],
	resolver domain.PageResolver,
) *AccommodationController {
	return &AccommodationController{offerHandlers[*domain.AccommodationOffer, domain.AccommodationDefinition]{
		logger:   logger,
		catalog:  catalog,
		resolver: resolver,
		fields:   domain.AccommodationFields,
	}}
}

// List godoc
// @Summary List accommodation offers
// @Description Returns a page of active accommodation offers. Location filters need both region and city and ignore case; capacity keeps offers hosting at least that many guests.
// @Tags accommodations
// @Produce json
// @Param capacity query int false "Minimum number of guests"
// @Param location.region query string false "Region"
// @Param location.city query string false "City"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Param sort query []string false "field[,asc|desc]" collectionFormat(multi)
// @Success 200 {object} controllers.AccommodationPageResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/accommodations [get]
func (c *AccommodationController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := helpers.CheckParams(q, paramCapacity, paramLocationRegion, paramLocationCity); err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	capacity, err := helpers.IntParam(q, paramCapacity)
	if err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	c.list(w, r, domain.AccommodationSearchCriteria{
		Location: helpers.LocationParam(q, "location"),
		Capacity: capacity,
	})
}

// ListByLocation godoc
// @Summary List accommodation offers in a city
// @Description Same as the listing with location.region and location.city set from the path.
// @Tags accommodations
// @Produce json
// @Param region path string true "Region"
// @Param city path string true "City"
// @Param capacity query int false "Minimum number of guests"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Param sort query []string false "field[,asc|desc]" collectionFormat(multi)
// @Success 200 {object} controllers.AccommodationPageResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/accommodations/{region}/{city} [get]
func (c *AccommodationController) ListByLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := helpers.CheckParams(q, paramCapacity); err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	capacity, err := helpers.IntParam(q, paramCapacity)
	if err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	c.list(w, r, domain.AccommodationSearchCriteria{
		Location: &domain.Location{Region: r.PathValue("region"), City: r.PathValue("city")},
		Capacity: capacity,
	})
}

// Get godoc
// @Summary Get an accommodation offer
// @Tags accommodations
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} controllers.AccommodationResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/accommodations/{id} [get]
func (c *AccommodationController) Get(w http.ResponseWriter, r *http.Request) {
	c.get(w, r)
}

// Create godoc
// @Summary Create an accommodation offer
// @Description The authenticated user becomes the owner. id, status and timestamps are server-generated.
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offer body domain.AccommodationDefinition true "Offer definition"
// @Success 201 {object} controllers.AccommodationResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, error.details lists violations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/secure/accommodations [post]
func (c *AccommodationController) Create(w http.ResponseWriter, r *http.Request) {
	c.create(w, r)
}

// Update godoc
// @Summary Update an accommodation offer
// @Description Replaces the editable fields. Offers of other users answer 404.
// @Tags accommodations
// @Accept json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param offer body domain.AccommodationDefinition true "Offer definition"
// @Success 204
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/secure/accommodations/{id} [put]
func (c *AccommodationController) Update(w http.ResponseWriter, r *http.Request) {
	c.update(w, r)
}

// Delete godoc
// @Summary Deactivate an accommodation offer
// @Description Marks the offer inactive. Unknown IDs are ignored.
// @Tags accommodations
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 204
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/secure/accommodations/{id} [delete]
func (c *AccommodationController) Delete(w http.ResponseWriter, r *http.Request) {
	c.softDelete(w, r)
}

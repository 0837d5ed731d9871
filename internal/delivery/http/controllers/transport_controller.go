package controllers

import (
	"log/slog"
	"net/http"

	"pomocua-ads/internal/delivery/http/helpers"
	"pomocua-ads/internal/domain"
)

// Transport query parameters.
const (
	paramOriginRegion      = "origin.region"
	paramOriginCity        = "origin.city"
	paramDestinationRegion = "destination.region"
	paramDestinationCity   = "destination.city"
	paramTransportDate     = "transportDate"
)

// TransportPageResponse is the success envelope for transport listings (200).
type TransportPageResponse struct {
	Data  domain.Page[*domain.TransportOffer] `json:"data"`
	Error *helpers.APIError                   `json:"error"`
}

// TransportResponse is the success envelope for a single transport offer.
type TransportResponse struct {
	Data  *domain.TransportOffer `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type TransportController struct {
	offerHandlers[*domain.TransportOffer, domain.TransportDefinition]
}

func NewTransportController(
	logger *slog.Logger,
	catalog domain.OfferCatalog[*domain.TransportOffer, domain.TransportDefinition],
	resolver domain.PageResolver,
) *TransportController {
	return &TransportController{offerHandlers[*domain.TransportOffer, domain.TransportDefinition]{
		logger:   logger,
		catalog:  catalog,
		resolver: resolver,
		fields:   domain.TransportFields,
	}}
}

// List godoc
// @Summary List transport offers
// @Description Returns a page of active transport offers. Origin and destination filters need both region and city and ignore case; capacity keeps offers with at least that many seats.
// @Tags transport
// @Produce json
// @Param origin.region query string false "Origin region"
// @Param origin.city query string false "Origin city"
// @Param destination.region query string false "Destination region"
// @Param destination.city query string false "Destination city"
// @Param capacity query int false "Minimum number of seats"
// @Param transportDate query string false "Day of the ride, YYYY-MM-DD"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Param sort query []string false "field[,asc|desc]" collectionFormat(multi)
// @Success 200 {object} controllers.TransportPageResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/transport [get]
func (c *TransportController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	err := helpers.CheckParams(q,
		paramOriginRegion, paramOriginCity,
		paramDestinationRegion, paramDestinationCity,
		paramCapacity, paramTransportDate,
	)
	if err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	capacity, err := helpers.IntParam(q, paramCapacity)
	if err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	date, err := helpers.DateParam(q, paramTransportDate)
	if err != nil {
		helpers.WriteDomainError(w, r, c.logger, err)
		return
	}
	c.list(w, r, domain.TransportSearchCriteria{
		Origin:        helpers.LocationParam(q, "origin"),
		Destination:   helpers.LocationParam(q, "destination"),
		Capacity:      capacity,
		TransportDate: date,
	})
}

// Get godoc
// @Summary Get a transport offer
// @Tags transport
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} controllers.TransportResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/transport/{id} [get]
func (c *TransportController) Get(w http.ResponseWriter, r *http.Request) {
	c.get(w, r)
}

// Create godoc
// @Summary Create a transport offer
// @Description The authenticated user becomes the owner. id, status and timestamps are server-generated.
// @Tags transport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offer body domain.TransportDefinition true "Offer definition"
// @Success 201 {object} controllers.TransportResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, error.details lists violations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/secure/transport [post]
func (c *TransportController) Create(w http.ResponseWriter, r *http.Request) {
	c.create(w, r)
}

// Update godoc
// @Summary Update a transport offer
// @Description Replaces the editable fields. Offers of other users answer 404.
// @Tags transport
// @Accept json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param offer body domain.TransportDefinition true "Offer definition"
// @Success 204
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/secure/transport/{id} [put]
func (c *TransportController) Update(w http.ResponseWriter, r *http.Request) {
	c.update(w, r)
}

// Delete godoc
// @Summary Deactivate a transport offer
// @Description Marks the offer inactive. Unknown IDs are ignored.
// @Tags transport
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 204
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/secure/transport/{id} [delete]
func (c *TransportController) Delete(w http.ResponseWriter, r *http.Request) {
	c.softDelete(w, r)
}

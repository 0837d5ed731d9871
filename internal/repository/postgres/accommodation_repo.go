package postgres

import (
	"database/sql"

	"pomocua-ads/internal/domain"
)

var accommodationTable = offerTable[*domain.AccommodationOffer]{
	name:     "accommodation_offers",
	fields:   domain.AccommodationFields,
	columns:  []string{"location_region", "location_city", "guests", "length_of_stay"},
	newOffer: func() *domain.AccommodationOffer { return &domain.AccommodationOffer{} },
	scan: func(o *domain.AccommodationOffer) []any {
		return []any{&o.Location.Region, &o.Location.City, &o.Guests, (*string)(&o.LengthOfStay)}
	},
	values: func(o *domain.AccommodationOffer) []any {
		return []any{o.Location.Region, o.Location.City, o.Guests, string(o.LengthOfStay)}
	},
}

// NewAccommodationRepository sorts text columns with collation, a Postgres
// collation name such as "pl-PL-x-icu". An empty collation uses the column default.
func NewAccommodationRepository(db *sql.DB, collation string) domain.OfferRepository[*domain.AccommodationOffer] {
	return &offerRepository[*domain.AccommodationOffer]{
		DB:        db,
		table:     accommodationTable,
		collation: collation,
	}
}

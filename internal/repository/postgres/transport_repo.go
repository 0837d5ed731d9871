package postgres

import (
	"database/sql"

	"pomocua-ads/internal/domain"
)

var transportTable = offerTable[*domain.TransportOffer]{
	name:   "transport_offers",
	fields: domain.TransportFields,
	columns: []string{
		"origin_region", "origin_city",
		"destination_region", "destination_city",
		"capacity", "transport_date",
	},
	newOffer: func() *domain.TransportOffer { return &domain.TransportOffer{} },
	scan: func(o *domain.TransportOffer) []any {
		return []any{
			&o.Origin.Region, &o.Origin.City,
			&o.Destination.Region, &o.Destination.City,
			&o.Capacity, &o.TransportDate,
		}
	},
	values: func(o *domain.TransportOffer) []any {
		return []any{
			o.Origin.Region, o.Origin.City,
			o.Destination.Region, o.Destination.City,
			o.Capacity, o.TransportDate,
		}
	},
}

func NewTransportRepository(db *sql.DB, collation string) domain.OfferRepository[*domain.TransportOffer] {
	return &offerRepository[*domain.TransportOffer]{
		DB:        db,
		table:     transportTable,
		collation: collation,
	}
}

package domain

import (
	"fmt"
)

// Accommodation field names.
const (
	FieldLocationRegion = "location.region"
	FieldLocationCity   = "location.city"
	FieldGuests         = "guests"
	FieldLengthOfStay   = "lengthOfStay"
)

// LengthOfStay is how long a host can accommodate guests.
type LengthOfStay string

const (
	StayWeek1  LengthOfStay = "WEEK_1"
	StayWeek2  LengthOfStay = "WEEK_2"
	StayMonth1 LengthOfStay = "MONTH_1"
	StayMonth2 LengthOfStay = "MONTH_2"
	StayMonth3 LengthOfStay = "MONTH_3"
	StayLonger LengthOfStay = "LONGER"
)

func (l LengthOfStay) Valid() bool {
	switch l {
	case StayWeek1, StayWeek2, StayMonth1, StayMonth2, StayMonth3, StayLonger:
		return true
	}
	return false
}

// AccommodationFields is the query whitelist of accommodation offers.
var AccommodationFields = BaseFields.With(FieldSet{
	FieldLocationRegion: {Column: "location_region", Kind: KindText, Sortable: true},
	FieldLocationCity:   {Column: "location_city", Kind: KindText, Sortable: true},
	FieldGuests:         {Column: "guests", Kind: KindNumber, Sortable: true},
	FieldLengthOfStay:   {Column: "length_of_stay", Kind: KindText, Sortable: true},
})

// AccommodationOffer is a place to stay offered by a host.
type AccommodationOffer struct {
	BaseOffer
	Location     Location     `json:"location"`
	Guests       int          `json:"guests"`
	LengthOfStay LengthOfStay `json:"lengthOfStay"`
}

func (o *AccommodationOffer) FieldValue(name string) (any, bool) {
	switch name {
	case FieldLocationRegion:
		return o.Location.Region, true
	case FieldLocationCity:
		return o.Location.City, true
	case FieldGuests:
		return o.Guests, true
	case FieldLengthOfStay:
		return string(o.LengthOfStay), true
	}
	return o.baseFieldValue(name)
}

// AccommodationDefinition is the create and update payload of an accommodation offer.
type AccommodationDefinition struct {
	BaseDefinition
	Location     *Location    `json:"location"`
	Guests       *int         `json:"guests"`
	LengthOfStay LengthOfStay `json:"lengthOfStay"`
}

func (d AccommodationDefinition) Violations() []Violation {
	out := d.BaseDefinition.violations()
	out = appendLocation(out, "location", d.Location)
	out = appendCapacity(out, FieldGuests, d.Guests)
	if !d.LengthOfStay.Valid() {
		out = append(out, Violation{Field: FieldLengthOfStay, Message: fmt.Sprintf("unknown value %q", d.LengthOfStay)})
	}
	return out
}

// ApplyTo replaces the editable fields of o. d must be valid.
func (d AccommodationDefinition) ApplyTo(o *AccommodationOffer) {
	d.BaseDefinition.applyTo(&o.BaseOffer)
	o.Location = trimmed(d.Location)
	o.Guests = *d.Guests
	o.LengthOfStay = d.LengthOfStay
}

// AccommodationSearchCriteria filters accommodation listings. Nil fields are ignored.
type AccommodationSearchCriteria struct {
	Location *Location
	// Capacity is the number of guests the offer must be able to host.
	Capacity *int
}

func (c AccommodationSearchCriteria) Predicate() (Predicate, error) {
	p := ActiveOnly()
	loc, err := locationFilter("location", c.Location)
	if err != nil {
		return Predicate{}, err
	}
	guests, err := capacityFilter(FieldGuests, c.Capacity)
	if err != nil {
		return Predicate{}, err
	}
	return p.And(loc...).And(guests...), nil
}

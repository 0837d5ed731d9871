package domain

// Transport field names.
const (
	FieldOriginRegion      = "origin.region"
	FieldOriginCity        = "origin.city"
	FieldDestinationRegion = "destination.region"
	FieldDestinationCity   = "destination.city"
	FieldCapacity          = "capacity"
	FieldTransportDate     = "transportDate"
)

// TransportFields is the query whitelist of transport offers.
var TransportFields = BaseFields.With(FieldSet{
	FieldOriginRegion:      {Column: "origin_region", Kind: KindText, Sortable: true},
	FieldOriginCity:        {Column: "origin_city", Kind: KindText, Sortable: true},
	FieldDestinationRegion: {Column: "destination_region", Kind: KindText, Sortable: true},
	FieldDestinationCity:   {Column: "destination_city", Kind: KindText, Sortable: true},
	FieldCapacity:          {Column: "capacity", Kind: KindNumber, Sortable: true},
	FieldTransportDate:     {Column: "transport_date", Kind: KindDate, Sortable: true},
})

// TransportOffer is a ride offered between two locations on a given day.
type TransportOffer struct {
	BaseOffer
	Origin        Location `json:"origin"`
	Destination   Location `json:"destination"`
	Capacity      int      `json:"capacity"`
	TransportDate Date     `json:"transportDate"`
}

func (o *TransportOffer) FieldValue(name string) (any, bool) {
	switch name {
	case FieldOriginRegion:
		return o.Origin.Region, true
	case FieldOriginCity:
		return o.Origin.City, true
	case FieldDestinationRegion:
		return o.Destination.Region, true
	case FieldDestinationCity:
		return o.Destination.City, true
	case FieldCapacity:
		return o.Capacity, true
	case FieldTransportDate:
		return o.TransportDate, true
	}
	return o.baseFieldValue(name)
}

// TransportDefinition is the create and update payload of a transport offer.
type TransportDefinition struct {
	BaseDefinition
	Origin        *Location `json:"origin"`
	Destination   *Location `json:"destination"`
	Capacity      *int      `json:"capacity"`
	TransportDate *Date     `json:"transportDate"`
}

func (d TransportDefinition) Violations() []Violation {
	out := d.BaseDefinition.violations()
	out = appendLocation(out, "origin", d.Origin)
	out = appendLocation(out, "destination", d.Destination)
	out = appendCapacity(out, FieldCapacity, d.Capacity)
	if d.TransportDate == nil || d.TransportDate.IsZero() {
		out = append(out, Violation{Field: FieldTransportDate, Message: "must not be null"})
	}
	return out
}

// ApplyTo replaces the editable fields of o. d must be valid.
func (d TransportDefinition) ApplyTo(o *TransportOffer) {
	d.BaseDefinition.applyTo(&o.BaseOffer)
	o.Origin = trimmed(d.Origin)
	o.Destination = trimmed(d.Destination)
	o.Capacity = *d.Capacity
	o.TransportDate = *d.TransportDate
}

// TransportSearchCriteria filters transport listings. Nil fields are ignored.
type TransportSearchCriteria struct {
	Origin        *Location
	Destination   *Location
	Capacity      *int
	TransportDate *Date
}

func (c TransportSearchCriteria) Predicate() (Predicate, error) {
	p := ActiveOnly()
	origin, err := locationFilter("origin", c.Origin)
	if err != nil {
		return Predicate{}, err
	}
	destination, err := locationFilter("destination", c.Destination)
	if err != nil {
		return Predicate{}, err
	}
	capacity, err := capacityFilter(FieldCapacity, c.Capacity)
	if err != nil {
		return Predicate{}, err
	}
	p = p.And(origin...).And(destination...).And(capacity...)
	if c.TransportDate != nil {
		if c.TransportDate.IsZero() {
			return Predicate{}, ErrInvalidSearchCriteria
		}
		p = p.And(Eq(FieldTransportDate, *c.TransportDate))
	}
	return p, nil
}

package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"pomocua-ads/internal/domain"
)

// OfferStore is an in-process OfferRepository. It stores copies, so callers can
// never mutate persisted state without Save.
type OfferStore[T domain.Offer] struct {
	mu     sync.RWMutex
	offers map[int64]T
	nextID int64
	fields domain.FieldSet
	tag    language.Tag
	clone  func(T) T
}

// NewOfferStore returns an empty store. Text sort keys use the collation of tag.
func NewOfferStore[T domain.Offer](fields domain.FieldSet, tag language.Tag, clone func(T) T) *OfferStore[T] {
	return &OfferStore[T]{
		offers: make(map[int64]T),
		fields: fields,
		tag:    tag,
		clone:  clone,
	}
}

// NewAccommodationStore returns an in-memory accommodation repository.
func NewAccommodationStore(tag language.Tag) domain.OfferRepository[*domain.AccommodationOffer] {
	return NewOfferStore(domain.AccommodationFields, tag, func(o *domain.AccommodationOffer) *domain.AccommodationOffer {
		c := *o
		return &c
	})
}

// NewTransportStore returns an in-memory transport repository.
func NewTransportStore(tag language.Tag) domain.OfferRepository[*domain.TransportOffer] {
	return NewOfferStore(domain.TransportFields, tag, func(o *domain.TransportOffer) *domain.TransportOffer {
		c := *o
		return &c
	})
}

func (s *OfferStore[T]) Save(ctx context.Context, offer T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	base := offer.Base()
	if base.ID == 0 {
		s.nextID++
		base.ID = s.nextID
	} else if _, ok := s.offers[base.ID]; !ok {
		return domain.ErrOfferNotFound
	}
	s.offers[base.ID] = s.clone(offer)
	return nil
}

func (s *OfferStore[T]) FindByID(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	offer, ok := s.offers[id]
	if !ok {
		return zero, domain.ErrOfferNotFound
	}
	return s.clone(offer), nil
}

func (s *OfferStore[T]) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (T, error) {
	var zero T
	offer, err := s.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if offer.Base().OwnerID != ownerID {
		return zero, domain.ErrOfferNotFound
	}
	return offer, nil
}

func (s *OfferStore[T]) Find(ctx context.Context, where domain.Predicate, page domain.PageRequest) ([]T, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	matched := make([]T, 0, len(s.offers))
	for _, offer := range s.offers {
		if where.Matches(offer) {
			matched = append(matched, s.clone(offer))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b T) int {
		return cmp.Compare(a.Base().ID, b.Base().ID)
	})
	domain.SortOffers(matched, page.Sort, s.fields, s.tag)

	total := len(matched)
	start := min(page.Offset(), total)
	end := min(start+page.Size, total)
	return matched[start:end], total, nil
}

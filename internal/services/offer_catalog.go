package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pomocua-ads/internal/domain"
)

// Category names used in logs and routes.
const (
	CategoryAccommodation = "accommodation"
	CategoryTransport     = "transport"
)

type offerCatalog[T domain.Offer, D domain.Definition[T]] struct {
	category       string
	fields         domain.FieldSet
	repo           domain.OfferRepository[T]
	guard          ownershipGuard[T]
	users          domain.CurrentUserProvider
	clock          domain.Clock
	newOffer       func() T
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewOfferCatalog returns the catalog of one offer category. newOffer must return
// a fresh, zero offer.
func NewOfferCatalog[T domain.Offer, D domain.Definition[T]](
	category string,
	fields domain.FieldSet,
	repo domain.OfferRepository[T],
	users domain.CurrentUserProvider,
	clock domain.Clock,
	newOffer func() T,
	logger *slog.Logger,
	timeout time.Duration,
) domain.OfferCatalog[T, D] {
	return &offerCatalog[T, D]{
		category:       category,
		fields:         fields,
		repo:           repo,
		guard:          ownershipGuard[T]{repo: repo},
		users:          users,
		clock:          clock,
		newOffer:       newOffer,
		logger:         logger.With("category", category),
		contextTimeout: timeout,
	}
}

// NewAccommodationCatalog wires the catalog of accommodation offers.
func NewAccommodationCatalog(
	repo domain.OfferRepository[*domain.AccommodationOffer],
	users domain.CurrentUserProvider,
	clock domain.Clock,
	logger *slog.Logger,
	timeout time.Duration,
) domain.OfferCatalog[*domain.AccommodationOffer, domain.AccommodationDefinition] {
	return NewOfferCatalog[*domain.AccommodationOffer, domain.AccommodationDefinition](
		CategoryAccommodation, domain.AccommodationFields, repo, users, clock,
		func() *domain.AccommodationOffer { return &domain.AccommodationOffer{} },
		logger, timeout,
	)
}

// NewTransportCatalog wires the catalog of transport offers.
func NewTransportCatalog(
	repo domain.OfferRepository[*domain.TransportOffer],
	users domain.CurrentUserProvider,
	clock domain.Clock,
	logger *slog.Logger,
	timeout time.Duration,
) domain.OfferCatalog[*domain.TransportOffer, domain.TransportDefinition] {
	return NewOfferCatalog[*domain.TransportOffer, domain.TransportDefinition](
		CategoryTransport, domain.TransportFields, repo, users, clock,
		func() *domain.TransportOffer { return &domain.TransportOffer{} },
		logger, timeout,
	)
}

func (s *offerCatalog[T, D]) Create(ctx context.Context, def D) (T, error) {
	var zero T
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ownerID, err := s.users.CurrentUserID(ctx)
	if err != nil {
		return zero, err
	}
	if err := domain.NewValidationError(def.Violations()); err != nil {
		return zero, err
	}

	offer := s.newOffer()
	def.ApplyTo(offer)
	offer.Base().Attach(ownerID, s.clock.Now())

	if err := s.repo.Save(ctx, offer); err != nil {
		return zero, fmt.Errorf("save offer: %w", err)
	}
	s.logger.InfoContext(ctx, "offer created", "offer_id", offer.Base().ID, "owner_id", ownerID)
	return offer, nil
}

// Update replaces the editable fields of an offer owned by the acting user.
// Ownership is checked before the payload is validated, so a non-owner never
// learns anything beyond domain.ErrOfferNotFound.
func (s *offerCatalog[T, D]) Update(ctx context.Context, id int64, def D) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	userID, err := s.users.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	offer, err := s.guard.resolve(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := domain.NewValidationError(def.Violations()); err != nil {
		return err
	}

	def.ApplyTo(offer)
	offer.Base().Touch(s.clock.Now())

	if err := s.repo.Save(ctx, offer); err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return domain.ErrOfferNotFound
		}
		return fmt.Errorf("save offer: %w", err)
	}
	s.logger.InfoContext(ctx, "offer updated", "offer_id", id, "owner_id", userID)
	return nil
}

// SoftDelete marks an offer inactive. Missing offers are a silent no-op.
//
// TODO: decide with product whether soft delete should be owner-scoped like Update;
// today any authenticated user can retire any offer.
func (s *offerCatalog[T, D]) SoftDelete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	userID, err := s.users.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return nil
		}
		return fmt.Errorf("get offer: %w", err)
	}

	offer.Base().Deactivate()
	if err := s.repo.Save(ctx, offer); err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return nil
		}
		return fmt.Errorf("save offer: %w", err)
	}
	s.logger.InfoContext(ctx, "offer deactivated", "offer_id", id, "actor_id", userID)
	return nil
}

// Get returns any offer by id, regardless of status or owner.
func (s *offerCatalog[T, D]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return zero, domain.ErrOfferNotFound
		}
		return zero, fmt.Errorf("get offer: %w", err)
	}
	return offer, nil
}

// List returns one page of active offers matching criteria. A nil criteria lists
// every active offer.
func (s *offerCatalog[T, D]) List(ctx context.Context, criteria domain.SearchCriteria, page domain.PageRequest) (domain.Page[T], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	where := domain.ActiveOnly()
	if criteria != nil {
		p, err := criteria.Predicate()
		if err != nil {
			return domain.Page[T]{}, err
		}
		where = p.EnsureActive()
	}
	if err := page.Validate(); err != nil {
		return domain.Page[T]{}, err
	}
	if err := domain.ValidateSort(page.Sort, s.fields); err != nil {
		return domain.Page[T]{}, err
	}

	items, total, err := s.repo.Find(ctx, where, page)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("find offers: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

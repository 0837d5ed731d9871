package services

import (
	"context"
	"errors"
	"fmt"

	"pomocua-ads/internal/domain"
)

// ownershipGuard resolves an offer for mutation. Missing offers and offers owned by
// someone else fail the same way, with domain.ErrOfferNotFound.
type ownershipGuard[T domain.Offer] struct {
	repo domain.OfferRepository[T]
}

func (g ownershipGuard[T]) resolve(ctx context.Context, id int64, userID string) (T, error) {
	var zero T
	if userID == "" {
		return zero, domain.ErrOfferNotFound
	}
	offer, err := g.repo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return zero, domain.ErrOfferNotFound
		}
		return zero, fmt.Errorf("find offer for owner: %w", err)
	}
	if !offer.Base().IsOwnedBy(userID) {
		return zero, domain.ErrOfferNotFound
	}
	return offer, nil
}

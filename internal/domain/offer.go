package domain

import (
	"context"
	"time"
)

// Status is the lifecycle state of an offer.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Field names shared by every offer category.
const (
	FieldID           = "id"
	FieldOwnerID      = "ownerId"
	FieldStatus       = "status"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldCreatedDate  = "createdDate"
	FieldModifiedDate = "modifiedDate"
)

// BaseOffer holds the lifecycle fields every offer category embeds.
type BaseOffer struct {
	ID           int64     `json:"id"`
	OwnerID      string    `json:"-"`
	Status       Status    `json:"status"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedDate  time.Time `json:"createdDate"`
	ModifiedDate time.Time `json:"modifiedDate"`
}

// Base gives generic code access to the embedded lifecycle fields.
func (b *BaseOffer) Base() *BaseOffer {
	return b
}

// Attach binds a new offer to its owner and stamps both timestamps.
func (b *BaseOffer) Attach(ownerID string, now time.Time) {
	b.ID = 0
	b.OwnerID = ownerID
	b.Status = StatusActive
	b.CreatedDate = now
	b.ModifiedDate = now
}

// Touch refreshes ModifiedDate. It never moves backwards.
func (b *BaseOffer) Touch(now time.Time) {
	if now.Before(b.ModifiedDate) {
		return
	}
	b.ModifiedDate = now
}

// Deactivate retires the offer. It is a no-op for inactive offers.
func (b *BaseOffer) Deactivate() {
	b.Status = StatusInactive
}

func (b *BaseOffer) IsActive() bool {
	return b.Status == StatusActive
}

func (b *BaseOffer) IsOwnedBy(userID string) bool {
	return userID != "" && b.OwnerID == userID
}

func (b *BaseOffer) baseFieldValue(name string) (any, bool) {
	switch name {
	case FieldID:
		return b.ID, true
	case FieldOwnerID:
		return b.OwnerID, true
	case FieldStatus:
		return string(b.Status), true
	case FieldTitle:
		return b.Title, true
	case FieldDescription:
		return b.Description, true
	case FieldCreatedDate:
		return b.CreatedDate, true
	case FieldModifiedDate:
		return b.ModifiedDate, true
	}
	return nil, false
}

// FieldReader exposes named field values for predicate evaluation and sorting.
type FieldReader interface {
	FieldValue(name string) (any, bool)
}

// Offer is implemented by every category-specific offer (as a pointer type).
type Offer interface {
	FieldReader
	Base() *BaseOffer
}

// Definition is the editable payload of a category. Violations lists field-level
// constraint failures; ApplyTo copies the editable fields onto an offer.
type Definition[T Offer] interface {
	Violations() []Violation
	ApplyTo(offer T)
}

// SearchCriteria is an optional filter set translated into a Predicate.
type SearchCriteria interface {
	Predicate() (Predicate, error)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// CurrentUserProvider resolves the acting user. It fails with ErrUnauthenticated
// when no session is established.
type CurrentUserProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// OfferRepository is the persistence collaborator for one offer category.
type OfferRepository[T Offer] interface {
	// Save inserts the offer when its ID is zero (assigning the ID) and updates it otherwise.
	Save(ctx context.Context, offer T) error
	FindByID(ctx context.Context, id int64) (T, error)
	FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (T, error)
	// Find returns one page of offers matching where, and the total match count.
	Find(ctx context.Context, where Predicate, page PageRequest) ([]T, int, error)
}

// OfferCatalog is the lifecycle, ownership and search contract of one category.
type OfferCatalog[T Offer, D Definition[T]] interface {
	Create(ctx context.Context, def D) (T, error)
	Update(ctx context.Context, id int64, def D) error
	SoftDelete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, criteria SearchCriteria, page PageRequest) (Page[T], error)
}

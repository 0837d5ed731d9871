package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"pomocua-ads/internal/domain"
	"pomocua-ads/internal/repository/memory"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeUsers struct {
	userID string
}

func (u *fakeUsers) CurrentUserID(ctx context.Context) (string, error) {
	if u.userID == "" {
		return "", domain.ErrUnauthenticated
	}
	return u.userID, nil
}

// failingTransportRepo fails every call with err.
type failingTransportRepo struct {
	err error
}

func (r failingTransportRepo) Save(ctx context.Context, offer *domain.TransportOffer) error {
	return r.err
}

func (r failingTransportRepo) FindByID(ctx context.Context, id int64) (*domain.TransportOffer, error) {
	return nil, r.err
}

func (r failingTransportRepo) FindByIDAndOwner(ctx context.Context, id int64, ownerID string) (*domain.TransportOffer, error) {
	return nil, r.err
}

func (r failingTransportRepo) Find(ctx context.Context, where domain.Predicate, page domain.PageRequest) ([]*domain.TransportOffer, int, error) {
	return nil, 0, r.err
}

var (
	firstInstant  = time.Date(2022, time.March, 7, 15, 23, 22, 0, time.UTC)
	secondInstant = time.Date(2022, time.April, 1, 12, 0, 0, 0, time.UTC)
)

type transportFixture struct {
	catalog domain.OfferCatalog[*domain.TransportOffer, domain.TransportDefinition]
	repo    domain.OfferRepository[*domain.TransportOffer]
	clock   *fakeClock
	users   *fakeUsers
}

func newTransportFixture() *transportFixture {
	f := &transportFixture{
		repo:  memory.NewTransportStore(language.Polish),
		clock: &fakeClock{now: firstInstant},
		users: &fakeUsers{userID: "owner-1"},
	}
	f.catalog = NewTransportCatalog(f.repo, f.users, f.clock, discardLogger(), time.Second)
	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

func transportDef(title string, capacity int) domain.TransportDefinition {
	date := domain.NewDate(2022, time.March, 21)
	return domain.TransportDefinition{
		BaseDefinition: domain.BaseDefinition{Title: title, Description: "lift to the border"},
		Origin:         &domain.Location{Region: "Mazowieckie", City: "Warszawa"},
		Destination:    &domain.Location{Region: "Pomorskie", City: "Gdańsk"},
		Capacity:       intPtr(capacity),
		TransportDate:  &date,
	}
}

func titles(items []*domain.TransportOffer) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func pageOf(page, size int, sort ...domain.SortOrder) domain.PageRequest {
	sort = append(sort, domain.SortOrder{Field: domain.FieldID, Direction: domain.Asc})
	return domain.PageRequest{Page: page, Size: size, Sort: sort}
}

func TestOfferCatalog_Create(t *testing.T) {
	f := newTransportFixture()

	offer, err := f.catalog.Create(context.Background(), transportDef("  Warsaw to Gdańsk ", 3))
	require.NoError(t, err)

	assert.NotZero(t, offer.ID)
	assert.Equal(t, domain.StatusActive, offer.Status)
	assert.Equal(t, "owner-1", offer.OwnerID)
	assert.Equal(t, "Warsaw to Gdańsk", offer.Title)
	assert.Equal(t, firstInstant, offer.CreatedDate)
	assert.Equal(t, offer.CreatedDate, offer.ModifiedDate)

	stored, err := f.repo.FindByID(context.Background(), offer.ID)
	require.NoError(t, err)
	assert.Equal(t, offer, stored)
}

func TestOfferCatalog_CreateErrors(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		f := newTransportFixture()
		f.users.userID = ""

		_, err := f.catalog.Create(context.Background(), transportDef("a", 1))
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("invalid definition", func(t *testing.T) {
		f := newTransportFixture()

		_, err := f.catalog.Create(context.Background(), transportDef("", 0))
		require.ErrorIs(t, err, domain.ErrValidation)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			fields = append(fields, v.Field)
		}
		assert.ElementsMatch(t, []string{domain.FieldTitle, domain.FieldCapacity}, fields)

		_, total, err := f.repo.Find(context.Background(), domain.ActiveOnly(), pageOf(0, 10))
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("repository failure", func(t *testing.T) {
		boom := errors.New("boom")
		c := NewTransportCatalog(failingTransportRepo{err: boom}, &fakeUsers{userID: "u"}, &fakeClock{now: firstInstant}, discardLogger(), time.Second)

		_, err := c.Create(context.Background(), transportDef("a", 1))
		require.ErrorIs(t, err, boom)
	})
}

func TestOfferCatalog_UpdateRefreshesModifiedDate(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	offer, err := f.catalog.Create(ctx, transportDef("before", 3))
	require.NoError(t, err)

	f.clock.now = secondInstant
	require.NoError(t, f.catalog.Update(ctx, offer.ID, transportDef("after", 5)))

	got, err := f.catalog.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, 5, got.Capacity)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, firstInstant, got.CreatedDate)
	assert.Equal(t, secondInstant, got.ModifiedDate)
}

func TestOfferCatalog_UpdateOwnership(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	offer, err := f.catalog.Create(ctx, transportDef("mine", 3))
	require.NoError(t, err)

	tests := []struct {
		name    string
		userID  string
		id      int64
		def     domain.TransportDefinition
		wantErr error
	}{
		{name: "other user", userID: "owner-2", id: offer.ID, def: transportDef("stolen", 3), wantErr: domain.ErrOfferNotFound},
		{name: "other user with invalid payload", userID: "owner-2", id: offer.ID, def: transportDef("", 0), wantErr: domain.ErrOfferNotFound},
		{name: "missing offer", userID: "owner-1", id: offer.ID + 100, def: transportDef("ghost", 3), wantErr: domain.ErrOfferNotFound},
		{name: "anonymous", userID: "", id: offer.ID, def: transportDef("anon", 3), wantErr: domain.ErrUnauthenticated},
		{name: "owner with invalid payload", userID: "owner-1", id: offer.ID, def: transportDef("bad <title>", 3), wantErr: domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.users.userID = tt.userID
			err := f.catalog.Update(ctx, tt.id, tt.def)
			require.ErrorIs(t, err, tt.wantErr)

			got, err := f.repo.FindByID(ctx, offer.ID)
			require.NoError(t, err)
			assert.Equal(t, offer, got)
		})
	}
}

func TestOfferCatalog_SoftDelete(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	keep, err := f.catalog.Create(ctx, transportDef("keep", 3))
	require.NoError(t, err)
	drop, err := f.catalog.Create(ctx, transportDef("drop", 3))
	require.NoError(t, err)

	require.NoError(t, f.catalog.SoftDelete(ctx, drop.ID))
	require.NoError(t, f.catalog.SoftDelete(ctx, drop.ID))
	require.NoError(t, f.catalog.SoftDelete(ctx, 999))

	page, err := f.catalog.List(ctx, nil, pageOf(0, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, titles(page.Content))
	assert.Equal(t, 1, page.TotalElements)

	got, err := f.catalog.Get(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, got.Status)
	assert.Equal(t, drop.ID, got.ID)
	assert.NotEqual(t, keep.ID, drop.ID)
}

func TestOfferCatalog_SoftDeleteRequiresUser(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	offer, err := f.catalog.Create(ctx, transportDef("keep", 3))
	require.NoError(t, err)

	f.users.userID = ""
	require.ErrorIs(t, f.catalog.SoftDelete(ctx, offer.ID), domain.ErrUnauthenticated)

	got, err := f.catalog.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive())
}

func TestOfferCatalog_Get(t *testing.T) {
	f := newTransportFixture()

	_, err := f.catalog.Get(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrOfferNotFound)

	boom := errors.New("connection reset")
	c := NewTransportCatalog(failingTransportRepo{err: boom}, f.users, f.clock, discardLogger(), time.Second)
	_, err = c.Get(context.Background(), 1)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestOfferCatalog_ListFilters(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()

	small := transportDef("small", 10)
	large := transportDef("large", 11)
	elsewhere := transportDef("elsewhere", 20)
	elsewhere.Origin = &domain.Location{Region: "Lubelskie", City: "Lublin"}
	for _, def := range []domain.TransportDefinition{small, large, elsewhere} {
		_, err := f.catalog.Create(ctx, def)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		criteria domain.TransportSearchCriteria
		want     []string
	}{
		{name: "no filters", want: []string{"small", "large", "elsewhere"}},
		{name: "capacity 10", criteria: domain.TransportSearchCriteria{Capacity: intPtr(10)}, want: []string{"small", "large", "elsewhere"}},
		{name: "capacity 11", criteria: domain.TransportSearchCriteria{Capacity: intPtr(11)}, want: []string{"large", "elsewhere"}},
		{name: "capacity 21", criteria: domain.TransportSearchCriteria{Capacity: intPtr(21)}, want: []string{}},
		{
			name:     "origin ignores case",
			criteria: domain.TransportSearchCriteria{Origin: &domain.Location{Region: "MAZOWIECKIE", City: "warszawa"}},
			want:     []string{"small", "large"},
		},
		{
			name: "origin and capacity",
			criteria: domain.TransportSearchCriteria{
				Origin:   &domain.Location{Region: "mazowieckie", City: "Warszawa"},
				Capacity: intPtr(11),
			},
			want: []string{"large"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.catalog.List(ctx, tt.criteria, pageOf(0, 10))
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(page.Content))
			assert.Equal(t, len(tt.want), page.TotalElements)
		})
	}
}

func TestOfferCatalog_ListPaginationAndSort(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	for _, title := range []string{"a", "bb", "bą", "c", "ć", "d"} {
		_, err := f.catalog.Create(ctx, transportDef(title, 1))
		require.NoError(t, err)
	}

	page, err := f.catalog.List(ctx, nil, pageOf(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"bą", "c"}, titles(page.Content))
	assert.Equal(t, 6, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.PageNumber)

	sorted, err := f.catalog.List(ctx, nil, pageOf(0, 20, domain.SortOrder{Field: domain.FieldTitle, Direction: domain.Desc}))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "ć", "c", "bb", "bą", "a"}, titles(sorted.Content))
}

func TestOfferCatalog_ListRejectsBadRequests(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()

	_, err := f.catalog.List(ctx, domain.TransportSearchCriteria{Capacity: intPtr(0)}, pageOf(0, 10))
	require.ErrorIs(t, err, domain.ErrInvalidSearchCriteria)

	_, err = f.catalog.List(ctx, domain.TransportSearchCriteria{Origin: &domain.Location{Region: "mazowieckie"}}, pageOf(0, 10))
	require.ErrorIs(t, err, domain.ErrInvalidSearchCriteria)

	_, err = f.catalog.List(ctx, nil, domain.PageRequest{Page: -1, Size: 10})
	require.ErrorIs(t, err, domain.ErrInvalidSearchCriteria)

	_, err = f.catalog.List(ctx, nil, domain.PageRequest{Page: 0, Size: 0})
	require.ErrorIs(t, err, domain.ErrInvalidSearchCriteria)

	_, err = f.catalog.List(ctx, nil, domain.PageRequest{Page: math.MaxInt/2 + 1, Size: 2})
	require.ErrorIs(t, err, domain.ErrInvalidSearchCriteria)

	_, err = f.catalog.List(ctx, nil, pageOf(0, 10, domain.SortOrder{Field: domain.FieldOwnerID, Direction: domain.Asc}))
	require.ErrorIs(t, err, domain.ErrInvalidSortField)
}

func TestAccommodationCatalog_ListByGuests(t *testing.T) {
	repo := memory.NewAccommodationStore(language.Polish)
	c := NewAccommodationCatalog(repo, &fakeUsers{userID: "host"}, &fakeClock{now: firstInstant}, discardLogger(), time.Second)
	ctx := context.Background()

	def := func(title string, guests int) domain.AccommodationDefinition {
		return domain.AccommodationDefinition{
			BaseDefinition: domain.BaseDefinition{Title: title, Description: "room"},
			Location:       &domain.Location{Region: "Małopolskie", City: "Kraków"},
			Guests:         intPtr(guests),
			LengthOfStay:   domain.StayMonth1,
		}
	}
	_, err := c.Create(ctx, def("flat", 2))
	require.NoError(t, err)
	_, err = c.Create(ctx, def("house", 6))
	require.NoError(t, err)

	page, err := c.List(ctx, domain.AccommodationSearchCriteria{
		Location: &domain.Location{Region: "małopolskie", City: "KRAKÓW"},
		Capacity: intPtr(3),
	}, pageOf(0, 10))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "house", page.Content[0].Title)
}

// Inactive offers still accept owner updates; whether they should is an open product question.
func TestOfferCatalog_UpdateInactiveOffer(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	offer, err := f.catalog.Create(ctx, transportDef("before", 3))
	require.NoError(t, err)
	require.NoError(t, f.catalog.SoftDelete(ctx, offer.ID))

	require.NoError(t, f.catalog.Update(ctx, offer.ID, transportDef("after", 3)))

	got, err := f.catalog.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, domain.StatusInactive, got.Status)
}

// Any authenticated user can retire any offer until soft delete is owner-scoped.
func TestOfferCatalog_SoftDeleteIsNotOwnerScoped(t *testing.T) {
	f := newTransportFixture()
	ctx := context.Background()
	offer, err := f.catalog.Create(ctx, transportDef("mine", 3))
	require.NoError(t, err)

	f.users.userID = "someone-else"
	require.NoError(t, f.catalog.SoftDelete(ctx, offer.ID))

	got, err := f.catalog.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, got.Status)
}

package bookingRepo

import (
	"context"
	"time"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

type storeBookingRepo struct {
	bookings *collection.Collection[models.Booking]
	now      func() time.Time
}

// NewStoreBookingRepo creates a BookingRepository backed by store.
func NewStoreBookingRepo(store database.Store) BookingRepository {
	return &storeBookingRepo{
		bookings: collection.New[models.Booking](store, utils.KeyBookings, collection.Prepend),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *storeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.bookings.List(ctx)
}

func (r *storeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return r.bookings.Get(ctx, id)
}

func (r *storeBookingRepo) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	return r.bookings.Add(ctx, b)
}

func (r *storeBookingRepo) Update(ctx context.Context, id string, patch models.BookingUpdateRequest) (*models.Booking, error) {
	return r.bookings.Update(ctx, id, func(b *models.Booking) {
		patch.Apply(b)
		stamp := r.now()
		b.UpdatedAt = &stamp
	})
}

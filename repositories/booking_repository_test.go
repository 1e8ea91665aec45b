package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBooking(t *testing.T, store *repositories.Store, customer *models.User, worker *models.WorkerProfile) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		CustomerID:    customer.ID,
		WorkerID:      worker.ID,
		Service:       "Pipe repair",
		ScheduledDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "10:00",
		Address:       "12 MG Road, Pune",
		Amount:        worker.HourlyRate,
	}
	require.NoError(t, store.Bookings.Create(context.Background(), booking))
	return booking
}

func TestBookingUpdateStatusIsConditional(t *testing.T) {
	gdb := testutil.NewDB(t)
	store := repositories.NewStore(gdb)
	ctx := context.Background()

	customer := testutil.CreateUser(t, gdb, models.RoleCustomer, "Asha", "asha@example.com", "9876543210")
	worker := testutil.CreateWorker(t, gdb, testutil.WorkerOptions{Name: "Ramesh", Email: "ramesh@example.com", Phone: "9876500001", HourlyRate: 299})
	booking := newBooking(t, store, customer, worker)
	require.Equal(t, models.BookingPending, booking.Status)

	ok, err := store.Bookings.UpdateStatus(ctx, booking.ID, models.BookingConfirmed, models.BookingCompleted)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := store.Bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)

	ok, err = store.Bookings.UpdateStatus(ctx, booking.ID, models.BookingPending, models.BookingConfirmed)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second writer still holding PENDING loses.
	ok, err = store.Bookings.UpdateStatus(ctx, booking.ID, models.BookingPending, models.BookingCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err = store.Bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, stored.Status)

	ok, err = store.Bookings.UpdateStatus(ctx, uuid.New(), models.BookingPending, models.BookingConfirmed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewUniquePerBooking(t *testing.T) {
	gdb := testutil.NewDB(t)
	store := repositories.NewStore(gdb)
	ctx := context.Background()

	customer := testutil.CreateUser(t, gdb, models.RoleCustomer, "Asha", "asha@example.com", "9876543210")
	worker := testutil.CreateWorker(t, gdb, testutil.WorkerOptions{Name: "Ramesh", Email: "ramesh@example.com", Phone: "9876500001"})
	booking := newBooking(t, store, customer, worker)

	review := func(rating int) *models.Review {
		return &models.Review{BookingID: booking.ID, CustomerID: customer.ID, WorkerID: worker.ID, Rating: rating}
	}
	exists, err := store.Reviews.ExistsForBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Reviews.Create(ctx, review(5)))
	exists, err = store.Reviews.ExistsForBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.ErrorIs(t, store.Reviews.Create(ctx, review(3)), gorm.ErrDuplicatedKey)

	ratings, err := store.Reviews.RatingsForWorker(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ratings)
}

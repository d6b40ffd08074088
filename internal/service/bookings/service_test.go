package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	bookingRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/booking"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/service/bookings/models"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (r *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *stubBookingRepo) GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBookingRepo) GetByChefWithFilter(ctx context.Context, filter domain.ChefBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.ChefID != filter.ChefID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.updatedID = id
	r.updatedStatus = status
	return nil
}

func (r *stubBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.cancelledID = id
	r.cancelledStatus = status
	r.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(id, clientID, chefID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientID:    clientID,
		ChefID:      chefID,
		BookingDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		Shift:       domain.ShiftMorning,
		StartTime:   types.TimeString("10:00"),
		People:      4,
		Status:      status,
		MenuID:      7,
		MenuName:    "Menu Degustação",
	}
}

func newTestService(repo *stubBookingRepo) *Service {
	return NewService(repo, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 100, 200, domain.StatusPending),
	}}
	svc := newTestService(repo)

	t.Run("client sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "morning", resp.Shift)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("chef sees own booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 200)
		require.NoError(t, err)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, 100)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetChefBookings_AccessDenied(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo)

	_, err := svc.GetChefBookings(context.Background(), &models.GetChefBookingsRequest{
		ChefID: 200,
		UserID: 100,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel(t *testing.T) {
	t.Run("client cancels own booking", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			UserID:             100,
			CancellationReason: "mudança de planos",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
		assert.Equal(t, "mudança de planos", repo.cancelledReason)
	})

	t.Run("chef cancels the shift", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusConfirmed),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 200})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByChef, repo.cancelledStatus)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 999})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusCompleted),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("chef confirms pending booking", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	})

	t.Run("chef completes confirmed booking", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusConfirmed),
		}}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	})

	t.Run("client cannot change status", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 100,
			Status: "confirmed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "completed",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, 100, 200, domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "paused",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

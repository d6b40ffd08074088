package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	bookingStorage "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/booking"
	scheduleStorage "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/ptr"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking
	onDate   []*domain.Booking

	rescheduled   *domain.Booking
	rescheduleErr error
}

func (r *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return b, nil
}

func (r *stubBookingRepo) GetByChefWithFilter(ctx context.Context, filter domain.ChefBookingsFilter) ([]*domain.Booking, error) {
	return r.onDate, nil
}

func (r *stubBookingRepo) Reschedule(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.rescheduleErr != nil {
		return nil, r.rescheduleErr
	}
	updated := *booking
	updated.UpdatedAt = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	r.rescheduled = &updated
	return &updated, nil
}

type stubScheduleRepo struct {
	schedule *domain.WeeklySchedule
}

func (r *stubScheduleRepo) GetByChefID(ctx context.Context, chefID int64) (*domain.WeeklySchedule, error) {
	if r.schedule == nil {
		return nil, scheduleStorage.ErrScheduleNotFound
	}
	return r.schedule, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2026-03-16 - понедельник, 2026-03-17 - вторник
func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:             42,
		ClientID:       100,
		ChefID:         7,
		BookingDate:    time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		Shift:          domain.ShiftMorning,
		StartTime:      types.TimeString("09:00"),
		People:         4,
		Status:         domain.StatusConfirmed,
		MenuID:         3,
		MenuName:       "Menu Degustação",
		PricePerPerson: 150.0,
		TotalPrice:     600.0,
	}
}

func validRequest() *Request {
	return &Request{
		BookingID: 42,
		UserID:    100,
		Date:      time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("15:00"),
	}
}

func newTestUseCase(repo *stubBookingRepo, scheduleRepo *stubScheduleRepo) *UseCase {
	uc := NewUseCase(repo, scheduleRepo, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_MoveToAnotherDay(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{42: existingBooking()}}
	uc := newTestUseCase(repo, &stubScheduleRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-17", resp.BookingDate.Format(domain.DateFormat))
	assert.Equal(t, "afternoon", resp.Shift)
	assert.Equal(t, "TARDE", resp.ShiftName)
	assert.Equal(t, 600.0, resp.TotalPrice)

	require.NotNil(t, repo.rescheduled)
	assert.Equal(t, domain.ShiftAfternoon, repo.rescheduled.Shift)
}

func TestUseCase_Execute_MoveWithinOwnShift(t *testing.T) {
	// Своё же бронирование не конфликтует с переносом времени внутри смены
	booking := existingBooking()
	repo := &stubBookingRepo{
		bookings: map[int64]*domain.Booking{42: booking},
		onDate:   []*domain.Booking{booking},
	}
	uc := newTestUseCase(repo, &stubScheduleRepo{})

	req := validRequest()
	req.Date = booking.BookingDate
	req.StartTime = types.TimeString("10:30")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "morning", resp.Shift)
	assert.Equal(t, "10:30", resp.StartTime.String())
}

func TestUseCase_Execute_PeopleChangeRecalculatesPrice(t *testing.T) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{42: existingBooking()}}
	uc := newTestUseCase(repo, &stubScheduleRepo{})

	req := validRequest()
	req.People = ptr.Ptr(6)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.People)
	assert.Equal(t, 900.0, resp.TotalPrice)
}

func TestUseCase_Execute_TargetShiftTaken(t *testing.T) {
	other := &domain.Booking{
		ID:          77,
		ChefID:      7,
		BookingDate: time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		Shift:       domain.ShiftAfternoon,
		Status:      domain.StatusPending,
	}
	repo := &stubBookingRepo{
		bookings: map[int64]*domain.Booking{42: existingBooking()},
		onDate:   []*domain.Booking{other},
	}
	uc := newTestUseCase(repo, &stubScheduleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrShiftAlreadyBooked)
}

func TestUseCase_Execute_Guards(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{}}
		uc := newTestUseCase(repo, &stubScheduleRepo{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("foreign booking", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{42: existingBooking()}}
		uc := newTestUseCase(repo, &stubScheduleRepo{})

		req := validRequest()
		req.UserID = 999

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		booking := existingBooking()
		booking.Status = domain.StatusCancelledByClient
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{42: booking}}
		uc := newTestUseCase(repo, &stubScheduleRepo{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCannotReschedule)
	})

	t.Run("date in past", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{42: existingBooking()}}
		uc := newTestUseCase(repo, &stubScheduleRepo{})

		req := validRequest()
		req.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("time in gap between shifts", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{42: existingBooking()}}
		uc := newTestUseCase(repo, &stubScheduleRepo{})

		req := validRequest()
		req.StartTime = types.TimeString("13:00")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideShiftWindows)
	})

	t.Run("unique violation maps to shift taken", func(t *testing.T) {
		repo := &stubBookingRepo{
			bookings:      map[int64]*domain.Booking{42: existingBooking()},
			rescheduleErr: bookingStorage.ErrShiftTaken,
		}
		uc := newTestUseCase(repo, &stubScheduleRepo{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrShiftAlreadyBooked)
	})
}

package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	bookingStorage "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/booking"
	scheduleStorage "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/ptr"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

type stubBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (r *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *booking
	created.ID = 1001
	created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *stubBookingRepo) GetByChefWithFilter(ctx context.Context, filter domain.ChefBookingsFilter) ([]*domain.Booking, error) {
	return r.existing, nil
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

type stubProfileClient struct {
	chef *profileservice.Chef
	menu *profileservice.Menu
}

func (c *stubProfileClient) GetChef(ctx context.Context, chefID int64) (*profileservice.Chef, error) {
	if c.chef == nil || c.chef.ID != chefID {
		return nil, profileservice.ErrChefNotFound
	}
	return c.chef, nil
}

func (c *stubProfileClient) GetMenu(ctx context.Context, menuID int64) (*profileservice.Menu, error) {
	if c.menu == nil || c.menu.ID != menuID {
		return nil, profileservice.ErrMenuNotFound
	}
	return c.menu, nil
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

func validChef() *profileservice.Chef {
	return &profileservice.Chef{ID: 7, Name: "Ana Souza", IsAvailable: true}
}

func validMenu() *profileservice.Menu {
	return &profileservice.Menu{ID: 3, ChefID: 7, Name: "Menu Degustação", PricePerPerson: 150.0, IsActive: true}
}

// 2026-03-16 - понедельник
func validRequest() *Request {
	return &Request{
		ClientID:  100,
		ChefID:    7,
		MenuID:    3,
		Date:      time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("09:30"),
		People:    4,
	}
}

func newTestUseCase(
	bookingRepo *stubBookingRepo,
	scheduleRepo *stubScheduleRepo,
	client *stubProfileClient,
) *UseCase {
	uc := NewUseCase(bookingRepo, scheduleRepo, client, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, "morning", resp.Shift)
	assert.Equal(t, "MANHÃ", resp.ShiftName)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Menu Degustação", resp.MenuName)
	assert.Equal(t, 150.0, resp.PricePerPerson)
	assert.Equal(t, 600.0, resp.TotalPrice)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, domain.ShiftMorning, repo.created.Shift)
}

func TestUseCase_Execute_AfternoonShift(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	req := validRequest()
	req.StartTime = types.TimeString("15:00")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "afternoon", resp.Shift)
	assert.Equal(t, "TARDE", resp.ShiftName)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"zero chef", func(r *Request) { r.ChefID = 0 }},
		{"zero menu", func(r *Request) { r.MenuID = 0 }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"malformed time", func(r *Request) { r.StartTime = "25:70" }},
		{"zero people", func(r *Request) { r.People = 0 }},
		{"too many people", func(r *Request) { r.People = domain.MaxPeoplePerBooking + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	req := validRequest()
	req.Date = time.Time{}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	req := validRequest()
	req.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestUseCase_Execute_ChefChecks(t *testing.T) {
	t.Run("chef not found", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{menu: validMenu()})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrChefNotFound)
	})

	t.Run("chef not accepting bookings", func(t *testing.T) {
		chef := validChef()
		chef.IsAvailable = false
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: chef, menu: validMenu()})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrChefNotAvailable)
	})
}

func TestUseCase_Execute_MenuChecks(t *testing.T) {
	t.Run("menu not found", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef()})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("menu of another chef", func(t *testing.T) {
		menu := validMenu()
		menu.ChefID = 99
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: menu})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("inactive menu", func(t *testing.T) {
		menu := validMenu()
		menu.IsActive = false
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: menu})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrMenuNotActive)
	})
}

func TestUseCase_Execute_AvailabilityOutcomes(t *testing.T) {
	t.Run("time outside shift windows", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

		req := validRequest()
		req.StartTime = types.TimeString("13:00")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideShiftWindows)
	})

	t.Run("shift disabled by chef", func(t *testing.T) {
		schedule := domain.DefaultWeeklySchedule()
		schedule.Monday.Morning.Available = false

		uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{schedule: &schedule}, &stubProfileClient{chef: validChef(), menu: validMenu()})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrShiftNotOffered)
	})

	t.Run("shift taken by active booking", func(t *testing.T) {
		repo := &stubBookingRepo{existing: []*domain.Booking{{
			ID:          500,
			ChefID:      7,
			BookingDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			Shift:       domain.ShiftMorning,
			Status:      domain.StatusConfirmed,
		}}}
		uc := newTestUseCase(repo, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrShiftAlreadyBooked)
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		repo := &stubBookingRepo{existing: []*domain.Booking{{
			ID:          500,
			ChefID:      7,
			BookingDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			Shift:       domain.ShiftMorning,
			Status:      domain.StatusCancelledByClient,
		}}}
		uc := newTestUseCase(repo, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})
}

func TestUseCase_Execute_UniqueViolationMapsToShiftTaken(t *testing.T) {
	// Гонка, проскочившая мимо проверки в памяти, ловится уникальным индексом
	repo := &stubBookingRepo{createErr: bookingStorage.ErrShiftTaken}
	uc := newTestUseCase(repo, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrShiftAlreadyBooked)
}

func TestUseCase_Execute_NotesTooLong(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, &stubProfileClient{chef: validChef(), menu: validMenu()})

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}

	req := validRequest()
	req.Notes = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

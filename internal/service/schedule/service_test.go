package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	scheduleRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/service/schedule/models"
)

type stubScheduleRepo struct {
	schedules map[int64]*domain.WeeklySchedule
	upserted  map[int64]*domain.WeeklySchedule

	// txm берется из теста, чтобы зафиксировать, шёл ли Upsert в транзакции
	txm        *stubTxManager
	upsertInTx bool
}

func (r *stubScheduleRepo) GetByChefID(ctx context.Context, chefID int64) (*domain.WeeklySchedule, error) {
	s, ok := r.schedules[chefID]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return s, nil
}

func (r *stubScheduleRepo) Upsert(ctx context.Context, chefID int64, schedule *domain.WeeklySchedule) error {
	if r.upserted == nil {
		r.upserted = map[int64]*domain.WeeklySchedule{}
	}
	r.upserted[chefID] = schedule
	if r.txm != nil {
		r.upsertInTx = r.txm.inTx
	}
	return nil
}

// stubTxManager выполняет fn напрямую, отмечая границы транзакции
type stubTxManager struct {
	calls int
	inTx  bool
}

func (m *stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	m.inTx = true
	defer func() { m.inTx = false }()
	return fn(ctx)
}

type stubProfileClient struct {
	chefs map[int64]*profileservice.Chef
}

func (c *stubProfileClient) GetChef(ctx context.Context, chefID int64) (*profileservice.Chef, error) {
	chef, ok := c.chefs[chefID]
	if !ok {
		return nil, profileservice.ErrChefNotFound
	}
	return chef, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validDay() models.DayScheduleRequest {
	return models.DayScheduleRequest{
		Morning:   models.ShiftWindowRequest{Start: "08:00", End: "12:00", Available: true},
		Afternoon: models.ShiftWindowRequest{Start: "14:00", End: "18:00", Available: true},
	}
}

func validUpdateRequest(chefID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:    chefID,
		ChefID:    chefID,
		Monday:    validDay(),
		Tuesday:   validDay(),
		Wednesday: validDay(),
		Thursday:  validDay(),
		Friday:    validDay(),
		Saturday:  validDay(),
		Sunday:    validDay(),
	}
}

func TestService_GetSchedule_Default(t *testing.T) {
	repo := &stubScheduleRepo{schedules: map[int64]*domain.WeeklySchedule{}}
	svc := NewService(repo, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), 42)
	require.NoError(t, err)

	// Шеф без сохранённого расписания получает дефолтное
	assert.Equal(t, int64(42), resp.ChefID)
	assert.Equal(t, "08:00", resp.Monday.Morning.Start)
	assert.Equal(t, "12:00", resp.Monday.Morning.End)
	assert.True(t, resp.Monday.Morning.Available)
	assert.Equal(t, "14:00", resp.Sunday.Afternoon.Start)
	assert.Equal(t, "18:00", resp.Sunday.Afternoon.End)
}

func TestService_GetSchedule_Stored(t *testing.T) {
	stored := domain.DefaultWeeklySchedule()
	stored.Wednesday.Afternoon.Available = false

	repo := &stubScheduleRepo{schedules: map[int64]*domain.WeeklySchedule{
		7: &stored,
	}}
	svc := NewService(repo, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, resp.Wednesday.Afternoon.Available)
	assert.True(t, resp.Wednesday.Morning.Available)
}

func TestService_UpdateSchedule(t *testing.T) {
	t.Run("chef updates own schedule", func(t *testing.T) {
		repo := &stubScheduleRepo{schedules: map[int64]*domain.WeeklySchedule{}}
		client := &stubProfileClient{chefs: map[int64]*profileservice.Chef{
			7: {ID: 7, Name: "Ana", IsAvailable: true},
		}}
		svc := NewService(repo, client, &stubTxManager{}, nopLogger{})

		req := validUpdateRequest(7)
		req.Tuesday.Morning = models.ShiftWindowRequest{Start: "09:30", End: "11:30", Available: true}

		resp, err := svc.UpdateSchedule(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "09:30", resp.Tuesday.Morning.Start)

		saved := repo.upserted[7]
		require.NotNil(t, saved)
		assert.Equal(t, "09:30", saved.Tuesday.Morning.Start.String())
	})

	t.Run("only the chef can update", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

		req := validUpdateRequest(7)
		req.UserID = 100

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown chef rejected", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, &stubProfileClient{chefs: map[int64]*profileservice.Chef{}}, &stubTxManager{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), validUpdateRequest(7))
		assert.ErrorIs(t, err, ErrChefNotFound)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

		req := validUpdateRequest(7)
		req.Friday.Morning.Start = "8h00"

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

		req := validUpdateRequest(7)
		req.Saturday.Afternoon = models.ShiftWindowRequest{Start: "18:00", End: "14:00", Available: true}

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("all seven days saved in one transaction", func(t *testing.T) {
		txm := &stubTxManager{}
		repo := &stubScheduleRepo{schedules: map[int64]*domain.WeeklySchedule{}, txm: txm}
		client := &stubProfileClient{chefs: map[int64]*profileservice.Chef{
			7: {ID: 7, Name: "Ana", IsAvailable: true},
		}}
		svc := NewService(repo, client, txm, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), validUpdateRequest(7))
		require.NoError(t, err)

		assert.Equal(t, 1, txm.calls)
		assert.True(t, repo.upsertInTx)
	})

	t.Run("first validation error names the earliest day", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

		// Сломаны два дня - ошибка всегда указывает на более ранний
		req := validUpdateRequest(7)
		req.Tuesday.Morning.Start = "bad"
		req.Saturday.Afternoon.End = "bad"

		for i := 0; i < 5; i++ {
			_, err := svc.UpdateSchedule(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), "tuesday")
		}
	})

	t.Run("missing window rejected by struct validation", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, &stubProfileClient{}, &stubTxManager{}, nopLogger{})

		req := validUpdateRequest(7)
		req.Thursday.Morning = models.ShiftWindowRequest{}

		_, err := svc.UpdateSchedule(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

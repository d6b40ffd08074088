package schedule

import (
	"context"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByChefID(ctx context.Context, chefID int64) (*domain.WeeklySchedule, error)
	Upsert(ctx context.Context, chefID int64, schedule *domain.WeeklySchedule) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetChef(ctx context.Context, chefID int64) (*profileservice.Chef, error)
}

// TransactionManager интерфейс менеджера транзакций
// Все 7 дней расписания сохраняются в одной транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/dbmetrics"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельных расписаний шефов
// Расписание хранится по одной строке на (chef_id, weekday):
// weekday в конвенции time.Weekday (0 = воскресенье)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByChefID собирает недельное расписание шефа из строк по дням
// Возвращает ErrScheduleNotFound, если у шефа нет ни одной строки
// Отсутствующие дни остаются нулевыми DaySchedule - их ловит проверка доступности
func (r *Repository) GetByChefID(ctx context.Context, chefID int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"morning_start",
		"morning_end",
		"morning_available",
		"afternoon_start",
		"afternoon_end",
		"afternoon_available",
	).
		From("chef_schedules").
		Where(squirrel.Eq{"chef_id": chefID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByChefID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChefID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedule domain.WeeklySchedule
	found := 0

	for rows.Next() {
		var weekday int
		var day domain.DaySchedule

		err := rows.Scan(
			&weekday,
			&day.Morning.Start,
			&day.Morning.End,
			&day.Morning.Available,
			&day.Afternoon.Start,
			&day.Afternoon.End,
			&day.Afternoon.Available,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByChefID - scan row: %v", ErrScanRow, err)
		}

		schedule.SetDay(time.Weekday(weekday), day)
		found++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByChefID - rows error: %v", ErrScanRow, err)
	}

	if found == 0 {
		return nil, ErrScheduleNotFound
	}

	return &schedule, nil
}

// Upsert сохраняет все 7 дней расписания шефа
// Существующие строки дней обновляются, отсутствующие вставляются
func (r *Repository) Upsert(ctx context.Context, chefID int64, schedule *domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, weekday := range domain.Weekdays {
		day := schedule.DayFor(weekday)

		query, args, err := psqlbuilder.Insert("chef_schedules").
			Columns(
				"chef_id",
				"weekday",
				"morning_start",
				"morning_end",
				"morning_available",
				"afternoon_start",
				"afternoon_end",
				"afternoon_available",
			).
			Values(
				chefID,
				int(weekday),
				day.Morning.Start,
				day.Morning.End,
				day.Morning.Available,
				day.Afternoon.Start,
				day.Afternoon.End,
				day.Afternoon.Available,
			).
			Suffix(`ON CONFLICT (chef_id, weekday) DO UPDATE SET
				morning_start = EXCLUDED.morning_start,
				morning_end = EXCLUDED.morning_end,
				morning_available = EXCLUDED.morning_available,
				afternoon_start = EXCLUDED.afternoon_start,
				afternoon_end = EXCLUDED.afternoon_end,
				afternoon_available = EXCLUDED.afternoon_available,
				updated_at = NOW()`).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Upsert - execute insert for weekday %d: %v", ErrExecQuery, int(weekday), err)
		}
	}

	return nil
}

// Delete удаляет расписание шефа целиком
func (r *Repository) Delete(ctx context.Context, chefID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("chef_schedules").
		Where(squirrel.Eq{"chef_id": chefID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

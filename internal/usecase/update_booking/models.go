package update_booking

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
// Перенос задаёт новую дату и время; количество гостей и заметки опциональны
type Request struct {
	BookingID int64            // ID переносимого бронирования
	UserID    int64            // ID пользователя, выполняющего перенос
	Date      time.Time        // Новая дата бронирования
	StartTime types.TimeString // Новое время начала
	People    *int             // Новое количество гостей (опционально)
	Notes     *string          // Новые заметки (опционально)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID          int64            // ID бронирования
	ClientID    int64            // ID клиента
	ChefID      int64            // ID шефа
	BookingDate time.Time        // Новая дата
	Shift       string           // Смена, в которую попало новое время
	ShiftName   string           // Отображаемое имя смены (MANHÃ / TARDE)
	StartTime   types.TimeString // Новое время начала
	People      int              // Количество гостей
	Status      string           // Статус бронирования

	MenuID         int64   // ID меню
	MenuName       string  // Название меню
	PricePerPerson float64 // Цена за человека
	TotalPrice     float64 // Итоговая цена
	Notes          *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package create_booking

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  int64            // ID клиента
	ChefID    int64            // ID шефа
	MenuID    int64            // ID меню шефа
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Желаемое время начала (например, "10:00")
	People    int              // Количество гостей
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	ClientID    int64            // ID клиента
	ChefID      int64            // ID шефа
	BookingDate time.Time        // Дата бронирования
	Shift       string           // Смена, в которую попало время
	ShiftName   string           // Отображаемое имя смены (MANHÃ / TARDE)
	StartTime   types.TimeString // Время начала
	People      int              // Количество гостей
	Status      string           // Статус бронирования

	// Денормализованные данные меню
	MenuID         int64   // ID меню
	MenuName       string  // Название меню
	PricePerPerson float64 // Цена за человека
	TotalPrice     float64 // Итоговая цена
	Notes          *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

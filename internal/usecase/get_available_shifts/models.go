package get_available_shifts

import "time"

// Request модель запроса на получение состояния смен
type Request struct {
	ChefID int64     // ID шефа
	Date   time.Time // Дата, на которую запрашиваются смены
}

// Shift состояние одной смены запрошенной даты
type Shift struct {
	Shift     string `json:"shift"`            // morning / afternoon
	Name      string `json:"name"`             // MANHÃ / TARDE
	Start     string `json:"start"`            // Начало окна, HH:MM
	End       string `json:"end"`              // Конец окна, HH:MM
	Available bool   `json:"available"`        // Смена включена и свободна
	Reason    string `json:"reason,omitempty"` // Причина недоступности
}

// Response модель ответа со сменами даты
type Response struct {
	ChefID int64     `json:"chefId"`
	Date   time.Time `json:"date"`
	Shifts []Shift   `json:"shifts"`
}

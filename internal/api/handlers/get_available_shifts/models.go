package get_available_shifts

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	getAvailableShifts "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/get_available_shifts"
)

// AvailableShiftsResponse HTTP response model
type AvailableShiftsResponse struct {
	ChefID int64            `json:"chefId"`
	Date   string           `json:"date"`
	Shifts []AvailableShift `json:"shifts"`
}

// AvailableShift модель состояния одной смены
type AvailableShift struct {
	Shift     string `json:"shift"`
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(chefID int64, dateStr string) (*getAvailableShifts.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableShifts.Request{
		ChefID: chefID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableShifts.Response) *AvailableShiftsResponse {
	shifts := make([]AvailableShift, len(resp.Shifts))
	for i, shift := range resp.Shifts {
		shifts[i] = AvailableShift{
			Shift:     shift.Shift,
			Name:      shift.Name,
			Start:     shift.Start,
			End:       shift.End,
			Available: shift.Available,
			Reason:    shift.Reason,
		}
	}

	return &AvailableShiftsResponse{
		ChefID: resp.ChefID,
		Date:   resp.Date.Format(domain.DateFormat),
		Shifts: shifts,
	}
}

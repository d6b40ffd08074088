package create_booking

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	createBooking "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/create_booking"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ChefID      int64   `json:"chefId"`
	MenuID      int64   `json:"menuId"`
	BookingDate string  `json:"bookingDate"` // "2026-03-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	People      int     `json:"people"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	ClientID       int64   `json:"clientId"`
	ChefID         int64   `json:"chefId"`
	BookingDate    string  `json:"bookingDate"`
	Shift          string  `json:"shift"`
	ShiftName      string  `json:"shiftName"`
	StartTime      string  `json:"startTime"`
	People         int     `json:"people"`
	Status         string  `json:"status"`
	MenuID         int64   `json:"menuId"`
	MenuName       string  `json:"menuName"`
	PricePerPerson float64 `json:"pricePerPerson"`
	TotalPrice     float64 `json:"totalPrice"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:  clientID,
		ChefID:    r.ChefID,
		MenuID:    r.MenuID,
		Date:      bookingDate,
		StartTime: startTime,
		People:    r.People,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ClientID:       resp.ClientID,
		ChefID:         resp.ChefID,
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		Shift:          resp.Shift,
		ShiftName:      resp.ShiftName,
		StartTime:      resp.StartTime.String(),
		People:         resp.People,
		Status:         resp.Status,
		MenuID:         resp.MenuID,
		MenuName:       resp.MenuName,
		PricePerPerson: resp.PricePerPerson,
		TotalPrice:     resp.TotalPrice,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

package update_booking

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	updateBooking "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/update_booking"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	BookingDate string  `json:"bookingDate"` // "2026-03-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	People      *int    `json:"people,omitempty"`
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
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*updateBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Date:      bookingDate,
		StartTime: startTime,
		People:    r.People,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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

package get_chef_bookings

import (
	"context"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetChefBookings(ctx context.Context, req *models.GetChefBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_chef_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	chefID int64,
	userID int64,
	dateStr string,
	shiftStr string,
	statusStr string,
	includeInactiveStr string,
) (*models.GetChefBookingsRequest, error) {
	req := &models.GetChefBookingsRequest{
		UserID:          userID,
		ChefID:          chefID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим shift если указана
	if shiftStr != "" {
		req.Shift = &shiftStr
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

package domain

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledByChef   BookingStatus = "cancelled_by_chef"
)

// Booking represents a chef appointment in the system
// A booking occupies one shift (morning or afternoon) of a chef on a calendar date
type Booking struct {
	ID          int64
	ClientID    int64
	ChefID      int64
	BookingDate time.Time
	Shift       Shift
	StartTime   types.TimeString
	People      int
	Status      BookingStatus

	// Denormalized menu data for history
	MenuID         int64
	MenuName       string
	PricePerPerson float64
	TotalPrice     float64
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its shift
// Only pending and confirmed bookings occupy a shift; cancelled and
// completed bookings never block new requests
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another date or shift
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledByChef
}

// ChefBookingsFilter фильтр для получения бронирований шефа
type ChefBookingsFilter struct {
	ChefID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Shift           *Shift         // Фильтр по смене (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, завершенные)
}

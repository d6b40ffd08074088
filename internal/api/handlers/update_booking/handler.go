package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/middleware"
	updateBooking "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "ID de reserva inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserID      = "usuário não autenticado"
	msgNotFound           = "reserva não encontrada"
	msgForbidden          = "acesso negado"
	msgCannotReschedule   = "a reserva não pode mais ser remarcada"
	msgDateInPast         = "a data da reserva já passou"
	msgDayNotConfigured   = "o chef não possui agenda configurada para este dia"
	msgOutsideShifts      = "horário fora dos turnos configurados"
	msgShiftNotOffered    = "turno não disponível neste dia"
	msgShiftTaken         = "turno já possui agendamento confirmado ou pendente"
	msgInvalidInput       = "dados da remarcação inválidos"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrCannotReschedule):
			h.logger.Warn("PUT /bookings/{id} - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, updateBooking.ErrShiftAlreadyBooked):
			h.logger.Warn("PUT /bookings/{id} - Shift already booked: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgShiftTaken)

		case errors.Is(err, updateBooking.ErrDateInPast):
			h.logger.Warn("PUT /bookings/{id} - Date in past: booking_id=%d, date=%s", bookingID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, updateBooking.ErrDayNotConfigured):
			h.logger.Warn("PUT /bookings/{id} - Day not configured: booking_id=%d, date=%s", bookingID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDayNotConfigured)

		case errors.Is(err, updateBooking.ErrOutsideShiftWindows):
			h.logger.Warn("PUT /bookings/{id} - Time outside shifts: booking_id=%d, time=%s", bookingID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgOutsideShifts)

		case errors.Is(err, updateBooking.ErrShiftNotOffered):
			h.logger.Warn("PUT /bookings/{id} - Shift not offered: booking_id=%d, date=%s", bookingID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgShiftNotOffered)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to reschedule booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking rescheduled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

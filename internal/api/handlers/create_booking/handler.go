package create_booking

import (
	"errors"
	"net/http"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/middleware"
	createBooking "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserID      = "usuário não autenticado"
	msgChefNotFound       = "chef não encontrado"
	msgChefNotAvailable   = "chef não está aceitando reservas no momento"
	msgMenuNotFound       = "menu não encontrado"
	msgMenuNotActive      = "menu não está mais disponível"
	msgDateInPast         = "a data da reserva já passou"
	msgDayNotConfigured   = "o chef não possui agenda configurada para este dia"
	msgOutsideShifts      = "horário fora dos turnos configurados"
	msgShiftNotOffered    = "turno não disponível neste dia"
	msgShiftTaken         = "turno já possui agendamento confirmado ou pendente"
	msgInvalidInput       = "dados da reserva inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем clientID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrShiftAlreadyBooked):
			h.logger.Warn("POST /bookings - Shift already booked: client_id=%d, chef_id=%d", clientID, req.ChefID)
			handlers.RespondError(w, http.StatusConflict, msgShiftTaken)

		case errors.Is(err, createBooking.ErrChefNotFound):
			h.logger.Warn("POST /bookings - Chef not found: chef_id=%d", req.ChefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, createBooking.ErrChefNotAvailable):
			h.logger.Warn("POST /bookings - Chef not available: chef_id=%d", req.ChefID)
			handlers.RespondError(w, http.StatusConflict, msgChefNotAvailable)

		case errors.Is(err, createBooking.ErrMenuNotFound):
			h.logger.Warn("POST /bookings - Menu not found: chef_id=%d, menu_id=%d", req.ChefID, req.MenuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, createBooking.ErrMenuNotActive):
			h.logger.Warn("POST /bookings - Menu not active: menu_id=%d", req.MenuID)
			handlers.RespondBadRequest(w, msgMenuNotActive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: client_id=%d, date=%s", clientID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: client_id=%d, date=%s", clientID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDayNotConfigured):
			h.logger.Warn("POST /bookings - Day not configured: chef_id=%d, date=%s", req.ChefID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDayNotConfigured)

		case errors.Is(err, createBooking.ErrOutsideShiftWindows):
			h.logger.Warn("POST /bookings - Time outside shifts: chef_id=%d, time=%s", req.ChefID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgOutsideShifts)

		case errors.Is(err, createBooking.ErrShiftNotOffered):
			h.logger.Warn("POST /bookings - Shift not offered: chef_id=%d, date=%s", req.ChefID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgShiftNotOffered)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, chef_id=%d, error=%v",
				clientID, req.ChefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, chef_id=%d",
		result.ID, clientID, req.ChefID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

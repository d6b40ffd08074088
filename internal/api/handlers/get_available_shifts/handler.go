package get_available_shifts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers"
	getAvailableShifts "github.com/chefnasuacasa/CNSC-BookingService/internal/usecase/get_available_shifts"
)

const (
	msgInvalidChefID    = "ID de chef inválido"
	msgMissingDate      = "data é obrigatória"
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgChefNotFound     = "chef não encontrado"
	msgDayNotConfigured = "o chef não possui agenda configurada para este dia"
)

type Handler struct {
	useCase GetAvailableShiftsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableShiftsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chefs/{chefId}/available-shifts
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем chefId из URL
	chefIDStr := vars["chefId"]
	chefID, err := strconv.ParseInt(chefIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /chefs/{chefId}/available-shifts - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /chefs/{chefId}/available-shifts - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Конвертируем в запрос use case
	useCaseReq, err := ToUseCaseRequest(chefID, dateStr)
	if err != nil {
		h.logger.Warn("GET /chefs/{chefId}/available-shifts - Invalid date: %q, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableShifts.ErrChefNotFound):
			h.logger.Warn("GET /chefs/{chefId}/available-shifts - Chef not found: chef_id=%d", chefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, getAvailableShifts.ErrDayNotConfigured):
			h.logger.Warn("GET /chefs/{chefId}/available-shifts - Day not configured: chef_id=%d, date=%s",
				chefID, dateStr)
			handlers.RespondBadRequest(w, msgDayNotConfigured)

		case errors.Is(err, getAvailableShifts.ErrInvalidInput):
			h.logger.Warn("GET /chefs/{chefId}/available-shifts - Invalid input: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /chefs/{chefId}/available-shifts - Failed to get shifts: chef_id=%d, error=%v",
				chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /chefs/{chefId}/available-shifts - Shifts retrieved successfully: chef_id=%d, date=%s",
		chefID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_chef_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/middleware"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/service/bookings"
)

const (
	msgInvalidChefID      = "ID de chef inválido"
	msgInvalidQueryParams = "parâmetros de consulta inválidos"
	msgMissingUserID      = "usuário não autenticado"
	msgForbidden          = "acesso negado"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/chefs/{chefId}/bookings
// Query параметры: date (YYYY-MM-DD), shift, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем chefId из URL
	vars := mux.Vars(r)
	chefIDStr := vars["chefId"]

	chefID, err := strconv.ParseInt(chefIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /chefs/{chefId}/bookings - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /chefs/{chefId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Формируем запрос к сервису из query параметров
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		chefID,
		userID,
		query.Get("date"),
		query.Get("shift"),
		query.Get("status"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /chefs/{chefId}/bookings - Invalid query params: chef_id=%d, error=%v", chefID, err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	// Получаем бронирования шефа (сервис проверит права доступа)
	result, err := h.service.GetChefBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /chefs/{chefId}/bookings - Access denied: chef_id=%d, user_id=%d", chefID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /chefs/{chefId}/bookings - Invalid filter: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /chefs/{chefId}/bookings - Failed to get bookings: chef_id=%d, error=%v",
				chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chefs/{chefId}/bookings - Bookings retrieved successfully: chef_id=%d, count=%d",
		chefID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

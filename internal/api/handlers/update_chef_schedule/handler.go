package update_chef_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/middleware"
	scheduleService "github.com/chefnasuacasa/CNSC-BookingService/internal/service/schedule"
)

const (
	msgInvalidChefID      = "ID de chef inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "usuário não autenticado"
	msgForbidden          = "acesso negado"
	msgChefNotFound       = "chef não encontrado"
	msgInvalidSchedule    = "agenda inválida"
	msgInvalidTimeRange   = "horário de início posterior ao horário de término"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/chefs/{chefId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем chefId из URL
	vars := mux.Vars(r)
	chefIDStr := vars["chefId"]

	chefID, err := strconv.ParseInt(chefIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /chefs/{chefId}/schedule - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /chefs/{chefId}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /chefs/{chefId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание (сервис проверит права и валидность окон)
	schedule, err := h.service.UpdateSchedule(r.Context(), req.ToServiceRequest(chefID, userID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("PUT /chefs/{chefId}/schedule - Access denied: chef_id=%d, user_id=%d", chefID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleService.ErrChefNotFound):
			h.logger.Warn("PUT /chefs/{chefId}/schedule - Chef not found: chef_id=%d", chefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /chefs/{chefId}/schedule - Invalid time range: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /chefs/{chefId}/schedule - Invalid schedule: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /chefs/{chefId}/schedule - Failed to update schedule: chef_id=%d, error=%v",
				chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /chefs/{chefId}/schedule - Schedule updated successfully: chef_id=%d", chefID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}

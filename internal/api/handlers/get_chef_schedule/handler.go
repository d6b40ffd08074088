package get_chef_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/api/handlers"
)

const (
	msgInvalidChefID = "ID de chef inválido"
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

// Handle GET /api/v1/chefs/{chefId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем chefId из URL
	vars := mux.Vars(r)
	chefIDStr := vars["chefId"]

	chefID, err := strconv.ParseInt(chefIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /chefs/{chefId}/schedule - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	// Получаем расписание (шеф без настроек получает дефолтное)
	schedule, err := h.service.GetSchedule(r.Context(), chefID)
	if err != nil {
		h.logger.Error("GET /chefs/{chefId}/schedule - Failed to get schedule: chef_id=%d, error=%v",
			chefID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chefs/{chefId}/schedule - Schedule retrieved successfully: chef_id=%d", chefID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}

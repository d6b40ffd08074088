package update_chef_schedule

import "github.com/chefnasuacasa/CNSC-BookingService/internal/service/schedule/models"

// UpdateScheduleRequest HTTP request model
// Все 7 дней обязательны
type UpdateScheduleRequest struct {
	Monday    models.DayScheduleRequest `json:"monday"`
	Tuesday   models.DayScheduleRequest `json:"tuesday"`
	Wednesday models.DayScheduleRequest `json:"wednesday"`
	Thursday  models.DayScheduleRequest `json:"thursday"`
	Friday    models.DayScheduleRequest `json:"friday"`
	Saturday  models.DayScheduleRequest `json:"saturday"`
	Sunday    models.DayScheduleRequest `json:"sunday"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(chefID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:    userID,
		ChefID:    chefID,
		Monday:    r.Monday,
		Tuesday:   r.Tuesday,
		Wednesday: r.Wednesday,
		Thursday:  r.Thursday,
		Friday:    r.Friday,
		Saturday:  r.Saturday,
		Sunday:    r.Sunday,
	}
}

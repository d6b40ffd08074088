package profileservice

// Chef модель профиля шефа из ProfileService
type Chef struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	City        string  `json:"city"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"is_available"`
}

// Menu модель меню шефа из ProfileService
type Menu struct {
	ID             int64   `json:"id"`
	ChefID         int64   `json:"chef_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"price_per_person"`
	IsActive       bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package dto

type CreateCityRequestDTO struct {
	Name    string `json:"name" validate:"required" example:"Moscow"`
	Country string `json:"country" validate:"required" example:"Russia"`
}

type CityDTO struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Moscow"`
	Country string `json:"country" example:"Russia"`
}

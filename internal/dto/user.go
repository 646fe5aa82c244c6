package dto

import "github.com/Galina9911/test-api/internal/domain"

type UserDTO struct {
	ID               int     `json:"id" example:"1"`
	Name             string  `json:"name" example:"Alice"`
	City             *int    `json:"city" example:"2"`
	Phone            *string `json:"phone" example:"+7 900 000 00 00"`
	Email            *string `json:"email" example:"alice@example.com"`
	RegistrationDate *string `json:"registration_date" example:"2024-05-01"`
	Balance          *int    `json:"balance" example:"15000"`
}

type CreateUserRequestDTO struct {
	Name             string  `json:"name" validate:"required" example:"Alice"`
	City             *int    `json:"city" example:"2"`
	Phone            *string `json:"phone" example:"+7 900 000 00 00"`
	Email            *string `json:"email" example:"alice@example.com"`
	RegistrationDate *string `json:"registration_date" example:"2024-05-01"`
	Balance          *int    `json:"balance" example:"15000"`
}

type ReplaceUserRequestDTO struct {
	Name             string  `json:"name" validate:"required" example:"Alice"`
	City             *int    `json:"city" validate:"required,gt=0" example:"2"`
	Phone            *string `json:"phone" validate:"required,min=1" example:"+7 900 000 00 00"`
	Email            *string `json:"email" validate:"required,min=1" example:"alice@example.com"`
	RegistrationDate *string `json:"registration_date" validate:"required,min=1" example:"2024-05-01"`
	Balance          *int    `json:"balance" validate:"required" example:"15000"`
}

type PatchUserRequestDTO struct {
	City  *int    `json:"city" example:"3"`
	Phone *string `json:"phone" example:"+7 900 111 22 33"`
}

type UpdateCityRequestDTO struct {
	CityID *int `json:"city_id" validate:"required,gt=0" example:"3"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"User deleted successfully"`
}

func NewUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:               u.ID,
		Name:             u.Name,
		City:             u.CityID,
		Phone:            u.Phone,
		Email:            u.Email,
		RegistrationDate: u.RegistrationDate,
		Balance:          u.Balance,
	}
}

func (r CreateUserRequestDTO) ToDomain() *domain.User {
	return &domain.User{
		Name:             r.Name,
		CityID:           r.City,
		Phone:            r.Phone,
		Email:            r.Email,
		RegistrationDate: r.RegistrationDate,
		Balance:          r.Balance,
	}
}

func (r ReplaceUserRequestDTO) ToDomain(id int) *domain.User {
	return &domain.User{
		ID:               id,
		Name:             r.Name,
		CityID:           r.City,
		Phone:            r.Phone,
		Email:            r.Email,
		RegistrationDate: r.RegistrationDate,
		Balance:          r.Balance,
	}
}

// HasValues reports whether city or phone carries a non-zero value.
func (r PatchUserRequestDTO) HasValues() bool {
	return (r.City != nil && *r.City != 0) || (r.Phone != nil && *r.Phone != "")
}

// ToDomain keeps every supplied field, zero values included. Only null or
// absent fields keep the stored value.
func (r PatchUserRequestDTO) ToDomain() domain.UserPatch {
	return domain.UserPatch{
		CityID: r.City,
		Phone:  r.Phone,
	}
}

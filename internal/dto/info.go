package dto

type CompanyInfoDTO struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	WorkingHours string `json:"working_hours"`
}

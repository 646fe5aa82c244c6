package dto

type TokenRequestDTO struct {
	Role string `json:"role" example:"admin" enums:"admin,user"`
}

type TokenResponseDTO struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

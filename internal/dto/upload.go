package dto

type UploadBase64RequestDTO struct {
	ImageBase64 string `json:"image_base64" validate:"required" example:"data:image/png;base64,iVBORw0KGgo="`
}

type UploadResponseDTO struct {
	Message  string `json:"message" example:"File uploaded successfully"`
	Filename string `json:"filename" example:"2fYp4Bx1cP0Aa1dIuE7Y1vWqk2Z.png"`
}

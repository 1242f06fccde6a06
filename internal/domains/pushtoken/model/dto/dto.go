package dto

type UpdateTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

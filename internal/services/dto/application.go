package dto

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,is-application-status"`
}

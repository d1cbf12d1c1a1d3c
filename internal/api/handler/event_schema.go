package handler

type accountSnapshotRequest struct {
	ID          string `json:"id" validate:"required"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
}

type accountEventRequest struct {
	Type    string                 `json:"type"    validate:"required,oneof=account.created account.deleted"`
	Account accountSnapshotRequest `json:"account" validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

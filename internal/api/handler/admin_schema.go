package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse confirms a completed admin command.
type messageResponse struct {
	Message string `json:"message"`
}

type setRoleRequest struct {
	NewRole string `json:"new_role" validate:"required,oneof=admin editor viewer"`
}

type toggleStatusRequest struct {
	Disabled *bool `json:"disabled" validate:"required"`
}

// userResponse is the listing view of one profile. CreatedAt is RFC3339
// or null when the document carries no timestamp.
type userResponse struct {
	UID         string  `json:"uid"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email,omitempty"`
	AvatarURL   string  `json:"avatar_url,omitempty"`
	Role        string  `json:"role"`
	Disabled    bool    `json:"disabled"`
	CreatedAt   *string `json:"created_at"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

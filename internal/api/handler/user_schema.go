package handler

// updateUserRequest backs the admin user update endpoint. Absent fields are
// left untouched; username and role are immutable once created.
type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

package handler

type createUserRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"      validate:"required,oneof=admin manager tester developer"`
}

// updateUserRequest carries a partial update. Absent fields keep their
// current value; a present password is rehashed.
type updateUserRequest struct {
	Username *string `json:"username,omitempty"  validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty"     validate:"omitempty,email"`
	Password *string `json:"password,omitempty"  validate:"omitempty,min=6"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=admin manager tester developer"`
	IsActive *bool   `json:"is_active,omitempty"`
}

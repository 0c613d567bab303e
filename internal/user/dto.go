package user

// CreateUserDTO is the transport shape for admin user provisioning.
type CreateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// GrantAccessDTO is the transport shape for the module access mutation.
type GrantAccessDTO struct {
	UserID      string `json:"user_id"`
	Module      string `json:"module"`
	AccessLevel string `json:"access_level"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateUserDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	if d.Role == "" {
		return ValidationError{Msg: "role is required"}
	}
	return nil
}

func (d GrantAccessDTO) Validate() error {
	if d.UserID == "" {
		return ValidationError{Msg: "user_id is required"}
	}
	if d.Module == "" {
		return ValidationError{Msg: "module is required"}
	}
	if d.AccessLevel == "" {
		return ValidationError{Msg: "access_level is required"}
	}
	return nil
}

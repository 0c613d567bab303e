package user

import (
	"errors"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/registry"
)

// User is a portal account. ModuleAccess is owned by the user record and is
// only ever mutated through the service's grant path.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         access.Role `json:"role"`
	ModuleAccess access.Map  `json:"module_access"`
}

// SessionView is the minimal identity+role projection embedded in session
// tokens. The full record, including the live access map, always comes from
// the directory, never from the token.
type SessionView struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  access.Role `json:"role"`
}

func (u *User) SessionView() SessionView {
	return SessionView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Clone returns a deep copy so callers can never reach into the directory's
// backing store through a shared map.
func (u *User) Clone() *User {
	cp := *u
	cp.ModuleAccess = make(access.Map, len(u.ModuleAccess))
	for key, level := range u.ModuleAccess {
		cp.ModuleAccess[key] = level
	}
	return &cp
}

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("user email already exists")
)

// Directory is the live user store consulted on every request. The core
// consumes these signatures; it does not own persistence.
type Directory interface {
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	Create(name, email, passwordHash string, role access.Role, moduleAccess access.Map) (*User, error)
	ListAll() ([]*User, error)
	SetModuleAccess(userID string, module registry.Key, level access.Level) (*User, error)
}

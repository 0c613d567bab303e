package user

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/registry"
)

// InMemoryDirectory keeps the whole user list in process memory. Every
// request reads it and only create/grant write it, so a single RWMutex
// around the slice is enough.
type InMemoryDirectory struct {
	mu    sync.RWMutex
	users []*User
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{}
}

// SeedSampleUsers provisions the built-in demo accounts. Passwords are
// bcrypt-hashed at seed time so nothing plaintext survives startup.
func SeedSampleUsers(cost int) (*InMemoryDirectory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sample123"), cost)
	if err != nil {
		return nil, err
	}

	dir := NewInMemoryDirectory()
	seeds := []struct {
		id, name, email string
		role            access.Role
	}{
		{"u_jake", "Jake McKinney", "jake@rspur.com", access.RoleSuperAdmin},
		{"u_ian", "Ian", "ian@rspur.com", access.RoleAdmin},
		{"u_ava", "Ava", "ava@rspur.com", access.RoleMember},
	}
	for _, seed := range seeds {
		dir.users = append(dir.users, &User{
			ID:           seed.id,
			Name:         seed.name,
			Email:        seed.email,
			PasswordHash: string(hash),
			Role:         seed.role,
			ModuleAccess: access.DefaultAccess(seed.role),
		})
	}
	return dir, nil
}

func (d *InMemoryDirectory) FindByEmail(email string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, u := range d.users {
		if strings.ToLower(u.Email) == needle {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (d *InMemoryDirectory) FindByID(id string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (d *InMemoryDirectory) Create(name, email, passwordHash string, role access.Role, moduleAccess access.Map) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, u := range d.users {
		if strings.ToLower(u.Email) == needle {
			return nil, ErrEmailTaken
		}
	}

	created := &User{
		ID:           "u_" + uuid.NewString()[:8],
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		Role:         role,
		ModuleAccess: moduleAccess,
	}
	d.users = append(d.users, created)
	return created.Clone(), nil
}

func (d *InMemoryDirectory) ListAll() ([]*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*User, len(d.users))
	for i, u := range d.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (d *InMemoryDirectory) SetModuleAccess(userID string, module registry.Key, level access.Level) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.ID == userID {
			u.ModuleAccess[module] = level
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

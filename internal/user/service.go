package user

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rspur/sampleportal/internal"
	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/core/events"
	"github.com/rspur/sampleportal/internal/registry"
)

type ServiceAPI interface {
	List() ([]*User, error)
	Create(ctx context.Context, dto CreateUserDTO) (*User, error)
	GrantAccess(ctx context.Context, actor *User, dto GrantAccessDTO) (*User, error)
}

// Service owns every mutation of the user directory. The ModuleAccess map is
// never written by anyone else; grants go through CanGrant before any write
// so the map is never partially updated.
type Service struct {
	directory  Directory
	bus        *events.EventBus
	logger     *slog.Logger
	bcryptCost int
}

func NewService(directory Directory, bus *events.EventBus, logger *slog.Logger, bcryptCost int) *Service {
	return &Service{
		directory:  directory,
		bus:        bus,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) List() ([]*User, error) {
	return s.directory.ListAll()
}

// Create provisions a user with the deterministic role-derived access map.
func (s *Service) Create(ctx context.Context, dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	role, ok := access.ParseRole(dto.Role)
	if !ok {
		return nil, internal.NewValidationError("invalid role", internal.ErrCodeValidationFailed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	created, err := s.directory.Create(dto.Name, dto.Email, string(hash), role, access.DefaultAccess(role))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, internal.ErrUserExists
		}
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "user_id", created.ID, "role", created.Role)
	_ = s.bus.Publish(ctx, events.UserCreated(created.ID, created.Email, string(created.Role)))

	return created, nil
}

// GrantAccess sets one (module, level) entry on the target user after both
// grant invariants pass for the acting user's role.
func (s *Service) GrantAccess(ctx context.Context, actor *User, dto GrantAccessDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	module, ok := registry.Parse(dto.Module)
	if !ok {
		return nil, internal.ErrUnknownModule
	}

	level, ok := access.ParseLevel(dto.AccessLevel)
	if !ok {
		return nil, internal.NewValidationError("invalid access level", internal.ErrCodeValidationFailed)
	}

	if _, err := s.directory.FindByID(dto.UserID); err != nil {
		return nil, internal.ErrUserNotFound
	}

	if !access.CanGrant(actor.Role, module, level) {
		s.logger.Warn("grant rejected",
			"actor_id", actor.ID,
			"target_id", dto.UserID,
			"module", module,
			"level", level)
		return nil, internal.ErrGrantForbidden
	}

	updated, err := s.directory.SetModuleAccess(dto.UserID, module, level)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	_ = s.bus.Publish(ctx, events.AccessGranted(actor.ID, updated.ID, string(module), string(level)))

	return updated, nil
}

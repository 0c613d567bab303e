package access

import (
	"errors"

	"github.com/rspur/sampleportal/internal/registry"
)

// Role is the global privilege tier of a user. Exactly one per user.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleMember     Role = "MEMBER"
)

// Level is a per-module access level. The ordering NONE < VIEW < EDIT < ADMIN
// is load-bearing: every "at least" comparison goes through Rank.
type Level string

const (
	LevelNone  Level = "NONE"
	LevelView  Level = "VIEW"
	LevelEdit  Level = "EDIT"
	LevelAdmin Level = "ADMIN"
)

// Map holds one access level per module key, total over the registry.
type Map map[registry.Key]Level

var ErrGrantForbidden = errors.New("module access grant forbidden")

var rank = map[Level]int{
	LevelNone:  0,
	LevelView:  1,
	LevelEdit:  2,
	LevelAdmin: 3,
}

// Rank maps a level onto its position in the total order. Unknown values
// rank as NONE rather than panicking; ParseLevel rejects them earlier.
func Rank(level Level) int {
	return rank[level]
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleMember:
		return Role(raw), true
	}
	return "", false
}

// ParseLevel validates a raw access level string.
func ParseLevel(raw string) (Level, bool) {
	switch Level(raw) {
	case LevelNone, LevelView, LevelEdit, LevelAdmin:
		return Level(raw), true
	}
	return "", false
}

// restrictedModules may only be held above NONE by a SUPER_ADMIN. The admin
// module is gated by its own check in CanGrant, independent of this list.
var restrictedModules = map[registry.Key]bool{
	registry.KeyHealthTracker: true,
	registry.KeyHouseManual:   true,
	registry.KeyFamilyManual:  true,
}

// IsRestricted reports whether the module is on the super-admin-only list.
func IsRestricted(module registry.Key) bool {
	return restrictedModules[module]
}

// CanAccess answers "may this role/access-map combination use module at the
// given minimum level". SUPER_ADMIN satisfies every check unconditionally.
// A key absent from the map counts as NONE.
func CanAccess(role Role, moduleAccess Map, module registry.Key, minimum Level) bool {
	if role == RoleSuperAdmin {
		return true
	}
	current, ok := moduleAccess[module]
	if !ok {
		current = LevelNone
	}
	return Rank(current) >= Rank(minimum)
}

// CanGrant governs the admin-panel mutation path. Both invariants must hold:
// restricted modules and the admin module itself can only be raised above
// NONE by a SUPER_ADMIN actor. Revoking (setting NONE) is always allowed.
func CanGrant(actor Role, module registry.Key, newLevel Level) bool {
	if newLevel == LevelNone || actor == RoleSuperAdmin {
		return true
	}
	if module == registry.KeyAdmin {
		return false
	}
	if restrictedModules[module] {
		return false
	}
	return true
}

// memberDeniedModules are zeroed in the MEMBER default map on top of the
// restricted list: personal/financial modules members never start with.
var memberDeniedModules = []registry.Key{
	registry.KeyAssets,
	registry.KeyAdmin,
	registry.KeyHealthTracker,
	registry.KeyHouseManual,
	registry.KeyFamilyManual,
	registry.KeyAutomationEngine,
	registry.KeyAppfolioDashboard,
	registry.KeyTaxInsurance,
	registry.KeyLendingCapital,
}

var adminDeniedModules = []registry.Key{
	registry.KeyAssets,
	registry.KeyAdmin,
	registry.KeyHealthTracker,
	registry.KeyHouseManual,
	registry.KeyFamilyManual,
}

// DefaultAccess derives the initial access map for a freshly provisioned
// user from their role. The result is total over the registry.
func DefaultAccess(role Role) Map {
	switch role {
	case RoleSuperAdmin:
		return buildMap(LevelAdmin, nil)
	case RoleAdmin:
		return buildMap(LevelEdit, adminDeniedModules)
	default:
		return buildMap(LevelView, memberDeniedModules)
	}
}

func buildMap(defaultLevel Level, denied []registry.Key) Map {
	m := make(Map, len(registry.Registry))
	for _, key := range registry.Keys() {
		m[key] = defaultLevel
	}
	for _, key := range denied {
		m[key] = LevelNone
	}
	return m
}

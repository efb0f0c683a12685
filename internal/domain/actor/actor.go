package actor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank below everything.
func (r Role) AtLeast(min Role) bool {
	userLevel, userExists := roleHierarchy[r]
	minLevel, minExists := roleHierarchy[min]
	return userExists && minExists && userLevel >= minLevel
}

// Actor is the already-authenticated caller. The engine trusts it and never re-authenticates.
type Actor struct {
	ID         uuid.UUID
	Role       Role
	PropertyID uuid.UUID
}

func (a Actor) CanOverrideUnavailable() bool {
	return a.Role.AtLeast(RoleAdmin)
}

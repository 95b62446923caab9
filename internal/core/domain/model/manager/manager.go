package manager

import (
	"errors"
	"strings"

	"resale/internal/core/domain/model/kernel"
)

// ErrManagerIsNotConstructed is returned when a Manager bypassed NewManager.
var ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager")

// Role classifies staff accounts. Only manager and admin accounts are
// eligible for order assignment.
type Role string

const (
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
	RoleOther   Role = "other"
)

// NormalizeRole maps raw role input onto the known set, classifying anything
// unrecognized as RoleOther.
func NormalizeRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleManager:
		return RoleManager
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleOther
	}
}

// Manager is a human operator who can be assigned to orders. The entity is
// owned by the identity/staffing domain and read-only to the orchestration
// core.
type Manager struct {
	id     kernel.UUID
	name   string
	role   Role
	active bool

	isConstructed bool
}

// NewManager creates a manager entity from staffing data. The raw role is
// normalized.
func NewManager(id kernel.UUID, name string, rawRole string, active bool) (*Manager, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		id:            id,
		name:          name,
		role:          NormalizeRole(rawRole),
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the manager was built through NewManager.
func (m *Manager) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManagerIsNotConstructed
	}
	return nil
}

// IsEqual compares managers by identity.
func (m *Manager) IsEqual(other *Manager) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the manager's unique identifier.
func (m *Manager) ID() kernel.UUID {
	return m.id
}

// Name returns the manager's display name.
func (m *Manager) Name() string {
	return m.name
}

// Role returns the normalized staff role.
func (m *Manager) Role() Role {
	return m.role
}

// Active reports whether the account is active.
func (m *Manager) Active() bool {
	return m.active
}

// Package managerrepo reads the manager pool from the shared users table.
// The table is owned by the accounts service; this adapter never writes it.
package managerrepo

import (
	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/manager"

	"github.com/google/uuid"
)

// UserDTO represents a row of the users table. Only the columns the
// autopilot needs are mapped.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   string `gorm:"index"`
	Active bool   `gorm:"index"`
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// toDomain converts a user row to a manager entity.
func toDomain(dto UserDTO) (*manager.Manager, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return manager.NewManager(id, dto.Name, dto.Role, dto.Active)
}

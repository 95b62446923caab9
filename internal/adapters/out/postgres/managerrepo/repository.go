package managerrepo

import (
	"context"

	"resale/internal/core/domain/model/manager"

	"gorm.io/gorm"
)

// GormManagerRepository implements ports.ManagerRepository using GORM.
type GormManagerRepository struct {
	db *gorm.DB
}

// NewGormManagerRepository creates a new GORM manager repository.
func NewGormManagerRepository(db *gorm.DB) *GormManagerRepository {
	return &GormManagerRepository{db: db}
}

// GetAllActive retrieves every active account eligible for assignment.
// Role preference between managers and admins is resolved by the domain,
// not here: the query only narrows the candidate set.
func (r *GormManagerRepository) GetAllActive(ctx context.Context) ([]*manager.Manager, error) {
	var dtos []UserDTO

	err := r.db.WithContext(ctx).
		Where("active = ? AND role IN ?", true, []string{
			string(manager.RoleManager),
			string(manager.RoleAdmin),
		}).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	managers := make([]*manager.Manager, 0, len(dtos))
	for _, dto := range dtos {
		m, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		managers = append(managers, m)
	}

	return managers, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/rosterhub/excelsync/internal/domain/roster"
	"github.com/rosterhub/excelsync/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID int64) (domain.Group, error) {
	var row models.Group

	err := r.db.WithContext(ctx).First(&row, "id = ?", groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Group{}, domain.ErrGroupNotFound
		}
		return domain.Group{}, fmt.Errorf("get group by id: %w", err)
	}

	return domain.Group{
		ID:        row.ID,
		Name:      row.Name,
		CreatedBy: row.CreatedBy,
	}, nil
}

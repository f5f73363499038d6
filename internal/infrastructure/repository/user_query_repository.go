package repository

import (
	"context"
	"fmt"

	domain "github.com/rosterhub/excelsync/internal/domain/roster"
	"github.com/rosterhub/excelsync/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type UserQueryRepository struct {
	db *gorm.DB
}

func NewUserQueryRepository(db *gorm.DB) *UserQueryRepository {
	return &UserQueryRepository{db: db}
}

// DistinctActiveGroupIDs returns the distinct non-null group ids
// referenced by users whose soft-delete flag is unset.
func (r *UserQueryRepository) DistinctActiveGroupIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("is_deleted = ? AND group_id IS NOT NULL", false).
		Distinct("group_id").
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("distinct active group ids: %w", err)
	}

	return ids, nil
}

// ActiveByGroup returns the active users of one group in storage
// iteration order.
func (r *UserQueryRepository) ActiveByGroup(ctx context.Context, groupID int64) ([]domain.User, error) {
	var rows []models.User

	err := r.db.WithContext(ctx).
		Where("group_id = ? AND is_deleted = ?", groupID, false).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("active users by group %d: %w", groupID, err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row))
	}

	return users, nil
}

func toDomainUser(row models.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		GroupID:      row.GroupID,
		CreatedBy:    row.CreatedBy,
		CreatedDate:  row.CreatedDate,
		ModifiedBy:   row.ModifiedBy,
		ModifiedDate: row.ModifiedDate,
		IsDeleted:    row.IsDeleted,
	}
}

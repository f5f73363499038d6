package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	domain "github.com/rosterhub/excelsync/internal/domain/roster"
	"github.com/rosterhub/excelsync/internal/infrastructure/db/models"
	"github.com/rosterhub/excelsync/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string, groupID *int64, deleted bool) {
	t.Helper()

	err := db.Create(&models.User{
		ID:          uuid.NewString(),
		Name:        "user " + email,
		Email:       email,
		GroupID:     groupID,
		CreatedBy:   "seed",
		CreatedDate: time.Now(),
		IsDeleted:   deleted,
	}).Error
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestUserQueryRepositoryIntegration(t *testing.T) {
	db, _ := setupDB(t)
	ctx := context.Background()

	seedUser(t, db, "a@x.com", int64Ptr(3), false)
	seedUser(t, db, "b@x.com", int64Ptr(3), false)
	seedUser(t, db, "c@x.com", int64Ptr(5), false)
	seedUser(t, db, "deleted@x.com", int64Ptr(7), true)
	seedUser(t, db, "nogroup@x.com", nil, false)

	repo := repository.NewUserQueryRepository(db)

	ids, err := repo.DistinctActiveGroupIDs(ctx)
	if err != nil {
		t.Fatalf("distinct group ids: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected group ids {3,5}, got %v", ids)
	}
	for _, id := range ids {
		if id != 3 && id != 5 {
			t.Fatalf("unexpected group id %d in %v", id, ids)
		}
	}

	users, err := repo.ActiveByGroup(ctx, 3)
	if err != nil {
		t.Fatalf("active by group: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users in group 3, got %d", len(users))
	}
	for _, u := range users {
		if u.IsDeleted {
			t.Fatalf("soft-deleted user leaked into export query: %+v", u)
		}
	}
}

func TestGroupRepositoryIntegration(t *testing.T) {
	db, _ := setupDB(t)
	ctx := context.Background()

	if err := db.Create(&models.Group{ID: 3, Name: "Engineering", CreatedBy: "admin"}).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}

	repo := repository.NewGroupRepository(db)

	group, err := repo.GetByID(ctx, 3)
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	if group.Name != "Engineering" || group.CreatedBy != "admin" {
		t.Fatalf("unexpected group: %+v", group)
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

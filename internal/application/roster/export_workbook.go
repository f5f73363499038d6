package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	domain "github.com/rosterhub/excelsync/internal/domain/roster"
)

type ExportWorkbookOutput struct {
	Workbook domain.Workbook
}

type ExportWorkbook interface {
	Execute(ctx context.Context) (ExportWorkbookOutput, error)
}

type exportUserSource interface {
	DistinctActiveGroupIDs(ctx context.Context) ([]int64, error)
	ActiveByGroup(ctx context.Context, groupID int64) ([]domain.User, error)
}

type exportGroupSource interface {
	GetByID(ctx context.Context, groupID int64) (domain.Group, error)
}

type exportWorkbook struct {
	users  exportUserSource
	groups exportGroupSource
	now    func() time.Time
}

func NewExportWorkbook(users exportUserSource, groups exportGroupSource, now func() time.Time) ExportWorkbook {
	if now == nil {
		now = time.Now
	}
	return &exportWorkbook{users: users, groups: groups, now: now}
}

// Execute builds one sheet per distinct group referenced by active
// users. A group id with no matching group record is skipped; any
// storage error aborts the whole export.
func (uc *exportWorkbook) Execute(ctx context.Context) (ExportWorkbookOutput, error) {
	groupIDs, err := uc.users.DistinctActiveGroupIDs(ctx)
	if err != nil {
		return ExportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrExportWorkbook, err)
	}

	// Sheet order is not a correctness contract; sorting keeps the
	// workbook deterministic.
	sort.Slice(groupIDs, func(i, j int) bool { return groupIDs[i] < groupIDs[j] })

	workbook := domain.Workbook{}
	for _, groupID := range groupIDs {
		group, err := uc.groups.GetByID(ctx, groupID)
		if err != nil {
			if errors.Is(err, domain.ErrGroupNotFound) {
				continue
			}
			return ExportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrExportWorkbook, err)
		}

		users, err := uc.users.ActiveByGroup(ctx, groupID)
		if err != nil {
			return ExportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrExportWorkbook, err)
		}

		workbook.Sheets = append(workbook.Sheets, domain.Sheet{
			Name:       group.Name,
			GroupOwner: group.CreatedBy,
			Date:       uc.now(),
			Users:      users,
		})
	}

	return ExportWorkbookOutput{Workbook: workbook}, nil
}

package roster

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/rosterhub/excelsync/internal/domain/roster"
)

const (
	colName = iota
	colEmail
	colCreatedBy
	colGroupID
)

type ImportWorkbookInput struct {
	Path string
}

type ImportWorkbookOutput struct {
	ImportedCount int
	UpdatedCount  int
	SkippedCount  int
}

type ImportWorkbook interface {
	Execute(ctx context.Context, in ImportWorkbookInput) (ImportWorkbookOutput, error)
}

type workbookRowReader interface {
	ReadRows(ctx context.Context, path string) ([][]string, error)
}

type importWorkbook struct {
	reader workbookRowReader
	store  domain.UserBatchStore
	policy UpdatePolicy
	now    func() time.Time
}

func NewImportWorkbook(reader workbookRowReader, store domain.UserBatchStore, policy UpdatePolicy, now func() time.Time) ImportWorkbook {
	if policy == "" {
		policy = UpdatePolicyRefreshCreated
	}
	if now == nil {
		now = time.Now
	}
	return &importWorkbook{reader: reader, store: store, policy: policy, now: now}
}

// Execute walks the first sheet of the uploaded workbook, row 2
// through the last populated row, and upserts users keyed by email.
// Malformed rows are skipped and counted; valid rows are staged in a
// single storage batch that commits at the end, so a storage failure
// leaves the database untouched.
func (uc *importWorkbook) Execute(ctx context.Context, in ImportWorkbookInput) (ImportWorkbookOutput, error) {
	rows, err := uc.reader.ReadRows(ctx, in.Path)
	if err != nil {
		return ImportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrReadWorkbook, err)
	}
	if len(rows) <= 1 {
		return ImportWorkbookOutput{}, nil
	}

	batch, err := uc.store.Begin(ctx)
	if err != nil {
		return ImportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrApplyWorkbook, err)
	}
	defer batch.Rollback(ctx)

	out := ImportWorkbookOutput{}
	for _, cells := range rows[1:] {
		row, ok := parseRow(cells)
		if !ok {
			out.SkippedCount++
			continue
		}

		existing, err := batch.FindByEmail(ctx, row.Email)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			if err := batch.Create(ctx, uc.newUser(row)); err != nil {
				return ImportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrApplyWorkbook, err)
			}
			out.ImportedCount++
		case err != nil:
			return ImportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrApplyWorkbook, err)
		default:
			uc.applyUpdate(existing, row)
			if err := batch.Update(ctx, *existing); err != nil {
				return ImportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrApplyWorkbook, err)
			}
			out.UpdatedCount++
		}
	}

	if err := batch.Commit(ctx); err != nil {
		return ImportWorkbookOutput{}, fmt.Errorf("%w: %v", ErrApplyWorkbook, err)
	}

	return out, nil
}

func (uc *importWorkbook) newUser(row domain.ImportRow) domain.User {
	groupID := row.GroupID
	return domain.User{
		Name:        row.Name,
		Email:       row.Email,
		GroupID:     &groupID,
		CreatedBy:   row.CreatedBy,
		CreatedDate: uc.now(),
		IsDeleted:   false,
	}
}

func (uc *importWorkbook) applyUpdate(existing *domain.User, row domain.ImportRow) {
	groupID := row.GroupID
	existing.Name = row.Name
	existing.GroupID = &groupID

	switch uc.policy {
	case UpdatePolicyTouchModified:
		modifiedBy := row.CreatedBy
		modifiedDate := uc.now()
		existing.ModifiedBy = &modifiedBy
		existing.ModifiedDate = &modifiedDate
	default:
		existing.CreatedBy = row.CreatedBy
		existing.CreatedDate = uc.now()
	}
}

// parseRow reads the four fixed columns. A non-numeric group id cell
// is treated like any other malformed cell: the row is skipped rather
// than aborting the run.
func parseRow(cells []string) (domain.ImportRow, bool) {
	groupID, err := strconv.ParseInt(strings.TrimSpace(cell(cells, colGroupID)), 10, 64)
	if err != nil {
		return domain.ImportRow{}, false
	}

	row, err := domain.NewImportRow(cell(cells, colName), cell(cells, colEmail), cell(cells, colCreatedBy), groupID)
	if err != nil {
		return domain.ImportRow{}, false
	}
	return row, true
}

// cell tolerates ragged rows: trailing empty cells are dropped by the
// codec, so a short slice reads as blank.
func cell(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

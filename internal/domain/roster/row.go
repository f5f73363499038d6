package roster

import "strings"

// ImportRow is one data row of an uploaded sheet, in column order:
// user name, user email, created-by, group id.
type ImportRow struct {
	Name      string
	Email     string
	CreatedBy string
	GroupID   int64
}

// NewImportRow validates the four imported columns. A blank name, email
// or created-by, or a zero group id, marks the row malformed.
func NewImportRow(name, email, createdBy string, groupID int64) (ImportRow, error) {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(createdBy) == "" ||
		groupID == 0 {
		return ImportRow{}, ErrInvalidRow
	}

	return ImportRow{
		Name:      name,
		Email:     email,
		CreatedBy: createdBy,
		GroupID:   groupID,
	}, nil
}

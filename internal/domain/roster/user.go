package roster

import "time"

// User is a roster member. Email is the business key: imports match
// existing records by exact email and never create a second row for it.
type User struct {
	ID           string
	Name         string
	Email        string
	GroupID      *int64
	CreatedBy    string
	CreatedDate  time.Time
	ModifiedBy   *string
	ModifiedDate *time.Time
	IsDeleted    bool
}

// Active reports whether the user should appear in exports and remain
// eligible for import-driven updates.
func (u User) Active() bool {
	return !u.IsDeleted
}

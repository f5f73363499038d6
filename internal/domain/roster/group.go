package roster

// Group is read-only from this service's perspective; it only ever
// labels an export sheet.
type Group struct {
	ID        int64
	Name      string
	CreatedBy string
}

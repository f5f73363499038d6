package roster

import "fmt"

// UpdatePolicy controls what an import does to a user that already
// exists for the incoming email.
type UpdatePolicy string

const (
	// UpdatePolicyRefreshCreated overwrites created-by and refreshes
	// created-date on every update. This reproduces the legacy system
	// exactly and is the default for migration parity.
	UpdatePolicyRefreshCreated UpdatePolicy = "refresh-created"

	// UpdatePolicyTouchModified leaves created-by/created-date
	// untouched and records the import in modified-by/modified-date.
	UpdatePolicyTouchModified UpdatePolicy = "touch-modified"
)

// ParseUpdatePolicy accepts the two known policy names; an empty
// string resolves to the default.
func ParseUpdatePolicy(value string) (UpdatePolicy, error) {
	switch UpdatePolicy(value) {
	case "":
		return UpdatePolicyRefreshCreated, nil
	case UpdatePolicyRefreshCreated, UpdatePolicyTouchModified:
		return UpdatePolicy(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUpdatePolicy, value)
	}
}

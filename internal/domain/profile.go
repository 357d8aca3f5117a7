package domain

import "time"

// Profile is the per-user account row. Credits is a pointer because legacy
// rows can carry NULL; the credit reconciler treats nil the same as zero.
type Profile struct {
	ID        string
	Email     string
	Credits   *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoredCredits returns the raw credit balance, with nil collapsed to zero.
func (p Profile) StoredCredits() int {
	if p.Credits == nil {
		return 0
	}
	return *p.Credits
}

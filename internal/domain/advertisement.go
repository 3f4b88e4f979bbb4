package domain

import "time"

// Advertisement represents a posting created by a user. The owner is set
// exclusively from the authenticated caller at creation time and never
// changes afterwards.
type Advertisement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewAdvertisement creates a new Advertisement owned by the given user.
// The ID is assigned by the store on creation.
// Returns an error if validation fails.
func NewAdvertisement(ownerID int64, title, description string) (*Advertisement, error) {
	now := time.Now().UTC()
	adv := &Advertisement{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := adv.Validate(); err != nil {
		return nil, err
	}

	return adv, nil
}

// Validate checks if the Advertisement has valid data.
// Returns an error if any field fails validation.
func (a *Advertisement) Validate() error {
	if a.Title == "" {
		return ErrEmptyTitle
	}

	if a.Description == "" {
		return ErrEmptyDescription
	}

	if a.OwnerID <= 0 {
		return ErrEmptyOwner
	}

	return nil
}

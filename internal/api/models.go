package api

// Request and response structures for the user and advertisement endpoints.
// Responses intentionally carry only the fields of the original wire
// contract; the password digest never appears in any of them.

// CreateUserRequest defines the payload for the signup endpoint.
type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PatchUserRequest defines the payload for partial user updates. Absent,
// null and explicitly empty fields are excluded from the effective patch.
type PatchUserRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password"`
}

// CreateAdvertisementRequest defines the payload for creating an
// advertisement. The owner is never part of the payload; it comes from the
// authenticated identity.
type CreateAdvertisementRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// PatchAdvertisementRequest defines the payload for partial advertisement
// updates.
type PatchAdvertisementRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UserResponse is the representation of a stored user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CreateUserResponse echoes the accepted signup fields minus the password.
type CreateUserResponse struct {
	Email string `json:"email"`
}

// PatchUserResponse echoes the applied patch fields minus the password.
type PatchUserResponse struct {
	Email *string `json:"email,omitempty"`
}

// AdvertisementResponse is the representation of a stored advertisement.
type AdvertisementResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

// PatchAdvertisementResponse echoes the applied patch fields.
type PatchAdvertisementResponse struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeleteAdvertisementResponse confirms a deletion by identifier.
type DeleteAdvertisementResponse struct {
	Advertisement int64 `json:"advertisement"`
}

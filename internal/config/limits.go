package config

const (
	// MaxItemNameLength is the maximum length for file and folder names.
	// Limited to 255 to provide reasonable UX (names should be short and
	// descriptive).
	MaxItemNameLength = 255

	// MinUsernameLength and MinPasswordLength are the registration
	// minimums enforced at the auth boundary.
	MinUsernameLength = 3
	MinPasswordLength = 6
)

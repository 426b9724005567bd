package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingCredentials indicates that the account username or
	// password is absent from every configuration source.
	ErrMissingCredentials = errors.New("missing telenet credentials")
	// ErrInvalidLanguage indicates a language outside the portal's
	// supported set (en, nl, fr).
	ErrInvalidLanguage = errors.New("invalid portal language")
)

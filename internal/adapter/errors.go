package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCredentials is returned when Telenet rejects the username or
	// password during the login handshake.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrNotAuthenticated is returned when an API call is attempted without
	// an established session, or when the session has expired.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrService is returned when Telenet cannot be reached or answers
	// with an unusable response.
	ErrService = errors.New("telenet service error")

	// ErrBadGateway and ErrGatewayTimeout are the 502/504 specialisations
	// of ErrService; errors.Is(err, ErrService) matches both.
	ErrBadGateway     = fmt.Errorf("%w: bad gateway", ErrService)
	ErrGatewayTimeout = fmt.Errorf("%w: gateway timeout", ErrService)

	// ErrScopeNotGranted is returned by LegacyService when the session was
	// not granted one of the requested service scopes.
	ErrScopeNotGranted = errors.New("service scope not granted")
)

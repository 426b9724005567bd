// SPDX-License-Identifier: Apache-2.0

// Package adapter implements the transport layer for the Telenet web API.
//
// A [Session] owns the authenticated HTTP state: the cookie jar, the
// X-TOKEN-XSRF header mirrored from the TOKEN-XSRF cookie, and the
// browser-mimicking base headers Telenet expects. [Session.Login] runs the
// OpenID handshake; the [OCAPI] methods query the customer API afterwards.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotAuthenticated] for 401/403, [ErrBadGateway]
// for 502).
package adapter

import (
	"context"
	"encoding/json"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ocapi_mock.go -package=mock

// OCAPI is the query surface the data collectors consume. It is implemented
// by [Session]; a mock implementation is generated for collector tests.
type OCAPI interface {
	// LegacyService queries the legacy service endpoint for one or more
	// comma-separated scopes (GET {ocapi_public}/?p=<scopes>). Every
	// requested scope must have been granted to the session at login;
	// otherwise a wrapped [ErrScopeNotGranted] is returned without a
	// request being made.
	LegacyService(ctx context.Context, scopes string) (json.RawMessage, error)

	// Service queries a Netcracker service endpoint
	// (GET {ocapi_public_api}/<service>-service/v<version>/<method>?<params>).
	Service(ctx context.Context, service, method string, version int, params url.Values) (json.RawMessage, error)

	// Fetch retrieves an absolute URL within the session, used for the
	// product spec documents whose full URL is handed out by the API.
	Fetch(ctx context.Context, rawURL string) (json.RawMessage, error)
}

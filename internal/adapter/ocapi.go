package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// LegacyService implements [OCAPI]. It queries the legacy service endpoint
// with one or more comma-separated scopes. Scopes the session was not
// granted at login are refused locally with a wrapped [ErrScopeNotGranted].
func (s *Session) LegacyService(ctx context.Context, scopes string) (json.RawMessage, error) {
	if !s.authenticated {
		return nil, ErrNotAuthenticated
	}

	for _, scope := range strings.Split(scopes, ",") {
		if !slices.Contains(s.scopes, scope) {
			return nil, fmt.Errorf("%w: %s", ErrScopeNotGranted, scope)
		}
	}

	resp, err := s.get(ctx, s.env.OCAPIPublic+"/?p="+scopes)
	if err != nil {
		return nil, fmt.Errorf("legacy service %s: %w", scopes, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Service implements [OCAPI]. It queries a Netcracker service endpoint.
func (s *Session) Service(ctx context.Context, service, method string, version int, params url.Values) (json.RawMessage, error) {
	if !s.authenticated {
		return nil, ErrNotAuthenticated
	}

	endpoint := fmt.Sprintf("%s/%s-service/v%d/%s", s.env.OCAPIPublicAPI, service, version, method)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s service %s: %w", service, method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Fetch implements [OCAPI]. It retrieves an absolute URL within the
// session, used for product spec documents.
func (s *Session) Fetch(ctx context.Context, rawURL string) (json.RawMessage, error) {
	if !s.authenticated {
		return nil, ErrNotAuthenticated
	}

	resp, err := s.get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbogaerts/telenet-go/models"
)

// idTokenClaims asks the OpenID provider to include the Telenet role and
// license claims in the id token, matching what the Mijn Telenet web app
// requests.
const idTokenClaims = `{"id_token":{"http://telenet.be/claims/roles":null,"http://telenet.be/claims/licenses":null}}`

// Login runs the OpenID handshake and establishes the session.
//
// The flow mirrors the web app: probe {ocapi_oauth}/userdetails (a 200
// means the cookie jar already holds a valid session; a 401/403 body
// carries the "{state},{nonce}" pair), follow the authorize redirect to the
// login form, post the credentials, and probe userdetails again.
//
// On success the captured user details are returned and the session is
// marked authenticated. Credential rejections return a wrapped
// [ErrBadCredentials]; anything else unexpected returns a wrapped
// [ErrService].
func (s *Session) Login(ctx context.Context) (models.UserDetails, error) {
	resp, err := s.get(ctx, s.env.OCAPIOAuth+"/userdetails")
	if err != nil {
		return models.UserDetails{}, fmt.Errorf("userdetails probe: %w", err)
	}

	if resp.StatusCode() == http.StatusOK {
		// Session cookies are still valid, no handshake needed.
		return s.captureUserDetails(resp.Body())
	}
	if resp.StatusCode() != http.StatusUnauthorized && resp.StatusCode() != http.StatusForbidden {
		return models.UserDetails{}, fmt.Errorf("%w: http %d while authenticating %s", ErrService, resp.StatusCode(), finalURL(resp))
	}

	state, nonce, err := splitStateNonce(string(resp.Body()))
	if err != nil {
		return models.UserDetails{}, fmt.Errorf("%w: %s did not return state and nonce", ErrService, finalURL(resp))
	}

	query := url.Values{}
	query.Set("client_id", "ocapi")
	query.Set("response_type", "code")
	query.Set("claims", idTokenClaims)
	query.Set("lang", s.language)
	query.Set("state", state)
	query.Set("nonce", nonce)
	query.Set("prompt", "login")

	resp, err = s.get(ctx, s.env.OpenID+"/oauth/authorize?"+query.Encode())
	if err != nil {
		return models.UserDetails{}, fmt.Errorf("authorize request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || !strings.Contains(finalURL(resp), "openid/login") {
		return models.UserDetails{}, fmt.Errorf("%w: authorize did not reach the login form: %s", ErrService, strings.TrimSpace(string(resp.Body())))
	}

	resp, err = s.postForm(ctx, s.env.OpenID+"/login.do", map[string]string{
		"j_username": s.username,
		"j_password": s.password,
		"rememberme": "true",
	})
	if err != nil {
		return models.UserDetails{}, fmt.Errorf("login form submit: %w", err)
	}
	if strings.Contains(finalURL(resp), "authentication_error") {
		return models.UserDetails{}, fmt.Errorf("%w: %s", ErrBadCredentials, strings.TrimSpace(string(resp.Body())))
	}

	resp, err = s.get(ctx, s.env.OCAPIOAuth+"/userdetails")
	if err != nil {
		return models.UserDetails{}, fmt.Errorf("userdetails request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDetails{}, err
	}

	return s.captureUserDetails(resp.Body())
}

// captureUserDetails decodes a userdetails body and installs it as the
// session identity. The scopes are kept on the session and stripped from
// the stored record.
func (s *Session) captureUserDetails(body []byte) (models.UserDetails, error) {
	var details models.UserDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return models.UserDetails{}, fmt.Errorf("%w: decode userdetails: %v", ErrService, err)
	}
	if details.CustomerNumber == "" {
		return models.UserDetails{}, fmt.Errorf("%w: userdetails missing customer number", ErrBadCredentials)
	}

	s.scopes = details.Scopes
	details.Scopes = nil
	s.userDetails = details
	s.authenticated = true

	s.log.Debug().
		Str("customer_number", details.CustomerNumber).
		Str("bss_system", details.BSSSystem).
		Msg("session established")

	return details, nil
}

// splitStateNonce parses the "{state},{nonce}" body the userdetails probe
// answers with for unauthenticated sessions.
func splitStateNonce(body string) (state, nonce string, err error) {
	parts := strings.SplitN(body, ",", 3)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed state/nonce body")
	}
	return parts[0], parts[1], nil
}

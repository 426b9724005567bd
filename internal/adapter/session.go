package adapter

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/internal/utils"
	"github.com/sbogaerts/telenet-go/models"
)

// Telenet serves browser traffic only; requests without these headers are
// rejected by the edge.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/111.0.0.0 Safari/537.36"

const defaultTimeout = 10 * time.Second

// SessionConfig carries everything a [Session] needs to authenticate.
type SessionConfig struct {
	Username    string
	Password    string
	Language    string
	Environment models.Environment
	Timeout     time.Duration
}

// Session is the authenticated transport to the Telenet API. It owns the
// cookie jar and the X-TOKEN-XSRF header and implements [OCAPI].
//
// A Session is single-owner: it keeps mutable handshake state and must not
// be shared between goroutines without external synchronisation.
type Session struct {
	client *utils.HTTPClient

	env      models.Environment
	username string
	password string
	language string

	authenticated bool
	userDetails   models.UserDetails
	scopes        []string

	log *logger.Logger
}

// NewSession builds a Session from cfg. No network I/O happens here; the
// handshake is deferred until [Session.Login].
func NewSession(cfg SessionConfig, log *logger.Logger) *Session {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	sessionLog := &logger.Logger{
		Logger: log.With().Str("trace_id", utils.NewTraceID()).Logger(),
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.Timeout).
		SetHeaders(map[string]string{
			"User-Agent":    userAgent,
			"Referer":       cfg.Environment.Referer,
			"x-alt-referer": cfg.Environment.XAltReferer,
		})

	return &Session{
		client:   client,
		env:      cfg.Environment,
		username: cfg.Username,
		password: cfg.Password,
		language: cfg.Language,
		log:      sessionLog,
	}
}

// Authenticated reports whether a login handshake has completed.
func (s *Session) Authenticated() bool {
	return s.authenticated
}

// UserDetails returns the user record captured at login time, with scopes
// stripped.
func (s *Session) UserDetails() models.UserDetails {
	return s.userDetails
}

// Scopes returns the legacy service scopes granted to this session.
func (s *Session) Scopes() []string {
	return s.scopes
}

func (s *Session) get(ctx context.Context, rawURL string) (*resty.Response, error) {
	s.log.Debug().Str("method", http.MethodGet).Str("url", rawURL).Msg("calling telenet")

	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	return s.finish(resp, err)
}

func (s *Session) postForm(ctx context.Context, rawURL string, form map[string]string) (*resty.Response, error) {
	s.log.Debug().Str("method", http.MethodPost).Str("url", rawURL).Msg("calling telenet")

	resp, err := s.client.R().SetContext(ctx).SetFormData(form).Post(rawURL)
	return s.finish(resp, err)
}

func (s *Session) finish(resp *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return nil, err
	}

	s.syncXSRFHeader()
	s.log.Debug().Int("status", resp.StatusCode()).Str("url", finalURL(resp)).Msg("telenet answered")
	return resp, nil
}

// syncXSRFHeader mirrors the TOKEN-XSRF session cookie into the
// X-TOKEN-XSRF request header. The API rejects state-changing calls whose
// header does not match the cookie.
func (s *Session) syncXSRFHeader() {
	jar := s.client.GetClient().Jar
	if jar == nil {
		return
	}

	// The cookie may be set host-only on the login host instead of the
	// API host, so both are checked; the API host wins when both have it.
	for _, endpoint := range []string{s.env.OpenID, s.env.OCAPI} {
		base, err := url.Parse(endpoint)
		if err != nil {
			continue
		}
		for _, cookie := range jar.Cookies(base) {
			if cookie.Name == "TOKEN-XSRF" {
				s.client.SetHeader("X-TOKEN-XSRF", cookie.Value)
			}
		}
	}
}

// finalURL returns the URL the response actually came from, after any
// redirects. The login handshake branches on it.
func finalURL(resp *resty.Response) string {
	if resp.RawResponse != nil && resp.RawResponse.Request != nil && resp.RawResponse.Request.URL != nil {
		return resp.RawResponse.Request.URL.String()
	}
	return resp.Request.URL
}

// SPDX-License-Identifier: Apache-2.0

// Package telenet is a client for the Telenet "Mijn Telenet" web API.
//
// A [Client] is constructed with the account credentials, authenticates
// with [Client.Login], pulls a full account/usage snapshot with
// [Client.FetchData], and exposes it through [Client.Data]:
//
//	client, err := telenet.NewClient("user@telenet.be", "password", telenet.WithLanguage("nl"))
//	if err != nil { ... }
//	details, err := client.Login(ctx)
//	if err != nil { ... }
//	if err := client.FetchData(ctx); err != nil { ... }
//	snapshot := client.Data()
//
// A Client is single-owner: it keeps session and snapshot state and must
// not be used from multiple goroutines without external synchronisation.
// At most one login or fetch should be in flight at a time.
package telenet

import (
	"context"
	"errors"
	"time"

	"github.com/sbogaerts/telenet-go/internal/adapter"
	"github.com/sbogaerts/telenet-go/internal/collect"
	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/models"
)

// Sentinel errors surfaced by the client; match with [errors.Is].
var (
	// ErrBadCredentials means Telenet rejected the username or password.
	ErrBadCredentials = adapter.ErrBadCredentials

	// ErrNotAuthenticated means the operation needs a successful Login
	// first, or the session has expired.
	ErrNotAuthenticated = adapter.ErrNotAuthenticated

	// ErrService means Telenet could not be reached or answered with an
	// unusable response. ErrBadGateway and ErrGatewayTimeout are its
	// 502/504 specialisations.
	ErrService        = adapter.ErrService
	ErrBadGateway     = adapter.ErrBadGateway
	ErrGatewayTimeout = adapter.ErrGatewayTimeout
)

// Client talks to the Telenet web API on behalf of one account.
type Client struct {
	username string
	password string
	language string
	env      models.Environment
	timeout  time.Duration
	log      *logger.Logger

	session   *adapter.Session
	collector *collect.Collector

	data models.Data
}

// NewClient builds a Client for the given account. It stores the
// credentials and options and performs no network I/O; the handshake runs
// on the first [Client.Login].
//
// An unknown language silently falls back to "en", matching the portal's
// behaviour. Empty credentials are the only construction error.
func NewClient(username, password string, opts ...Option) (*Client, error) {
	if username == "" || password == "" {
		return nil, errors.New("telenet: username and password are required")
	}

	c := &Client{
		username: username,
		password: password,
		language: models.DefaultLanguage,
		env:      models.DefaultEnvironment(),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.session = adapter.NewSession(adapter.SessionConfig{
		Username:    c.username,
		Password:    c.password,
		Language:    c.language,
		Environment: c.env,
		Timeout:     c.timeout,
	}, c.log)
	c.collector = collect.New(c.session, c.language, c.log)

	return c, nil
}

// Login authenticates against the Telenet API and returns the user
// details, including the account holder's first and last name. It must
// complete successfully before [Client.FetchData] can be used.
//
// Rejected credentials return a wrapped [ErrBadCredentials]; transport and
// service problems return a wrapped [ErrService].
func (c *Client) Login(ctx context.Context) (models.UserDetails, error) {
	return c.session.Login(ctx)
}

// FetchData pulls a full account/usage snapshot and stores it on the
// client. Each call rebuilds the snapshot from scratch; a second fetch
// overwrites the first rather than merging with it.
//
// Calling FetchData before a successful Login returns
// [ErrNotAuthenticated]. On any error the previously stored snapshot is
// left untouched.
func (c *Client) FetchData(ctx context.Context) error {
	if !c.session.Authenticated() {
		return ErrNotAuthenticated
	}

	data, err := c.collector.Collect(ctx, c.session.UserDetails())
	if err != nil {
		return err
	}

	c.data = data
	return nil
}

// Data returns the most recently fetched snapshot. Before the first
// successful [Client.FetchData] it returns the zero value.
func (c *Client) Data() models.Data {
	return c.data
}

// Language returns the response language the client was configured with.
func (c *Client) Language() string {
	return c.language
}

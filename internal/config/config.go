// SPDX-License-Identifier: Apache-2.0

// Package config loads the telenetctl configuration by merging environment
// variables, command-line flags, and an optional JSON file.
package config

import (
	"time"
)

// envPrefix is prepended to every environment variable lookup, so the
// account username is read from TELENET_ACCOUNT_USERNAME and so on.
const envPrefix = "TELENET_"

// StructuredConfig is the top-level configuration container for telenetctl.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
type StructuredConfig struct {
	// Account holds the Mijn Telenet credentials and display language.
	Account Account `envPrefix:"ACCOUNT_"`

	// HTTP holds transport settings and base-URL overrides for the
	// Telenet API endpoints.
	HTTP HTTP `envPrefix:"HTTP_"`

	// Output controls how the collected snapshot is presented.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the TELENET_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Account holds the Mijn Telenet login credentials.
type Account struct {
	// Username is the Mijn Telenet account name.
	// Env: TELENET_ACCOUNT_USERNAME
	Username string `env:"USERNAME"`

	// Password is the Mijn Telenet account password.
	// Env: TELENET_ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`

	// Language selects the portal locale: "en", "nl", or "fr".
	// Env: TELENET_ACCOUNT_LANGUAGE
	Language string `env:"LANGUAGE"`
}

// HTTP holds transport settings for the API client.
type HTTP struct {
	// Timeout bounds every single request to the Telenet API
	// (e.g. "10s", "1m").
	// Env: TELENET_HTTP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// APIBase overrides the base URL of the OCAPI endpoints. Used for
	// testing against a staging environment; empty means production.
	// Env: TELENET_HTTP_API_BASE
	APIBase string `env:"API_BASE"`

	// LoginBase overrides the base URL of the OpenID login endpoints.
	// Env: TELENET_HTTP_LOGIN_BASE
	LoginBase string `env:"LOGIN_BASE"`
}

// Output controls presentation of the collected data.
type Output struct {
	// JSON dumps the snapshot to stdout as JSON instead of starting the
	// interactive terminal UI.
	// Env: TELENET_OUTPUT_JSON
	JSON bool `env:"JSON"`
}

// GetConfig loads, merges, and validates the telenetctl configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

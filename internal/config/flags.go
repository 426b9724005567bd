package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-u Mijn Telenet username
//	-p Mijn Telenet password
//	-l portal language (en, nl, fr)
//	-timeout per-request timeout (e.g., "10s", "1m")
//	-api-base OCAPI base URL override
//	-login-base OpenID base URL override
//	-json dump the snapshot as JSON instead of starting the TUI
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var username string
	var password string
	var language string
	var timeout time.Duration
	var apiBase string
	var loginBase string
	var jsonOutput bool
	var jsonConfigPath string

	flag.StringVar(&username, "u", "", "Mijn Telenet username")
	flag.StringVar(&password, "p", "", "Mijn Telenet password")
	flag.StringVar(&language, "l", "", "Portal language (en, nl, fr)")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (e.g., 10s, 1m)")
	flag.StringVar(&apiBase, "api-base", "", "OCAPI base URL override")
	flag.StringVar(&loginBase, "login-base", "", "OpenID base URL override")
	flag.BoolVar(&jsonOutput, "json", false, "Dump snapshot as JSON instead of the TUI")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Account: Account{
			Username: username,
			Password: password,
			Language: language,
		},
		HTTP: HTTP{
			Timeout:   timeout,
			APIBase:   apiBase,
			LoginBase: loginBase,
		},
		Output: Output{
			JSON: jsonOutput,
		},
		JSONFilePath: jsonConfigPath,
	}
}

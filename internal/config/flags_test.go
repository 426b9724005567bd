package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseFlags tests flag parsing with various argument combinations
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name: "no flags",
			args: []string{},
			expected: &StructuredConfig{
				Account:      Account{},
				HTTP:         HTTP{},
				Output:       Output{},
				JSONFilePath: "",
			},
		},
		{
			name: "credentials and language",
			args: []string{"-u", "jan.peeters", "-p", "secret", "-l", "fr"},
			expected: &StructuredConfig{
				Account: Account{
					Username: "jan.peeters",
					Password: "secret",
					Language: "fr",
				},
			},
		},
		{
			name: "http overrides",
			args: []string{
				"-timeout", "45s",
				"-api-base", "https://api.stg.telenet.be",
				"-login-base", "https://login.stg.telenet.be",
			},
			expected: &StructuredConfig{
				HTTP: HTTP{
					Timeout:   45 * time.Second,
					APIBase:   "https://api.stg.telenet.be",
					LoginBase: "https://login.stg.telenet.be",
				},
			},
		},
		{
			name: "json output mode",
			args: []string{"-json"},
			expected: &StructuredConfig{
				Output: Output{JSON: true},
			},
		},
		{
			name: "config file short flag",
			args: []string{"-c", "/etc/telenet.json"},
			expected: &StructuredConfig{
				JSONFilePath: "/etc/telenet.json",
			},
		},
		{
			name: "config file long flag",
			args: []string{"-config", "/etc/telenet.json"},
			expected: &StructuredConfig{
				JSONFilePath: "/etc/telenet.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()

			assert.Equal(t, tt.expected, cfg)
		})
	}
}

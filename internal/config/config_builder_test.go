package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func resetFlags(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	oldArgs := os.Args
	os.Args = []string{"cmd"}
	t.Cleanup(func() { os.Args = oldArgs })
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_MergePriority verifies that the first appended source wins for
// fields it sets, and later sources only fill remaining gaps.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Account: Account{Username: "from-env", Password: "pw"}},
		&StructuredConfig{
			Account: Account{Username: "from-flags", Language: "fr"},
			HTTP:    HTTP{Timeout: 10 * time.Second},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Account.Username)
	assert.Equal(t, "pw", cfg.Account.Password)
	assert.Equal(t, "fr", cfg.Account.Language)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_ValidationFailures covers the credential and language invariants.
func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name:    "missing username",
			account: Account{Password: "pw"},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "missing password",
			account: Account{Username: "jan"},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "unsupported language",
			account: Account{Username: "jan", Password: "pw", Language: "de"},
			wantErr: ErrInvalidLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{Account: tt.account})

			_, err := b.build()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── GetConfig ─────────────────────────────────────────────────────────────────

// TestGetConfig_EnvOverJSON verifies the full pipeline: env values win over
// the JSON file, and the file fills what env left empty.
func TestGetConfig_EnvOverJSON(t *testing.T) {
	resetFlags(t)
	path := writeConfigFile(t, `{
		"account": {"username": "from-json", "password": "json-pw", "language": "fr"},
		"http": {"timeout": "25s"}
	}`)
	t.Setenv("TELENET_CONFIG", path)
	t.Setenv("TELENET_ACCOUNT_USERNAME", "from-env")

	cfg, err := GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Account.Username)
	assert.Equal(t, "json-pw", cfg.Account.Password)
	assert.Equal(t, "fr", cfg.Account.Language)
	assert.Equal(t, 25*time.Second, cfg.HTTP.Timeout)
}

func TestGetConfig_MissingCredentials(t *testing.T) {
	resetFlags(t)

	_, err := GetConfig()

	assert.ErrorIs(t, err, ErrMissingCredentials)
}

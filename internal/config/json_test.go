package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"account": {
			"username": "jan.peeters",
			"password": "secret",
			"language": "nl"
		},
		"http": {
			"timeout": "20s",
			"api_base": "https://api.stg.telenet.be",
			"login_base": "https://login.stg.telenet.be"
		},
		"output": {
			"json": true
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "jan.peeters", cfg.Account.Username)
	assert.Equal(t, "secret", cfg.Account.Password)
	assert.Equal(t, "nl", cfg.Account.Language)
	assert.Equal(t, 20*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "https://api.stg.telenet.be", cfg.HTTP.APIBase)
	assert.Equal(t, "https://login.stg.telenet.be", cfg.HTTP.LoginBase)
	assert.True(t, cfg.Output.JSON)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"account": `)

	_, err := parseJSON(path)

	assert.Error(t, err)
}

// TestDuration_UnmarshalJSON tests deserialization of both string and
// numeric duration representations.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "seconds string", input: `"45s"`, expected: 45 * time.Second},
		{name: "nanosecond number", input: `1000000000`, expected: time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}

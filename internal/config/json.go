package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Account struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Language string `json:"language"`
	} `json:"account,omitempty"`

	HTTP struct {
		Timeout   Duration `json:"timeout"`
		APIBase   string   `json:"api_base"`
		LoginBase string   `json:"login_base"`
	} `json:"http,omitempty"`

	Output struct {
		JSON bool `json:"json"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Account: Account{
			Username: jsonCfg.Account.Username,
			Password: jsonCfg.Account.Password,
			Language: jsonCfg.Account.Language,
		},
		HTTP: HTTP{
			Timeout:   time.Duration(jsonCfg.HTTP.Timeout),
			APIBase:   jsonCfg.HTTP.APIBase,
			LoginBase: jsonCfg.HTTP.LoginBase,
		},
		Output: Output{
			JSON: jsonCfg.Output.JSON,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

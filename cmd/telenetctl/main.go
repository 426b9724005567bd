package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	telenet "github.com/sbogaerts/telenet-go"
	"github.com/sbogaerts/telenet-go/internal/config"
	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/internal/tui"
	"github.com/sbogaerts/telenet-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "telenetctl: %v\n", err)
		os.Exit(1)
	}

	if cfg.Output.JSON {
		printBuildInfo()
		log := logger.NewLogger("telenetctl")
		runJSON(cfg, log)
		return
	}

	// stdout belongs to the TUI, logs go to a file next to the binary
	log := logger.NewFileLogger("telenetctl")
	runTUI(cfg, log)
}

func runJSON(cfg *config.StructuredConfig, log *logger.Logger) {
	client, err := newClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx := context.Background()
	if _, err := client.Login(ctx); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}
	if err := client.FetchData(ctx); err != nil {
		log.Fatal().Err(err).Msg("fetch failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(client.Data()); err != nil {
		log.Fatal().Err(err).Msg("encode snapshot")
	}
}

func runTUI(cfg *config.StructuredConfig, log *logger.Logger) {
	client, err := newClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ui := tui.New(client, log)
	if err := ui.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("session error")
	}
}

func newClient(cfg *config.StructuredConfig, log *logger.Logger) (*telenet.Client, error) {
	opts := []telenet.Option{
		telenet.WithLogger(log.Logger),
	}
	if cfg.Account.Language != "" {
		opts = append(opts, telenet.WithLanguage(cfg.Account.Language))
	}
	if cfg.HTTP.Timeout > 0 {
		opts = append(opts, telenet.WithTimeout(cfg.HTTP.Timeout))
	}
	if env, ok := environmentFromConfig(cfg.HTTP); ok {
		opts = append(opts, telenet.WithEnvironment(env))
	}

	return telenet.NewClient(cfg.Account.Username, cfg.Account.Password, opts...)
}

// environmentFromConfig derives endpoint URLs from base-URL overrides.
// With no overrides the client keeps its production defaults.
func environmentFromConfig(httpCfg config.HTTP) (models.Environment, bool) {
	if httpCfg.APIBase == "" && httpCfg.LoginBase == "" {
		return models.Environment{}, false
	}

	env := models.DefaultEnvironment()
	if base := httpCfg.APIBase; base != "" {
		env.OCAPI = base + "/ocapi"
		env.OCAPIPublic = base + "/ocapi/public"
		env.OCAPIPublicAPI = base + "/ocapi/public/api"
		env.OCAPIOAuth = base + "/ocapi/oauth"
	}
	if base := httpCfg.LoginBase; base != "" {
		env.OpenID = base + "/openid"
	}
	return env, true
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}

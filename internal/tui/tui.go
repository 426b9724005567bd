// Package tui is the interactive terminal front-end of telenetctl: it logs
// in, fetches a snapshot, and renders product usage, devices, and open
// bills.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/models"
)

// Client is the slice of telenet.Client the TUI drives.
type Client interface {
	Login(ctx context.Context) (models.UserDetails, error)
	FetchData(ctx context.Context) error
	Data() models.Data
}

type TUI struct {
	client Client
	log    *logger.Logger
}

func New(client Client, log *logger.Logger) *TUI {
	return &TUI{client: client, log: log.GetChildLogger("tui")}
}

// Run drives the full interactive session and blocks until the user quits
// or a fatal error is dismissed.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.client)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		return nil
	}
	if result.err != nil {
		t.log.Error().Err(result.err).Msg("session ended with error")
	}
	return result.err
}

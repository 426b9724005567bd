package tui

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	telenet "github.com/sbogaerts/telenet-go"
)

type screen int

const (
	screenLoading screen = iota
	screenOverview
	screenDetail
)

type appModel struct {
	ctx    context.Context
	client Client

	currentScreen screen
	loading       loadingModel
	overview      overviewModel
	detail        detailModel

	refreshing   bool
	err          error
	fatal        bool
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, client Client) appModel {
	return appModel{
		ctx:           ctx,
		client:        client,
		currentScreen: screenLoading,
		loading:       newLoadingModel(),
		overview:      newOverviewModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, m.cmdLogin())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
				if m.fatal {
					return m, tea.Quit
				}
			}
			return m, nil
		}
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case loginDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.fatal = true
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.loading.phase = "Fetching data..."
		return m, m.cmdFetch()
	case snapshotMsg:
		m.refreshing = false
		m.overview.status = ""
		if msg.err != nil {
			m.err = msg.err
			m.fatal = m.currentScreen == screenLoading
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.err = nil
		m.overview.setData(msg.data)
		if m.currentScreen == screenDetail {
			// keep the open detail in sync with the fresh snapshot
			m.detail.product = msg.data.Products[m.detail.key]
			m.detail.devices = msg.data.Devices
		} else {
			m.currentScreen = screenOverview
		}
		return m, nil
	case copiedMsg:
		m.setStatus("Copied!")
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case spinner.TickMsg:
		if m.currentScreen == screenLoading {
			var cmd tea.Cmd
			m.loading.spinner, cmd = m.loading.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenOverview:
		return m.updateOverview(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLoading:
		body = m.loading.View()
	case screenOverview:
		body = m.overview.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateOverview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.overview.idx > 0 {
			m.overview.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.overview.idx < len(m.overview.keys)-1 {
			m.overview.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		productKey, product, ok := m.overview.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{key: productKey, product: product, devices: m.overview.data.Devices}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.refresh):
		return m.startRefresh()
	case key.Matches(keyMsg, keys.copyWifi):
		return m, m.cmdCopyWifi()
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenOverview
	case key.Matches(keyMsg, keys.refresh):
		return m.startRefresh()
	case key.Matches(keyMsg, keys.copyWifi):
		return m, m.cmdCopyWifi()
	}

	return m, nil
}

func (m appModel) startRefresh() (tea.Model, tea.Cmd) {
	if m.refreshing {
		return m, nil
	}
	m.refreshing = true
	m.setStatus("Refreshing...")
	return m, m.cmdFetch()
}

func (m *appModel) setStatus(status string) {
	m.overview.status = status
	m.detail.status = status
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) cmdLogin() tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		details, err := client.Login(ctx)
		return loginDoneMsg{details: details, err: err}
	}
}

func (m appModel) cmdFetch() tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		err := client.FetchData(ctx)
		// an expired session gets one transparent re-login
		if errors.Is(err, telenet.ErrNotAuthenticated) {
			if _, loginErr := client.Login(ctx); loginErr == nil {
				err = client.FetchData(ctx)
			}
		}
		return snapshotMsg{data: client.Data(), err: err}
	}
}

// cmdCopyWifi copies the wifi QR string of the first wifi modem that
// reports a passphrase.
func (m appModel) cmdCopyWifi() tea.Cmd {
	devices := m.overview.data.Devices
	names := make([]string, 0, len(devices))
	for name, device := range devices {
		if device.Passphrase != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return cmdCopyToClipboard(devices[names[0]].Passphrase)
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

package tui

import "github.com/charmbracelet/bubbles/spinner"

type loadingModel struct {
	spinner spinner.Model
	phase   string
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loadingModel{spinner: s, phase: "Logging in..."}
}

func (m loadingModel) View() string {
	return m.spinner.View() + " " + m.phase
}

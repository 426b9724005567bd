package tui

import (
	"github.com/sbogaerts/telenet-go/models"
)

type loginDoneMsg struct {
	details models.UserDetails
	err     error
}

type snapshotMsg struct {
	data models.Data
	err  error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

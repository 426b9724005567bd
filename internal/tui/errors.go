// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	telenet "github.com/sbogaerts/telenet-go"
)

var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, telenet.ErrBadCredentials):
		return "Telenet rejected the username or password"
	case errors.Is(err, telenet.ErrNotAuthenticated):
		return "Session expired, press r to log in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network, or the Telenet API is unreachable"
	}

	return err.Error()
}

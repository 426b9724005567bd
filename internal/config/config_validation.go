// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/sbogaerts/telenet-go/models"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required to construct a client: credentials must be present,
// and the language, when set, must be one the portal supports. An empty
// language is fine; the client falls back to its default.
func (cfg *StructuredConfig) validate() error {
	if cfg.Account.Username == "" || cfg.Account.Password == "" {
		return ErrMissingCredentials
	}

	if cfg.Account.Language != "" && !models.ValidLanguage(cfg.Account.Language) {
		return ErrInvalidLanguage
	}

	return nil
}

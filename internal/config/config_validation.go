// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Because every field carries a hardcoded fallback, only the database DSN —
// which has no sane default — is required.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	return nil
}

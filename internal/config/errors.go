package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid auth settings
	// (for example, missing token sign key or non-positive token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates a database driver other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRulesConfigs indicates invalid validation-rule constants
	// (for example, a non-positive message length limit).
	ErrInvalidRulesConfigs = errors.New("invalid rules configuration")
)

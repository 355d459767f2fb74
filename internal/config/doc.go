// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Sources are combined by a builder: each source produces a partial
// [StructuredConfig], the partials are merged in priority order (earlier
// sources win for non-zero fields), and the final value is validated once
// before use. The resulting configuration is immutable for the process
// lifetime.
package config

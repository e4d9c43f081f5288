// Package cli wires the cobra command tree: ask, config, models, and
// version. Command handlers translate pipeline errors into deterministic
// exit codes (0 success, 2 usage, 3 auth/configuration, 4 runtime).
package cli

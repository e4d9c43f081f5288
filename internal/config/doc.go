// Package config loads and merges askbetter configuration from defaults,
// the platform config file, ASKBETTER_* environment variables, and CLI flag
// overrides, in that order of increasing precedence.
//
// Provider credentials are not part of this config; they are read from
// environment variables by the providers package at startup.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "POSTS_"

// Default values applied to fields that no source has set.
const (
	DefaultDSN      = "posts-client.db"
	DefaultLogLevel = "debug"
)

// StructuredConfig is the top-level configuration container for the
// go-posts-client application. It aggregates all sub-configurations and is
// populated by merging values from defaults, an optional config file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds settings of the outbound REST transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration of the local settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged below the values
	// loaded from environment variables and flags.
	// Populated via the POSTS_CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the REST adapter talking to the posts API.
type Adapter struct {
	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Zero means no timeout.
	// Env: POSTS_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StrictStatus turns non-2xx HTTP responses into request failures.
	// Off by default: a JSON body with an error status counts as success.
	// Env: POSTS_ADAPTER_STRICT_STATUS
	StrictStatus bool `env:"STRICT_STATUS"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "posts-client.db").
	// Env: POSTS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the JSON log file. Empty means a "logs" file next
	// to the executable.
	// Env: POSTS_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: POSTS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Config file (path resolved from sources 3 and 4)
//  2. .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
//
// Defaults fill whatever is still empty. args are the command-line
// arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-d local database DSN
//	-c/-config json or yaml config file path
//	-request-timeout request timeout (e.g., "30s", "1m"), 0 disables it
//	-strict-status treat non-2xx responses as failures
//	-log-file log file path
//	-log-level log level (trace, debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var configPath string
	var requestTimeout time.Duration
	var strictStatus bool
	var logFile string
	var logLevel string

	fs := flag.NewFlagSet("posts-client", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&strictStatus, "strict-status", false, "Treat non-2xx responses as failures")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			StrictStatus:   strictStatus,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}

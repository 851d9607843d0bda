// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON or YAML config file
//  2. Environment variables (after an optional .env file)
//  3. Command-line flags
//
// Defaults fill the fields no source has set. The main entry point is
// [GetClientConfig].
package config

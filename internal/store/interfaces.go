// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is a small persistent key-value store for client
// settings that must survive restarts.
type SettingsRepository interface {
	// Get returns the value stored under name. ok is false when nothing was
	// stored yet.
	Get(ctx context.Context, name string) (value string, ok bool, err error)
	// Set stores value under name, replacing the previous value.
	Set(ctx context.Context, name, value string) error
}

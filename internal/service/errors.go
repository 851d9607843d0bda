// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoEditFields is returned by Update for an id that has no rendered
	// edit fields. No request is issued.
	ErrNoEditFields = errors.New("no edit fields for post")

	// ErrSettingsUnavailable is returned when the settings service has no
	// repository to work with.
	ErrSettingsUnavailable = errors.New("settings storage is unavailable")
)

// Service errors mapped from strict-status API responses.
var (
	ErrInvalidSortField        = errors.New("invalid sort field")
	ErrInvalidSortDirection    = errors.New("invalid sort direction")
	ErrTitleAndContentRequired = errors.New("title and content are required")
	ErrPostNotFound            = errors.New("post not found")
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrServer                  = errors.New("posts api server error")
)

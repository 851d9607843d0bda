// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the operations of the posts client.
//
// Every operation receives the current [models.AppState] and returns the
// next one. Failures are logged and returned; the returned state is then the
// input state, so a caller may ignore the error and keep rendering.
package service

import (
	"context"

	"github.com/MKhiriev/go-posts-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsKeyBaseURL is the storage key of the persisted API base URL.
const SettingsKeyBaseURL = "apiBaseUrl"

// ClientSettingsService restores and persists client configuration.
type ClientSettingsService interface {
	// Initialize returns the start-up state: the persisted base URL when one
	// exists, an empty state otherwise. Nothing is fetched.
	Initialize(ctx context.Context) (models.AppState, error)

	// PersistBaseURL overwrites the stored base URL.
	PersistBaseURL(ctx context.Context, baseURL string) error
}

// ClientPostService runs the CRUD and search operations against the posts
// API named by the state's base URL.
type ClientPostService interface {
	// Load fetches the list with the state's sort selectors and replaces
	// the display list.
	Load(ctx context.Context, state models.AppState) (models.AppState, error)

	// Create posts the create inputs. On success the inputs are cleared and
	// the list is reloaded once. The error reports the POST only; a failed
	// reload is logged.
	Create(ctx context.Context, state models.AppState) (models.AppState, error)

	// Update sends the edit fields of post id and reloads once on success.
	Update(ctx context.Context, state models.AppState, id models.PostID) (models.AppState, error)

	// Delete removes post id and reloads once on any completed response.
	Delete(ctx context.Context, state models.AppState, id models.PostID) (models.AppState, error)

	// Search fetches the posts matching the search inputs and replaces the
	// display list.
	Search(ctx context.Context, state models.AppState) (models.AppState, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/store"
)

// ClientServices groups the services the UI drives.
type ClientServices struct {
	SettingsService ClientSettingsService
	PostService     ClientPostService
}

func NewClientServices(storages *store.ClientStorages, postsAdapter adapter.PostsAdapter, logger *logger.Logger) *ClientServices {
	var settings store.SettingsRepository
	if storages != nil {
		settings = storages.SettingsRepository
	}

	return &ClientServices{
		SettingsService: NewClientSettingsService(settings, logger),
		PostService:     NewClientPostService(postsAdapter, logger),
	}
}

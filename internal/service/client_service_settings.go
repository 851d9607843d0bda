// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/models"
)

type clientSettingsService struct {
	settings store.SettingsRepository

	logger *logger.Logger
}

func NewClientSettingsService(settings store.SettingsRepository, logger *logger.Logger) ClientSettingsService {
	return &clientSettingsService{settings: settings, logger: logger}
}

func (s *clientSettingsService) Initialize(ctx context.Context) (models.AppState, error) {
	var state models.AppState
	if s.settings == nil {
		return state, ErrSettingsUnavailable
	}

	baseURL, ok, err := s.settings.Get(ctx, SettingsKeyBaseURL)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSettingsService.Initialize").Msg("failed to read persisted base url")
		return state, fmt.Errorf("read persisted base url: %w", err)
	}
	if !ok {
		s.logger.Debug().Str("func", "clientSettingsService.Initialize").Msg("no persisted base url")
		return state, nil
	}

	state.BaseURL = baseURL
	return state, nil
}

func (s *clientSettingsService) PersistBaseURL(ctx context.Context, baseURL string) error {
	if s.settings == nil {
		return ErrSettingsUnavailable
	}

	if err := s.settings.Set(ctx, SettingsKeyBaseURL, baseURL); err != nil {
		s.logger.Err(err).Str("func", "clientSettingsService.PersistBaseURL").Msg("failed to persist base url")
		return fmt.Errorf("persist base url: %w", err)
	}

	return nil
}

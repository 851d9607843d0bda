// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/models"
)

var ErrNilDependency = errors.New("client: nil dependency")

// UI is the interactive surface the App hands control to.
type UI interface {
	Run(ctx context.Context, initial models.AppState) error
}

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SettingsService == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the persisted configuration and runs the UI until the user
// quits. A configuration that cannot be read is logged and the UI starts
// empty.
func (a *App) Run(ctx context.Context) error {
	state, err := a.services.SettingsService.Initialize(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("could not restore configuration")
		state = models.AppState{}
	}
	a.logger.Info().Str("base_url", state.BaseURL).Msg("client started")

	if err = a.ui.Run(ctx, state); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

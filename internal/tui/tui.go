// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal user interface of the posts client. It owns
// the terminal while running; all diagnostics go to the log.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/workers"
	"github.com/MKhiriev/go-posts-client/models"
)

var ErrNoServices = errors.New("tui: services are not configured")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PostService == nil || services.SettingsService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the board filled from initial and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, initial models.AppState) error {
	coordinator := workers.NewSuperseder()
	defer coordinator.Stop()

	board := newBoardModel(ctx, t.services, coordinator, initial, t.logger)
	root := NewRootModel(board, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("user quit")
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-posts-client/models"
)

// RootModel wraps the board:
// 1) handles global Ctrl+C quit
// 2) toggles the build info overlay
// 3) delegates all other messages to the board
type RootModel struct {
	board tea.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel wraps board.
func NewRootModel(board tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		board:     board,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.board == nil {
		return nil
	}
	return r.board.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.board == nil {
		return r, nil
	}

	// Results keep flowing to the board while the overlay is shown.
	updated, cmd := r.board.Update(msg)
	r.board = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.board == nil {
		return renderPage("POSTS", "", "")
	}
	return r.board.View()
}

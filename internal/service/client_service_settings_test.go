// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/mock"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/models"
)

func newTestSettingsSvc(t *testing.T) (ClientSettingsService, *mock.MockSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	return NewClientSettingsService(repo, logger.Nop()), repo
}

func TestClientSettingsService_Initialize_Persisted(t *testing.T) {
	svc, repo := newTestSettingsSvc(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "apiBaseUrl").Return("http://localhost:3000/api", true, nil)

	state, err := svc.Initialize(ctx)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", state.BaseURL)
	assert.Empty(t, state.Display)
}

func TestClientSettingsService_Initialize_Absent(t *testing.T) {
	svc, repo := newTestSettingsSvc(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SettingsKeyBaseURL).Return("", false, nil)

	state, err := svc.Initialize(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.AppState{}, state)
}

func TestClientSettingsService_Initialize_StorageError(t *testing.T) {
	svc, repo := newTestSettingsSvc(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, SettingsKeyBaseURL).Return("", false, store.ErrScanningRow)

	state, err := svc.Initialize(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.Empty(t, state.BaseURL)
}

func TestClientSettingsService_PersistBaseURL(t *testing.T) {
	svc, repo := newTestSettingsSvc(t)
	ctx := context.Background()

	repo.EXPECT().Set(ctx, "apiBaseUrl", "http://h/api").Return(nil)

	require.NoError(t, svc.PersistBaseURL(ctx, "http://h/api"))
}

func TestClientSettingsService_PersistBaseURL_Error(t *testing.T) {
	svc, repo := newTestSettingsSvc(t)
	ctx := context.Background()

	repo.EXPECT().Set(ctx, SettingsKeyBaseURL, "x").Return(errors.New("database is locked"))

	assert.Error(t, svc.PersistBaseURL(ctx, "x"))
}

func TestClientSettingsService_NoRepository(t *testing.T) {
	svc := NewClientSettingsService(nil, logger.Nop())

	_, err := svc.Initialize(context.Background())
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
	assert.ErrorIs(t, svc.PersistBaseURL(context.Background(), "x"), ErrSettingsUnavailable)
}

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.ClientStorages{SettingsRepository: mock.NewMockSettingsRepository(ctrl)}

	svcs := NewClientServices(storages, mock.NewMockPostsAdapter(ctrl), logger.Nop())

	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.SettingsService)
	assert.NotNil(t, svcs.PostService)
}

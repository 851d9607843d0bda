// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts-client/internal/logger"
)

type settingsRepository struct {
	db  *DB
	now func() time.Time

	logger *logger.Logger
}

// NewSettingsRepository returns a [SettingsRepository] backed by the
// settings table.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context, name string) (string, bool, error) {
	if s.db == nil || s.db.DB == nil {
		return "", false, ErrNilDB
	}

	query, args, err := buildGetSettingQuery(name)
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.Get").Msg("failed to build query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		s.logger.Err(err).
			Str("func", "settingsRepository.Get").
			Str("name", name).
			Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: read setting %q: %w", ErrScanningRow, name, err)
	}

	return value, true, nil
}

func (s *settingsRepository) Set(ctx context.Context, name, value string) error {
	if s.db == nil || s.db.DB == nil {
		return ErrNilDB
	}

	query, args, err := buildUpsertSettingQuery(name, value, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.Set").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "settingsRepository.Set").
			Str("name", name).
			Msg("failed to store setting")
		return fmt.Errorf("%w: store setting %q: %w", ErrExecutingStatement, name, err)
	}

	return nil
}

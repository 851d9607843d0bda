// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "settings"

// upsertSettingSuffix turns the INSERT into an upsert keyed on name.
const upsertSettingSuffix = "ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

func buildGetSettingQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(settingsTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildUpsertSettingQuery(name, value string, at time.Time) (string, []any, error) {
	return sq.Insert(settingsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, at.UTC()).
		Suffix(upsertSettingSuffix).
		PlaceholderFormat(sq.Question).
		ToSql()
}

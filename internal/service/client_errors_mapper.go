// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/app"
)

// mapAdapterError translates a status error of the adapter into a service
// error. The adapter error stays in the chain so callers can still match
// adapter.ErrRequestFailure.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractAPIMessage(err)

	var mapped error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidSortField:
			mapped = ErrInvalidSortField
		case app.MsgInvalidSortDirection:
			mapped = ErrInvalidSortDirection
		case app.MsgTitleAndContentRequired:
			mapped = ErrTitleAndContentRequired
		default:
			mapped = ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrNotFound):
		mapped = ErrPostNotFound

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		mapped = ErrServer
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// extractAPIMessage pulls the message of a `{"error": "..."}` body out of an
// error of the form "...: <body>".
func extractAPIMessage(err error) string {
	msg := err.Error()
	idx := strings.Index(msg, "{")
	if idx == -1 {
		return ""
	}

	var body map[string]any
	if json.Unmarshal([]byte(msg[idx:]), &body) != nil {
		return ""
	}

	text, _ := body[app.APIErrorField].(string)
	return text
}

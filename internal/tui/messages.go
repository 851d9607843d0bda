// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-posts-client/internal/workers"
	"github.com/MKhiriev/go-posts-client/models"
)

type opKind int

const (
	opLoad opKind = iota
	opCreate
	opUpdate
	opDelete
	opSearch
)

func (o opKind) String() string {
	switch o {
	case opLoad:
		return "load"
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	case opSearch:
		return "search"
	default:
		return "unknown"
	}
}

// opDoneMsg reports a finished service operation. before is the snapshot the
// operation started from.
type opDoneMsg struct {
	op     opKind
	ticket workers.Ticket
	before models.AppState
	state  models.AppState
	err    error
}

type copiedMsg struct {
	err error
}

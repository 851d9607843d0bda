// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants of the posts
// client.
//
// All Msg* constants are the error messages the posts API writes into the
// "error" field of its JSON error bodies. The client only sees them when the
// adapter runs with strict status checking; they are matched to turn a
// status error into a named service error for the log.
package app

const (
	// MsgInvalidSortField is returned by the list endpoint for a sort
	// field other than title or content.
	MsgInvalidSortField = "Invalid sort field. Use 'title' or 'content'."

	// MsgInvalidSortDirection is returned by the list endpoint for a
	// direction other than asc or desc.
	MsgInvalidSortDirection = "Invalid sort direction. Use 'asc' or 'desc'."

	// MsgTitleAndContentRequired is returned by the create endpoint when
	// the body lacks a title or content.
	MsgTitleAndContentRequired = "Title and content are required."

	// MsgPostNotFound is returned by the update and delete endpoints for an
	// unknown id.
	MsgPostNotFound = "Post not found."
)

// APIErrorField is the JSON field carrying the message of an error body.
const APIErrorField = "error"

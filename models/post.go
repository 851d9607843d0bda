// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// PostID is the server-assigned identifier of a post.
//
// The client never interprets the identifier: it may arrive as a JSON number
// or a JSON string and is kept in its textual form. Re-encoding preserves the
// original kind, so numeric ids stay numbers on the wire.
type PostID string

// String returns the textual form used in URLs and field keys.
func (id PostID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id PostID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *PostID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = PostID(s)
		return nil
	case isJSONNumber(string(b)):
		*id = PostID(b)
		return nil
	default:
		return fmt.Errorf("post id: unsupported json value %s", b)
	}
}

// MarshalJSON writes numeric identifiers as JSON numbers and everything else
// as JSON strings.
func (id PostID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if isJSONNumber(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

// Post is a single record of the remote "posts" collection.
// Records are opaque pass-through payloads: no validation or normalisation
// is applied on the client.
type Post struct {
	ID      PostID `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostPayload is the request body of create and update calls.
// Field order is part of the wire contract: {"title":...,"content":...}.
type PostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field key prefixes of the per-record edit fields.
const (
	TitleFieldPrefix   = "title-"
	ContentFieldPrefix = "content-"
)

// TitleFieldKey returns the key of the editable title field of post id.
func TitleFieldKey(id PostID) string {
	return TitleFieldPrefix + id.String()
}

// ContentFieldKey returns the key of the editable content field of post id.
func ContentFieldKey(id PostID) string {
	return ContentFieldPrefix + id.String()
}

// AppState is the whole user-visible state of the posts client.
//
// Operations receive an AppState and return a new one; they never reach
// into ambient UI state. Maps are treated as immutable values: operations
// replace EditFields instead of mutating it.
type AppState struct {
	// BaseURL is the current value of the base URL input.
	BaseURL string

	// SortField and SortDirection are the current sort selector values.
	// Empty means "not set".
	SortField     string
	SortDirection string

	// NewTitle and NewContent are the create form inputs.
	NewTitle   string
	NewContent string

	// SearchTitle and SearchContent are the search form inputs.
	SearchTitle   string
	SearchContent string

	// EditFields holds the per-record edit inputs keyed by
	// TitleFieldKey / ContentFieldKey.
	EditFields map[string]string

	// Display is the rendered list of the most recent successful fetch.
	Display []Post

	// Generation counts display replacements. It lets a caller holding an
	// older snapshot tell whether an operation actually refreshed Display.
	Generation uint64
}

// ListQuery returns the sort parameters of a Load built from the selectors.
func (s AppState) ListQuery() ListQuery {
	return ListQuery{Sort: s.SortField, Direction: s.SortDirection}
}

// SearchQuery returns the parameters of a Search built from the search inputs.
func (s AppState) SearchQuery() SearchQuery {
	return SearchQuery{Title: s.SearchTitle, Content: s.SearchContent}
}

// EditField returns the value of an edit field and whether it exists.
func (s AppState) EditField(key string) (string, bool) {
	v, ok := s.EditFields[key]
	return v, ok
}

// WithEditField returns a copy of s with one edit field changed.
func (s AppState) WithEditField(key, value string) AppState {
	fields := make(map[string]string, len(s.EditFields)+1)
	for k, v := range s.EditFields {
		fields[k] = v
	}
	fields[key] = value
	s.EditFields = fields
	return s
}

// WithDisplay returns a copy of s whose display list is replaced by posts and
// whose edit fields are rebuilt and pre-filled from them. When ids repeat,
// the first record with that id owns the edit fields.
func (s AppState) WithDisplay(posts []Post) AppState {
	display := make([]Post, len(posts))
	copy(display, posts)

	fields := make(map[string]string, len(posts)*2)
	for _, p := range posts {
		if _, seen := fields[TitleFieldKey(p.ID)]; seen {
			continue
		}
		fields[TitleFieldKey(p.ID)] = p.Title
		fields[ContentFieldKey(p.ID)] = p.Content
	}

	s.Display = display
	s.EditFields = fields
	s.Generation++
	return s
}

// ListQuery holds the optional sort parameters of a list request.
type ListQuery struct {
	Sort      string
	Direction string
}

// SearchQuery holds the parameters of a search request. Both parameters are
// always sent, empty or not.
type SearchQuery struct {
	Title   string
	Content string
}

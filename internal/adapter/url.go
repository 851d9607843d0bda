// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"

	"github.com/MKhiriev/go-posts-client/internal/utils"
	"github.com/MKhiriev/go-posts-client/models"
)

const postsPath = "/posts"

// BuildListQuery returns the query string of a list request: "" when no
// parameter is set, otherwise "?" followed by sort and direction, each
// included only when non-empty and joined with "&".
func BuildListQuery(q models.ListQuery) string {
	var b strings.Builder
	if q.Sort != "" {
		b.WriteString("?sort=")
		b.WriteString(utils.EncodeURIComponent(q.Sort))
	}
	if q.Direction != "" {
		if b.Len() > 0 {
			b.WriteString("&")
		} else {
			b.WriteString("?")
		}
		b.WriteString("direction=")
		b.WriteString(utils.EncodeURIComponent(q.Direction))
	}
	return b.String()
}

// BuildSearchQuery returns "?title=<t>&content=<c>". Both parameters are
// always present, empty values included.
func BuildSearchQuery(q models.SearchQuery) string {
	return "?title=" + utils.EncodeURIComponent(q.Title) +
		"&content=" + utils.EncodeURIComponent(q.Content)
}

// ListURL returns {baseURL}/posts plus the list query string. The base URL is
// used verbatim.
func ListURL(baseURL string, q models.ListQuery) string {
	return baseURL + postsPath + BuildListQuery(q)
}

// SearchURL returns {baseURL}/posts/search plus the search query string.
func SearchURL(baseURL string, q models.SearchQuery) string {
	return baseURL + postsPath + "/search" + BuildSearchQuery(q)
}

// CollectionURL returns {baseURL}/posts.
func CollectionURL(baseURL string) string {
	return baseURL + postsPath
}

// ItemURL returns {baseURL}/posts/{id} with the id escaped as a path segment.
func ItemURL(baseURL string, id models.PostID) string {
	return baseURL + postsPath + "/" + utils.EncodeURIComponent(id.String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the posts client and
// the remote REST collection "posts".
//
// The primary abstraction is [PostsAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPPostsAdapter]).
//
// Every failure is reported as [ErrRequestFailure]: transport errors
// (unreachable host, refused connection, cancelled context) and response
// bodies that are not the expected JSON. HTTP status codes are not checked
// unless the adapter is built with StrictStatus, in which case mapHTTPError
// adds a status sentinel such as [ErrNotFound] to the chain.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-posts-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/posts_adapter_mock.go -package=mock

// PostsAdapter defines communication with the posts REST API. Every method
// receives the base URL explicitly because the user may change it between
// calls.
type PostsAdapter interface {
	// ListPosts sends GET {baseURL}/posts with optional sort and direction
	// parameters and decodes the JSON array of posts. The returned slice
	// keeps the response order.
	ListPosts(ctx context.Context, baseURL string, query models.ListQuery) ([]models.Post, error)

	// SearchPosts sends GET {baseURL}/posts/search?title=..&content=.. with
	// both parameters always present and decodes the JSON array of posts.
	SearchPosts(ctx context.Context, baseURL string, query models.SearchQuery) ([]models.Post, error)

	// CreatePost sends POST {baseURL}/posts with a {title, content} body.
	// Any JSON response body counts as success.
	CreatePost(ctx context.Context, baseURL string, payload models.PostPayload) error

	// UpdatePost sends PUT {baseURL}/posts/{id} with a {title, content} body.
	// Any JSON response body counts as success.
	UpdatePost(ctx context.Context, baseURL string, id models.PostID, payload models.PostPayload) error

	// DeletePost sends DELETE {baseURL}/posts/{id}. The response body is
	// ignored; only transport failures are errors.
	DeletePost(ctx context.Context, baseURL string, id models.PostID) error
}

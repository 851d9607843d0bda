// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-posts-client/internal/config"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/utils"
	"github.com/MKhiriev/go-posts-client/models"
)

// RequestIDHeader carries the identifier of every outbound request.
const RequestIDHeader = "X-Request-ID"

type httpPostsAdapter struct {
	client       *utils.HTTPClient
	requestIDs   *utils.UUIDGenerator
	strictStatus bool

	logger *logger.Logger
}

// NewHTTPPostsAdapter constructs a resty-based implementation of
// [PostsAdapter]. The base URL is not part of the adapter: every call names
// it, so the user can point the client at another server at any time.
func NewHTTPPostsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) PostsAdapter {
	client := utils.NewHTTPClient().WithTimeout(adapterCfg.RequestTimeout)
	client.SetLogger(restyLogger{logger: logger})

	return &httpPostsAdapter{
		client:       client,
		requestIDs:   utils.NewUUIDGenerator(),
		strictStatus: adapterCfg.StrictStatus,
		logger:       logger,
	}
}

// ListPosts implements [PostsAdapter].
func (h *httpPostsAdapter) ListPosts(ctx context.Context, baseURL string, query models.ListQuery) ([]models.Post, error) {
	resp, err := h.request(ctx).Get(ListURL(baseURL, query))
	if err != nil {
		return nil, fmt.Errorf("%w: list posts request: %w", ErrRequestFailure, err)
	}

	return h.decodePosts(resp, "list posts")
}

// SearchPosts implements [PostsAdapter].
func (h *httpPostsAdapter) SearchPosts(ctx context.Context, baseURL string, query models.SearchQuery) ([]models.Post, error) {
	resp, err := h.request(ctx).Get(SearchURL(baseURL, query))
	if err != nil {
		return nil, fmt.Errorf("%w: search posts request: %w", ErrRequestFailure, err)
	}

	return h.decodePosts(resp, "search posts")
}

// CreatePost implements [PostsAdapter].
func (h *httpPostsAdapter) CreatePost(ctx context.Context, baseURL string, payload models.PostPayload) error {
	req, err := h.jsonRequest(ctx, payload)
	if err != nil {
		return fmt.Errorf("%w: encode create body: %w", ErrRequestFailure, err)
	}

	resp, err := req.Post(CollectionURL(baseURL))
	if err != nil {
		return fmt.Errorf("%w: create post request: %w", ErrRequestFailure, err)
	}

	return h.expectJSON(resp, "create post")
}

// UpdatePost implements [PostsAdapter].
func (h *httpPostsAdapter) UpdatePost(ctx context.Context, baseURL string, id models.PostID, payload models.PostPayload) error {
	req, err := h.jsonRequest(ctx, payload)
	if err != nil {
		return fmt.Errorf("%w: encode update body: %w", ErrRequestFailure, err)
	}

	resp, err := req.Put(ItemURL(baseURL, id))
	if err != nil {
		return fmt.Errorf("%w: update post %s request: %w", ErrRequestFailure, id, err)
	}

	return h.expectJSON(resp, "update post")
}

// DeletePost implements [PostsAdapter].
func (h *httpPostsAdapter) DeletePost(ctx context.Context, baseURL string, id models.PostID) error {
	resp, err := h.request(ctx).Delete(ItemURL(baseURL, id))
	if err != nil {
		return fmt.Errorf("%w: delete post %s request: %w", ErrRequestFailure, id, err)
	}
	h.logResponse(resp)

	if err = h.checkStatus(resp); err != nil {
		return fmt.Errorf("%w: delete post %s: %w", ErrRequestFailure, id, err)
	}

	return nil
}

// request prepares a resty request bound to ctx and tagged with a request id
// (taken from ctx when the caller already assigned one).
func (h *httpPostsAdapter) request(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.requestIDs.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
}

func (h *httpPostsAdapter) jsonRequest(ctx context.Context, payload models.PostPayload) (*resty.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body), nil
}

func (h *httpPostsAdapter) decodePosts(resp *resty.Response, op string) ([]models.Post, error) {
	h.logResponse(resp)

	if err := h.checkStatus(resp); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRequestFailure, op, err)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: %s: %w: expected json array", ErrRequestFailure, op, ErrUnexpectedBody)
	}

	posts := make([]models.Post, 0)
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("%w: %s: decode response: %w", ErrRequestFailure, op, err)
	}

	return posts, nil
}

func (h *httpPostsAdapter) expectJSON(resp *resty.Response, op string) error {
	h.logResponse(resp)

	if err := h.checkStatus(resp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailure, op, err)
	}

	if !json.Valid(resp.Body()) {
		return fmt.Errorf("%w: %s: %w: body is not json", ErrRequestFailure, op, ErrUnexpectedBody)
	}

	return nil
}

// checkStatus maps error statuses only in strict mode. By default a response
// with an error status is handled like any other response.
func (h *httpPostsAdapter) checkStatus(resp *resty.Response) error {
	if !h.strictStatus {
		return nil
	}
	return mapHTTPError(resp)
}

func (h *httpPostsAdapter) logResponse(resp *resty.Response) {
	req := resp.Request
	h.logger.Debug().
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Bool("error_status", resp.StatusCode() >= http.StatusBadRequest).
		Msg("posts api response")
}

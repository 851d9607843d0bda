// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/utils"
	"github.com/MKhiriev/go-posts-client/models"
)

type clientPostService struct {
	adapter    adapter.PostsAdapter
	requestIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientPostService(postsAdapter adapter.PostsAdapter, logger *logger.Logger) ClientPostService {
	return &clientPostService{
		adapter:    postsAdapter,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (p *clientPostService) Load(ctx context.Context, state models.AppState) (models.AppState, error) {
	ctx, log := p.operation(ctx, "load")

	posts, err := p.adapter.ListPosts(ctx, state.BaseURL, state.ListQuery())
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).
			Str("base_url", state.BaseURL).
			Str("sort", state.SortField).
			Str("direction", state.SortDirection).
			Msg("failed to load posts")
		return state, fmt.Errorf("load posts: %w", err)
	}

	log.Debug().Int("count", len(posts)).Msg("posts loaded")
	return state.WithDisplay(posts), nil
}

func (p *clientPostService) Create(ctx context.Context, state models.AppState) (models.AppState, error) {
	ctx, log := p.operation(ctx, "create")

	payload := models.PostPayload{Title: state.NewTitle, Content: state.NewContent}
	if err := p.adapter.CreatePost(ctx, state.BaseURL, payload); err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("base_url", state.BaseURL).Msg("failed to create post")
		return state, fmt.Errorf("create post: %w", err)
	}

	state.NewTitle = ""
	state.NewContent = ""

	return p.reload(ctx, state, "create"), nil
}

func (p *clientPostService) Update(ctx context.Context, state models.AppState, id models.PostID) (models.AppState, error) {
	ctx, log := p.operation(ctx, "update")

	title, okTitle := state.EditField(models.TitleFieldKey(id))
	content, okContent := state.EditField(models.ContentFieldKey(id))
	if !okTitle || !okContent {
		log.Warn().Str("post_id", id.String()).Msg("update requested for a post without edit fields")
		return state, fmt.Errorf("update post %s: %w", id, ErrNoEditFields)
	}

	payload := models.PostPayload{Title: title, Content: content}
	if err := p.adapter.UpdatePost(ctx, state.BaseURL, id, payload); err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("post_id", id.String()).Msg("failed to update post")
		return state, fmt.Errorf("update post %s: %w", id, err)
	}

	return p.reload(ctx, state, "update"), nil
}

func (p *clientPostService) Delete(ctx context.Context, state models.AppState, id models.PostID) (models.AppState, error) {
	ctx, log := p.operation(ctx, "delete")

	if err := p.adapter.DeletePost(ctx, state.BaseURL, id); err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("post_id", id.String()).Msg("failed to delete post")
		return state, fmt.Errorf("delete post %s: %w", id, err)
	}

	return p.reload(ctx, state, "delete"), nil
}

func (p *clientPostService) Search(ctx context.Context, state models.AppState) (models.AppState, error) {
	ctx, log := p.operation(ctx, "search")

	posts, err := p.adapter.SearchPosts(ctx, state.BaseURL, state.SearchQuery())
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).
			Str("base_url", state.BaseURL).
			Str("title", state.SearchTitle).
			Str("content", state.SearchContent).
			Msg("failed to search posts")
		return state, fmt.Errorf("search posts: %w", err)
	}

	log.Debug().Int("count", len(posts)).Msg("search results loaded")
	return state.WithDisplay(posts), nil
}

// reload runs the single Load that follows a successful mutation. Its failure
// only gets logged: the mutation itself already succeeded.
func (p *clientPostService) reload(ctx context.Context, state models.AppState, after string) models.AppState {
	reloaded, err := p.Load(ctx, state)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("after", after).Msg("reload after mutation failed")
		return state
	}
	return reloaded
}

// operation tags ctx with a request id (unless the caller already set one)
// and a logger carrying it.
func (p *clientPostService) operation(ctx context.Context, op string) (context.Context, *logger.Logger) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = p.requestIDs.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	log := &logger.Logger{Logger: p.logger.With().
		Str("request_id", requestID).
		Str("operation", op).
		Logger()}

	return log.WithContext(ctx), log
}

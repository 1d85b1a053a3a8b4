// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jmoliner/herdsync/internal/config"
	"github.com/jmoliner/herdsync/internal/logger"
	"github.com/jmoliner/herdsync/models"
)

type httpSyncAPI struct {
	client *HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPSyncAPI constructs an HTTP/REST implementation of [SyncAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPSyncAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (SyncAPI, error) {
	client := NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpSyncAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SyncAPI]. It stores token (whitespace-trimmed) for use
// in the Authorization header of all subsequent requests.
func (h *httpSyncAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Push implements [SyncAPI]. It POSTs the pending change batch to
// POST /api/sync/push and decodes the per-batch outcome. A transport failure
// with no server response is reported as [ErrNetworkUnavailable].
func (h *httpSyncAPI) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/push")
	if err != nil {
		return models.PushResult{}, transportError("push request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResult{}, err
	}

	var result models.PushResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.PushResult{}, fmt.Errorf("decode push response: %w", err)
	}

	return result, nil
}

// Pull implements [SyncAPI]. It POSTs the pull criteria (checkpoint, tracked
// tables, device and user scope) to POST /api/sync/pull and decodes the
// per-table record deltas.
func (h *httpSyncAPI) Pull(ctx context.Context, req models.PullRequest) (models.PullResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/pull")
	if err != nil {
		return models.PullResult{}, transportError("pull request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResult{}, err
	}

	var result models.PullResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.PullResult{}, fmt.Errorf("decode pull response: %w", err)
	}

	return result, nil
}

// ResolveConflict implements [SyncAPI]. It POSTs the chosen resolution to
// POST /api/sync/resolve-conflict. The server responds with no content on
// success.
func (h *httpSyncAPI) ResolveConflict(ctx context.Context, req models.ResolveConflictRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/resolve-conflict")
	if err != nil {
		return transportError("resolve conflict request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpSyncAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

// transportError wraps a resty request error. resty only returns a non-nil
// error when no HTTP response was received, so every error here means the
// remote never answered.
func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetworkUnavailable, err)
}

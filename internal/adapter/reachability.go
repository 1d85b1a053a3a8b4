package adapter

import (
	"context"
	"time"

	"github.com/jmoliner/herdsync/internal/config"
	"github.com/jmoliner/herdsync/internal/logger"
)

const probeTimeout = 3 * time.Second

type healthReachability struct {
	client *HTTPClient
	logger *logger.Logger
}

// NewHealthReachability returns a [Reachability] that probes the sync
// server's health endpoint with a short timeout. Any response at all counts
// as online; only a transport failure counts as offline, because a server
// answering with an error status is still reachable.
func NewHealthReachability(adapterCfg config.ClientAdapter, logger *logger.Logger) (Reachability, error) {
	client := NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(probeTimeout)

	return &healthReachability{client: client, logger: logger}, nil
}

func (r *healthReachability) IsOnline(ctx context.Context) bool {
	_, err := r.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		r.logger.Debug().Err(err).Msg("health probe failed, treating as offline")
		return false
	}

	return true
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"invoice-status-api/internal/config"
	"invoice-status-api/internal/models"
)

var (
	// ErrUpstreamUnavailable means the ledger data source could not be
	// reached or answered with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("ledger data source unavailable")

	// ErrUpstreamBadPayload means the ledger data source answered 2xx but
	// the body was not a readable list of ledger rows.
	ErrUpstreamBadPayload = errors.New("ledger data source returned an unreadable payload")
)

// APIKeyHeader is the header carrying the key for both inbound requests
// and the optional upstream credential.
const APIKeyHeader = "x-api-key"

type apiKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set(APIKeyHeader, t.apiKey)
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// ledgerService fetches the full ledger snapshot from the upstream data
// source over HTTP.
type ledgerService struct {
	config  *config.UpstreamConfig
	client  *http.Client
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewLedgerService creates a ledger source for the configured upstream
// endpoint. When the upstream requires a key, every request carries it in
// the x-api-key header.
func NewLedgerService(
	cfg *config.UpstreamConfig,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) LedgerSourceInterface {

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.APIKey != "" {
		transport = &apiKeyTransport{
			apiKey: cfg.APIKey,
			base:   http.DefaultTransport,
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &ledgerService{
		config:  cfg,
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchRows performs the one blocking ledger fetch of a status request.
func (s *ledgerService) FetchRows(ctx context.Context) ([]models.LedgerRow, error) {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.DataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create ledger request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("ledger fetch failed",
			"url", s.config.DataURL,
			"error", err,
		)
		s.metrics.RecordUpstreamFetch("error", time.Since(started), 0)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		s.metrics.RecordUpstreamFetch("error", time.Since(started), 0)
		return nil, fmt.Errorf("%w: read response body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Error("ledger fetch returned bad status",
			"url", s.config.DataURL,
			"status", resp.StatusCode,
		)
		s.metrics.RecordUpstreamFetch("bad_status", time.Since(started), 0)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var rows []models.LedgerRow
	if err := json.Unmarshal(body, &rows); err != nil {
		s.logger.Error("ledger payload could not be decoded",
			"url", s.config.DataURL,
			"error", err,
		)
		s.metrics.RecordUpstreamFetch("bad_payload", time.Since(started), 0)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamBadPayload, err)
	}

	duration := time.Since(started)
	s.metrics.RecordUpstreamFetch("ok", duration, len(rows))
	s.logger.Info("ledger snapshot fetched",
		"url", s.config.DataURL,
		"row_count", len(rows),
		"duration_ms", duration.Milliseconds(),
	)

	return rows, nil
}

package services

import (
	"context"
	"time"

	"invoice-status-api/internal/dto"
	"invoice-status-api/internal/models"
)

// LedgerSourceInterface fetches the full ledger snapshot from the
// upstream data source. One blocking call per request, no caching.
type LedgerSourceInterface interface {
	FetchRows(ctx context.Context) ([]models.LedgerRow, error)
}

// InvoiceServiceInterface classifies and aggregates invoice payment
// status for an account.
type InvoiceServiceInterface interface {
	GetInvoiceStatus(ctx context.Context, query dto.InvoiceStatusQuery) (*InvoiceStatusResult, error)
}

// LedgerGeneratorInterface produces fake ledger rows for development and
// testing.
type LedgerGeneratorInterface interface {
	GenerateLedger(accountCount, invoicesPerAccount, days int) []models.LedgerRow
}

// MetricsRecorderInterface records operational metrics for status
// requests and upstream ledger fetches.
type MetricsRecorderInterface interface {
	RecordStatusRequest(mode, outcome string, duration time.Duration)
	RecordUpstreamFetch(outcome string, duration time.Duration, rows int)
}

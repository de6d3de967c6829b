package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"invoice-status-api/internal/dto"
	"invoice-status-api/internal/models"

	"github.com/shopspring/decimal"
)

// Query modes reported in metrics.
const (
	ModeSingleInvoice = "single_invoice"
	ModeAllInvoices   = "all_invoices"
)

var (
	// ErrInvoiceNotFound means a specific invoice lookup matched no ledger
	// rows. This is a soft outcome ("invoice not yet in the ledger"),
	// never a request failure.
	ErrInvoiceNotFound = errors.New("invoice not found in ledger")

	// ErrInvalidDateRange means the caller supplied a start date after the
	// end date. Rejected before any upstream fetch.
	ErrInvalidDateRange = errors.New("start date must be before end date")
)

// InvoiceStatusResult is the outcome of a status query. Exactly one of
// the two summaries is set: InvoiceSummary for a specific invoice
// lookup, AccountSummary for an all-invoices report.
type InvoiceStatusResult struct {
	Invoices       []models.InvoiceRecord
	InvoiceSummary *models.InvoiceSummary
	AccountSummary *models.AccountSummary
}

// Summary returns whichever summary the result carries.
func (r *InvoiceStatusResult) Summary() interface{} {
	if r.InvoiceSummary != nil {
		return r.InvoiceSummary
	}
	return r.AccountSummary
}

// SummaryFields returns the carried summary's fields in display order.
func (r *InvoiceStatusResult) SummaryFields() []models.SummaryField {
	if r.InvoiceSummary != nil {
		return r.InvoiceSummary.SummaryFields()
	}
	if r.AccountSummary != nil {
		return r.AccountSummary.SummaryFields()
	}
	return nil
}

type invoiceService struct {
	ledger  LedgerSourceInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

// NewInvoiceService creates an invoice status service backed by the
// given ledger source.
func NewInvoiceService(ledger LedgerSourceInterface, metrics MetricsRecorderInterface) InvoiceServiceInterface {
	return &invoiceService{
		ledger:  ledger,
		metrics: metrics,
		now:     time.Now,
	}
}

// NewInvoiceServiceWithClock is NewInvoiceService with an explicit clock,
// so tests can pin "now" for the time-window classification branch.
func NewInvoiceServiceWithClock(ledger LedgerSourceInterface, metrics MetricsRecorderInterface, now func() time.Time) InvoiceServiceInterface {
	return &invoiceService{
		ledger:  ledger,
		metrics: metrics,
		now:     now,
	}
}

// GetInvoiceStatus runs one status query: fetch the ledger snapshot,
// filter to the account, then either report the single requested invoice
// row-by-row or group and aggregate every invoice in the date range.
func (s *invoiceService) GetInvoiceStatus(ctx context.Context, query dto.InvoiceStatusQuery) (*InvoiceStatusResult, error) {
	mode := ModeAllInvoices
	if query.InvoiceNumber != "" {
		mode = ModeSingleInvoice
	}

	started := time.Now()
	result, err := s.getInvoiceStatus(ctx, mode, query)
	s.metrics.RecordStatusRequest(mode, outcomeLabel(err), time.Since(started))

	return result, err
}

func (s *invoiceService) getInvoiceStatus(ctx context.Context, mode string, query dto.InvoiceStatusQuery) (*InvoiceStatusResult, error) {
	// Caller errors are rejected before the upstream fetch.
	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return nil, ErrInvalidDateRange
	}

	rows, err := s.ledger.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	if mode == ModeSingleInvoice {
		return s.reportSingleInvoice(rows, query.Account, query.InvoiceNumber)
	}
	return s.reportAllInvoices(rows, query)
}

// reportSingleInvoice emits one record per matching ledger row. The
// classification is computed once, from the first matching row, and
// applied to every record: a single invoice has one overall status even
// when its IL and SP rows differ.
func (s *invoiceService) reportSingleInvoice(rows []models.LedgerRow, account int64, invoiceNumber string) (*InvoiceStatusResult, error) {
	var matching []models.LedgerRow
	for _, row := range rows {
		if int64(row.Account) != account {
			continue
		}
		if row.InvoiceNumber() != invoiceNumber {
			continue
		}
		if !row.IsInvoiceDocument() {
			continue
		}
		matching = append(matching, row)
	}

	if len(matching) == 0 {
		slog.Warn("invoice not found in ledger",
			"account", account,
			"invoice_number", invoiceNumber)
		return nil, ErrInvoiceNotFound
	}

	classification := ClassifyRow(&matching[0], s.now())

	records := make([]models.InvoiceRecord, 0, len(matching))
	for i := range matching {
		row := &matching[i]
		records = append(records, models.InvoiceRecord{
			SupplierName:   row.VendorName,
			SupplierSECS:   row.Account,
			VendorCode:     row.Vendor,
			InvoiceNumber:  invoiceNumber,
			InvoiceDate:    row.EntryDate,
			PaymentDueDate: row.PaymentDate,
			DocumentType:   row.NormalizedDocumentType(),
			Amount:         row.AbsAmount(),
			Currency:       row.Currency,
			Remark:         classification.Remark,
			Status:         classification.Status,
		})
	}

	ilAmount, spAmount := sumByDocumentType(matching)

	summary := &models.InvoiceSummary{
		AmountPaid: decimal.Zero,
		AmountDue:  decimal.Zero,
		Currency:   matching[0].Currency,
	}
	if classification.Status == models.StatusPaid {
		summary.AmountPaid = ilAmount
	} else {
		summary.AmountDue = ilAmount.Sub(spAmount)
	}

	slog.Info("invoice status generated",
		"account", account,
		"invoice_number", invoiceNumber,
		"row_count", len(records),
		"status", classification.Status)

	return &InvoiceStatusResult{
		Invoices:       records,
		InvoiceSummary: summary,
	}, nil
}

// reportAllInvoices groups the account's ledger rows by invoice number
// in first-seen order and emits one aggregated record per invoice.
func (s *invoiceService) reportAllInvoices(rows []models.LedgerRow, query dto.InvoiceStatusQuery) (*InvoiceStatusResult, error) {
	groups := s.groupByInvoice(rows, query)
	now := s.now()

	records := make([]models.InvoiceRecord, 0, len(groups.order))
	summary := &models.AccountSummary{
		TotalDueAmount:  decimal.Zero,
		TotalPaidAmount: decimal.Zero,
	}

	for _, invoiceNumber := range groups.order {
		groupRows := groups.byNumber[invoiceNumber]
		base := &groupRows[0]

		ilAmount, spAmount := sumByDocumentType(groupRows)
		classification := ClassifyRow(base, now)

		// Paid invoices net to the full IL total; SP offsets only reduce
		// what is still due.
		netAmount := ilAmount.Sub(spAmount)
		if classification.Status == models.StatusPaid {
			netAmount = ilAmount
		}

		records = append(records, models.InvoiceRecord{
			SupplierName:   base.VendorName,
			SupplierSECS:   base.Account,
			VendorCode:     base.Vendor,
			InvoiceNumber:  invoiceNumber,
			InvoiceDate:    base.EntryDate,
			PaymentDueDate: base.PaymentDate,
			DocumentType:   models.DocumentTypeAggregated,
			Amount:         netAmount,
			Currency:       base.Currency,
			Remark:         classification.Remark,
			Status:         classification.Status,
		})

		summary.InvoiceCount++
		if classification.Status == models.StatusPaid {
			summary.PaidCount++
			summary.TotalPaidAmount = summary.TotalPaidAmount.Add(ilAmount)
		} else {
			summary.DueCount++
			summary.TotalDueAmount = summary.TotalDueAmount.Add(ilAmount.Sub(spAmount))
		}
	}

	slog.Info("account invoice report generated",
		"account", query.Account,
		"invoice_count", summary.InvoiceCount,
		"due_count", summary.DueCount,
		"paid_count", summary.PaidCount)

	return &InvoiceStatusResult{
		Invoices:       records,
		AccountSummary: summary,
	}, nil
}

// invoiceGroups is an insertion-ordered multi-map from invoice number to
// that invoice's ledger rows. Order determines both output order and
// which row is the group's representative for classification.
type invoiceGroups struct {
	order    []string
	byNumber map[string][]models.LedgerRow
}

func (s *invoiceService) groupByInvoice(rows []models.LedgerRow, query dto.InvoiceStatusQuery) invoiceGroups {
	groups := invoiceGroups{
		byNumber: make(map[string][]models.LedgerRow),
	}

	for _, row := range rows {
		if int64(row.Account) != query.Account {
			continue
		}
		if !row.IsInvoiceDocument() {
			continue
		}

		entryDate := models.Normalize(row.EntryDate)
		if entryDate == "" {
			continue
		}
		invoiceDate, err := time.Parse(models.DateLayout, entryDate)
		if err != nil {
			// Rows with unreadable dates are silently skipped, never a
			// request failure.
			continue
		}
		if query.StartDate != nil && invoiceDate.Before(*query.StartDate) {
			continue
		}
		if query.EndDate != nil && invoiceDate.After(*query.EndDate) {
			continue
		}

		invoiceNumber := row.InvoiceNumber()
		if invoiceNumber == "" {
			continue
		}

		if _, seen := groups.byNumber[invoiceNumber]; !seen {
			groups.order = append(groups.order, invoiceNumber)
		}
		groups.byNumber[invoiceNumber] = append(groups.byNumber[invoiceNumber], row)
	}

	return groups
}

// sumByDocumentType totals the absolute amounts of IL and SP rows.
func sumByDocumentType(rows []models.LedgerRow) (ilAmount, spAmount decimal.Decimal) {
	ilAmount = decimal.Zero
	spAmount = decimal.Zero
	for i := range rows {
		switch rows[i].NormalizedDocumentType() {
		case models.DocumentTypeInvoice:
			ilAmount = ilAmount.Add(rows[i].AbsAmount())
		case models.DocumentTypeClearing:
			spAmount = spAmount.Add(rows[i].AbsAmount())
		}
	}
	return ilAmount, spAmount
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvoiceNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidDateRange):
		return "invalid_range"
	case errors.Is(err, ErrUpstreamUnavailable), errors.Is(err, ErrUpstreamBadPayload):
		return "upstream_error"
	default:
		return "error"
	}
}

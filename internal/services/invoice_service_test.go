package services_test

import (
	"context"
	"testing"
	"time"

	"invoice-status-api/internal/dto"
	"invoice-status-api/internal/models"
	"invoice-status-api/internal/services"
	"invoice-status-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	ledgerSource   *service_mocks.MockLedgerSourceInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	invoiceService services.InvoiceServiceInterface
	now            time.Time
}

func TestInvoiceServiceSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.ledgerSource = service_mocks.NewMockLedgerSourceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	s.metrics.EXPECT().
		RecordStatusRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()

	s.invoiceService = services.NewInvoiceServiceWithClock(
		s.ledgerSource,
		s.metrics,
		func() time.Time { return s.now },
	)
}

func (s *InvoiceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvoiceServiceTestSuite) ilRow(account int64, invoice, entryDate string, amount float64) models.LedgerRow {
	return models.LedgerRow{
		Account:       models.AccountNumber(account),
		ReferenceKey3: invoice,
		DocumentType:  "IL",
		EntryDate:     entryDate,
		PaymentDate:   "2024-06-30",
		VendorName:    gofakeit.Company(),
		Vendor:        "V-1001",
		Amount:        models.NewAmount(decimal.NewFromFloat(amount)),
		Currency:      "INR",
	}
}

func (s *InvoiceServiceTestSuite) spRow(account int64, invoice, entryDate string, amount float64) models.LedgerRow {
	row := s.ilRow(account, invoice, entryDate, -amount)
	row.DocumentType = "SP"
	return row
}

func markPaid(row *models.LedgerRow, bpClearingDate string) {
	row.ClearingDocument = "2000000001"
	row.ClearingDate = bpClearingDate
	row.VendorClearingDocNo = "VC-1"
	row.BPClearingDate = bpClearingDate
}

// Test: Single Invoice - One Record Per Ledger Row
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_SingleInvoice_OneRecordPerRow() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-1", "2024-05-01", 1000),
		s.spRow(100001, "INV-1", "2024-05-20", 400),
		s.ilRow(100001, "INV-2", "2024-05-02", 500),
		s.ilRow(100002, "INV-1", "2024-05-03", 900),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 2)
	s.Equal("IL", result.Invoices[0].DocumentType)
	s.Equal("SP", result.Invoices[1].DocumentType)
	s.Equal("INV-1", result.Invoices[0].InvoiceNumber)
	s.Nil(result.AccountSummary)
	s.Require().NotNil(result.InvoiceSummary)
}

// Test: Single Invoice - Due - Summary Nets SP Against IL
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_SingleInvoiceDue_SummaryNetsClearing() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-1", "2024-05-01", 1000),
		s.spRow(100001, "INV-1", "2024-05-20", 400),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})

	s.Require().NoError(err)
	s.True(result.InvoiceSummary.AmountDue.Equal(decimal.NewFromInt(600)))
	s.True(result.InvoiceSummary.AmountPaid.IsZero())
	s.Equal("INR", result.InvoiceSummary.Currency)
}

// Test: Single Invoice - Paid - Summary Reports Full IL Total
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_SingleInvoicePaid_SummaryReportsILTotal() {
	paid := s.ilRow(100001, "INV-1", "2024-05-01", 1000)
	markPaid(&paid, "2024-05-10")
	rows := []models.LedgerRow{paid}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})

	s.Require().NoError(err)
	s.Equal(models.StatusPaid, result.Invoices[0].Status)
	s.True(result.InvoiceSummary.AmountPaid.Equal(decimal.NewFromInt(1000)))
	s.True(result.InvoiceSummary.AmountDue.IsZero())
}

// Test: Single Invoice - Classification From First Row Applies To All Rows
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_SingleInvoice_FirstRowClassificationAppliesToAll() {
	first := s.ilRow(100001, "INV-1", "2024-05-01", 1000)
	markPaid(&first, "2024-05-10")
	second := s.spRow(100001, "INV-1", "2024-05-20", 1000)
	rows := []models.LedgerRow{first, second}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 2)
	s.Equal(result.Invoices[0].Remark, result.Invoices[1].Remark)
	s.Equal(result.Invoices[0].Status, result.Invoices[1].Status)
	s.Equal(models.StatusPaid, result.Invoices[1].Status)
}

// Test: Single Invoice - Not In Ledger - ErrInvoiceNotFound
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_SingleInvoiceMissing_ReturnsNotFound() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-1", "2024-05-01", 1000),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-404",
	})

	s.Nil(result)
	s.ErrorIs(err, services.ErrInvoiceNotFound)
}

// Test: Single Invoice - Wrong Account - ErrInvoiceNotFound
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_SingleInvoiceOtherAccount_ReturnsNotFound() {
	rows := []models.LedgerRow{
		s.ilRow(100002, "INV-1", "2024-05-01", 1000),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	_, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})

	s.ErrorIs(err, services.ErrInvoiceNotFound)
}

// Test: All Invoices - One Aggregated Record Per Invoice In First-Seen Order
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoices_AggregatedRecordsInOrder() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-B", "2024-05-02", 500),
		s.ilRow(100001, "INV-A", "2024-05-01", 1000),
		s.spRow(100001, "INV-B", "2024-05-20", 200),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 2)
	s.Equal("INV-B", result.Invoices[0].InvoiceNumber)
	s.Equal("INV-A", result.Invoices[1].InvoiceNumber)
	s.Equal(models.DocumentTypeAggregated, result.Invoices[0].DocumentType)
	s.True(result.Invoices[0].Amount.Equal(decimal.NewFromInt(300)))
	s.Nil(result.InvoiceSummary)
	s.Require().NotNil(result.AccountSummary)
}

// Test: All Invoices - Account Summary Counters And Totals
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoices_SummaryCountersAndTotals() {
	paid := s.ilRow(100001, "INV-P", "2024-05-01", 750)
	markPaid(&paid, "2024-05-10")
	rows := []models.LedgerRow{
		paid,
		s.ilRow(100001, "INV-D", "2024-05-02", 500),
		s.spRow(100001, "INV-D", "2024-05-21", 100),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})

	s.Require().NoError(err)
	summary := result.AccountSummary
	s.Equal(2, summary.InvoiceCount)
	s.Equal(1, summary.PaidCount)
	s.Equal(1, summary.DueCount)
	s.True(summary.TotalPaidAmount.Equal(decimal.NewFromInt(750)))
	s.True(summary.TotalDueAmount.Equal(decimal.NewFromInt(400)))
}

// Test: All Invoices - Paid Invoice Net Ignores SP Offsets
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoicesPaid_NetIgnoresClearingRows() {
	paid := s.ilRow(100001, "INV-P", "2024-05-01", 1000)
	markPaid(&paid, "2024-05-10")
	offset := s.spRow(100001, "INV-P", "2024-05-11", 1000)
	rows := []models.LedgerRow{paid, offset}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 1)
	s.True(result.Invoices[0].Amount.Equal(decimal.NewFromInt(1000)))
	s.True(result.AccountSummary.TotalPaidAmount.Equal(decimal.NewFromInt(1000)))
}

// Test: All Invoices - Date Range Filter On Entry Date
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoices_DateRangeFiltersEntryDate() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-OLD", "2024-01-01", 100),
		s.ilRow(100001, "INV-IN", "2024-05-15", 200),
		s.ilRow(100001, "INV-NEW", "2024-06-20", 300),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:   100001,
		StartDate: &start,
		EndDate:   &end,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 1)
	s.Equal("INV-IN", result.Invoices[0].InvoiceNumber)
}

// Test: All Invoices - Boundary Dates Are Inclusive
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoices_BoundaryDatesInclusive() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-START", "2024-05-01", 100),
		s.ilRow(100001, "INV-END", "2024-05-31", 200),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:   100001,
		StartDate: &start,
		EndDate:   &end,
	})

	s.Require().NoError(err)
	s.Len(result.Invoices, 2)
}

// Test: All Invoices - Unreadable Entry Dates Are Skipped, Not Fatal
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoices_BadEntryDatesSkipped() {
	bad := s.ilRow(100001, "INV-BAD", "05/15/2024", 100)
	rows := []models.LedgerRow{
		bad,
		s.ilRow(100001, "INV-OK", "2024-05-15", 200),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 1)
	s.Equal("INV-OK", result.Invoices[0].InvoiceNumber)
}

// Test: All Invoices - Empty Account - Empty Report, Not An Error
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_AllInvoicesEmptyAccount_EmptyReport() {
	rows := []models.LedgerRow{
		s.ilRow(100002, "INV-1", "2024-05-01", 100),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})

	s.Require().NoError(err)
	s.Empty(result.Invoices)
	s.Equal(0, result.AccountSummary.InvoiceCount)
}

// Test: Invalid Date Range - Rejected Before Upstream Fetch
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_InvalidDateRange_RejectedWithoutFetch() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:   100001,
		StartDate: &start,
		EndDate:   &end,
	})

	s.ErrorIs(err, services.ErrInvalidDateRange)
}

// Test: Upstream Failure - Propagated To Caller
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_UpstreamFailure_Propagated() {
	s.ledgerSource.EXPECT().
		FetchRows(s.ctx).
		Return(nil, services.ErrUpstreamUnavailable).
		Times(1)

	_, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})

	s.ErrorIs(err, services.ErrUpstreamUnavailable)
}

// Test: Mode Agreement - Single Invoice Net Matches All-Invoices Record
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_ModesAgreeOnDueAmount() {
	rows := []models.LedgerRow{
		s.ilRow(100001, "INV-1", "2024-05-01", 1200),
		s.spRow(100001, "INV-1", "2024-05-18", 450),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(2)

	single, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})
	s.Require().NoError(err)

	all, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account: 100001,
	})
	s.Require().NoError(err)

	s.Require().Len(all.Invoices, 1)
	s.True(single.InvoiceSummary.AmountDue.Equal(all.Invoices[0].Amount))
	s.True(single.InvoiceSummary.AmountDue.Equal(all.AccountSummary.TotalDueAmount))
}

// Test: Non-Ledger Document Types Are Ignored
func (s *InvoiceServiceTestSuite) TestGetInvoiceStatus_NonInvoiceDocumentTypes_Ignored() {
	other := s.ilRow(100001, "INV-1", "2024-05-01", 999)
	other.DocumentType = "KR"
	rows := []models.LedgerRow{
		other,
		s.ilRow(100001, "INV-1", "2024-05-01", 1000),
	}
	s.ledgerSource.EXPECT().FetchRows(s.ctx).Return(rows, nil).Times(1)

	result, err := s.invoiceService.GetInvoiceStatus(s.ctx, dto.InvoiceStatusQuery{
		Account:       100001,
		InvoiceNumber: "INV-1",
	})

	s.Require().NoError(err)
	s.Require().Len(result.Invoices, 1)
	s.True(result.Invoices[0].Amount.Equal(decimal.NewFromInt(1000)))
}

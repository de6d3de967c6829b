package handlers

import (
	"errors"
	"net/http"

	"invoice-status-api/internal/dto"
	apierrors "invoice-status-api/internal/errors"
	"invoice-status-api/internal/render"
	"invoice-status-api/internal/services"

	"github.com/labstack/echo/v4"
)

// InvoiceHandler handles invoice status lookups
type InvoiceHandler struct {
	invoiceService services.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService services.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// GetRoot reports that the service is up
//
// Method: GET /
// Authentication: None
//
// Success Response: 200 OK
//   - message: Service banner
func (h *InvoiceHandler) GetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Invoice Status API is running",
	})
}

// InvoiceStatus classifies the payment status of supplier invoices
//
// Method: POST /invoice/status
// Authentication: Required (x-api-key)
//
// Request body:
//   - account: Supplier account number (required)
//   - inv: Invoice number (optional; omitted means all invoices for the account)
//   - start_date: YYYY-MM-DD lower bound on entry date (optional)
//   - end_date: YYYY-MM-DD upper bound on entry date (optional)
//
// The optional string parameters accept "none", "null", and "" as absent.
//
// Query parameters:
//   - format: "json" (default) or "md" for a markdown table
//   - page, page_size, max_cols: markdown paging controls
//
// Success Response: 200 OK
//   - invoices: Array of classified invoice records
//   - summary: Per-invoice or per-account summary
//
// A specific invoice that is not in the ledger yet returns 200 with an
// "under process" message rather than an error.
//
// Error Responses:
//   - 400: Validation failure (missing account, bad dates, bad paging)
//   - 401: Missing API key
//   - 403: Invalid API key
//   - 502: Upstream returned an unreadable payload
//   - 503: Upstream unreachable
//   - 500: Internal server error
func (h *InvoiceHandler) InvoiceStatus(c echo.Context) error {
	var req dto.InvoiceStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	req.Clean()
	if err := c.Validate(&req); err != nil {
		return err
	}

	var opts dto.RenderOptions
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &opts); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&opts); err != nil {
		return err
	}
	opts.ApplyDefaults()

	query, err := req.ToQuery()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	result, err := h.invoiceService.GetInvoiceStatus(c.Request().Context(), query)
	if err != nil {
		return h.handleServiceError(c, err, query, opts)
	}

	if opts.Format == dto.FormatMarkdown {
		return c.String(http.StatusOK, renderMarkdownReport(result, opts))
	}

	return c.JSON(http.StatusOK, dto.InvoiceStatusResponse{
		Invoices: result.Invoices,
		Summary:  result.Summary(),
	})
}

func (h *InvoiceHandler) handleServiceError(c echo.Context, err error, query dto.InvoiceStatusQuery, opts dto.RenderOptions) error {
	if errors.Is(err, services.ErrInvoiceNotFound) {
		// Soft outcome: the invoice may simply not have reached the
		// ledger yet, so report it as in flight instead of failing.
		if opts.Format == dto.FormatMarkdown {
			return c.String(http.StatusOK, render.NotFound(query.InvoiceNumber))
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Invoice " + query.InvoiceNumber + " is under process",
		})
	}

	if errors.Is(err, services.ErrInvalidDateRange) {
		return SendError(c, apierrors.ValidationDateRange)
	}

	if errors.Is(err, services.ErrUpstreamBadPayload) {
		return SendError(c, apierrors.UpstreamBadPayload)
	}

	if errors.Is(err, services.ErrUpstreamUnavailable) {
		return SendError(c, apierrors.UpstreamUnavailable)
	}

	return SendSystemError(c, err)
}

func renderMarkdownReport(result *services.InvoiceStatusResult, opts dto.RenderOptions) string {
	rows := render.InvoiceRows(result.Invoices)
	columns := render.DeriveColumns(rows, opts.MaxCols)
	// The summary is appended even to an empty report, so an account with
	// no invoices still shows its zeroed counters.
	return render.Table(rows, columns, opts.Page, opts.PageSize) +
		render.Summary(result.SummaryFields())
}

package dto

import (
	"strings"
	"time"

	"invoice-status-api/internal/models"
)

// Output formats supported by the invoice status endpoint.
const (
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// InvoiceStatusRequest is the request body of POST /invoice/status.
// Optional string fields accept the sentinel values "none", "null", and
// the empty string as absent; call Clean before validating.
type InvoiceStatusRequest struct {
	Account   int64  `json:"account" validate:"required"`
	Inv       string `json:"inv" validate:"omitempty,max=64"`
	StartDate string `json:"start_date" validate:"omitempty,dateformat"`
	EndDate   string `json:"end_date" validate:"omitempty,dateformat"`
}

// Clean normalizes the optional string parameters: values that equal
// "none", "null", or "" after trimming (case-insensitive) become empty,
// everything else is trimmed.
func (r *InvoiceStatusRequest) Clean() {
	r.Inv = cleanOptionalParam(r.Inv)
	r.StartDate = cleanOptionalParam(r.StartDate)
	r.EndDate = cleanOptionalParam(r.EndDate)
}

func cleanOptionalParam(param string) string {
	trimmed := strings.TrimSpace(param)
	switch strings.ToLower(trimmed) {
	case "", "none", "null":
		return ""
	}
	return trimmed
}

// ToQuery converts the cleaned request into a service query, parsing the
// optional date bounds. The returned error names the offending value.
func (r *InvoiceStatusRequest) ToQuery() (InvoiceStatusQuery, error) {
	query := InvoiceStatusQuery{
		Account:       r.Account,
		InvoiceNumber: r.Inv,
	}

	if r.StartDate != "" {
		parsed, err := time.Parse(models.DateLayout, r.StartDate)
		if err != nil {
			return InvoiceStatusQuery{}, &InvalidDateError{Value: r.StartDate}
		}
		query.StartDate = &parsed
	}

	if r.EndDate != "" {
		parsed, err := time.Parse(models.DateLayout, r.EndDate)
		if err != nil {
			return InvoiceStatusQuery{}, &InvalidDateError{Value: r.EndDate}
		}
		query.EndDate = &parsed
	}

	return query, nil
}

// InvalidDateError reports a date parameter that is not a YYYY-MM-DD date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return "Invalid date format: " + e.Value + ". Use YYYY-MM-DD."
}

// InvoiceStatusQuery is the parsed, service-facing form of a status
// request. An empty InvoiceNumber selects the all-invoices mode.
type InvoiceStatusQuery struct {
	Account       int64
	InvoiceNumber string
	StartDate     *time.Time
	EndDate       *time.Time
}

// RenderOptions are the query parameters controlling output format and
// paging of the markdown table.
type RenderOptions struct {
	Format   string `query:"format" validate:"omitempty,output_format"`
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	PageSize int    `query:"page_size" validate:"omitempty,gte=1,lte=50"`
	MaxCols  int    `query:"max_cols" validate:"omitempty,gte=1,lte=50"`
}

// ApplyDefaults fills unset rendering options with their defaults.
func (o *RenderOptions) ApplyDefaults() {
	if o.Format == "" {
		o.Format = FormatJSON
	}
	if o.Page == 0 {
		o.Page = 1
	}
	if o.PageSize == 0 {
		o.PageSize = 10
	}
}

// InvoiceStatusResponse is the JSON response of POST /invoice/status.
// Summary is either a models.InvoiceSummary (specific invoice lookup) or
// a models.AccountSummary (all invoices for an account).
type InvoiceStatusResponse struct {
	Invoices []models.InvoiceRecord `json:"invoices"`
	Summary  interface{}            `json:"summary"`
}

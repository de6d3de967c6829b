package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for all dates in the ledger and API.
const DateLayout = "2006-01-02"

// Ledger document types that participate in invoice status reporting.
// IL rows are invoice debit lines, SP rows are clearing/payment lines
// offsetting them.
const (
	DocumentTypeInvoice  = "IL"
	DocumentTypeClearing = "SP"

	// DocumentTypeAggregated marks output records that summarize
	// multiple underlying ledger rows.
	DocumentTypeAggregated = "Aggregated"
)

// Amount is a decimal amount that tolerates the upstream export's loose
// typing: JSON numbers, quoted numbers, null, empty strings, and missing
// fields all decode without error. Anything unparseable decodes to zero
// rather than failing the whole ledger fetch.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal in an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" || s == "None" {
		a.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}

// AccountNumber is an account identifier that decodes from either a JSON
// number or a quoted numeric string. Non-numeric values decode to zero.
type AccountNumber int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *AccountNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*n = 0
		return nil
	}

	*n = AccountNumber(v)
	return nil
}

// LedgerRow is one record of the upstream financial ledger export. Field
// names mirror the upstream's column headers verbatim.
type LedgerRow struct {
	Account             AccountNumber `json:"Account"`
	ReferenceKey3       string        `json:"Reference key 3"`
	DocumentType        string        `json:"Document type"`
	EntryDate           string        `json:"Entry Date"`
	PaymentDate         string        `json:"Payment Date"`
	VendorName          string        `json:"Vendor name"`
	Vendor              string        `json:"Vendor"`
	Amount              Amount        `json:"Amount in Doc. Curr."`
	Currency            string        `json:"Document Currency"`
	ClearingDocument    string        `json:"Clearing Document"`
	VendorClearingDocNo string        `json:"Vendor Clearing document no"`
	BPClearingDate      string        `json:"BP clearing Date"`
	ClearingDate        string        `json:"Clearing Date"`
}

// Normalize canonicalizes a ledger field value: whitespace is trimmed and
// the export's literal "None" placeholder becomes the empty string.
func Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "None" {
		return ""
	}
	return trimmed
}

// InvoiceNumber returns the row's normalized invoice reference.
func (r *LedgerRow) InvoiceNumber() string {
	return Normalize(r.ReferenceKey3)
}

// NormalizedDocumentType returns the row's normalized document type.
func (r *LedgerRow) NormalizedDocumentType() string {
	return Normalize(r.DocumentType)
}

// IsInvoiceDocument reports whether the row participates in invoice
// status reporting at all.
func (r *LedgerRow) IsInvoiceDocument() bool {
	dt := r.NormalizedDocumentType()
	return dt == DocumentTypeInvoice || dt == DocumentTypeClearing
}

// AbsAmount returns the row's amount as an absolute value. Sign in the
// source data is not semantically meaningful.
func (r *LedgerRow) AbsAmount() decimal.Decimal {
	return r.Amount.Decimal.Abs()
}

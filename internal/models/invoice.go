package models

import (
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment status of an invoice.
type InvoiceStatus string

const (
	StatusDue  InvoiceStatus = "Due"
	StatusPaid InvoiceStatus = "Paid"
)

// InvoiceRecord is one reported invoice line. JSON keys mirror the
// report column headers consumed by downstream clients.
type InvoiceRecord struct {
	SupplierName   string          `json:"Supplier Name"`
	SupplierSECS   AccountNumber   `json:"Supplier SECS"`
	VendorCode     string          `json:"Vendor Code"`
	InvoiceNumber  string          `json:"Invoice Number"`
	InvoiceDate    string          `json:"Invoice Date"`
	PaymentDueDate string          `json:"Payment Due Date"`
	DocumentType   string          `json:"Document Type"`
	Amount         decimal.Decimal `json:"Amount"`
	Currency       string          `json:"Currency"`
	Remark         string          `json:"Remark"`
	Status         InvoiceStatus   `json:"Status"`
}

// InvoiceSummary is the per-invoice summary returned for a specific
// invoice lookup.
type InvoiceSummary struct {
	AmountPaid decimal.Decimal `json:"Amount Paid"`
	AmountDue  decimal.Decimal `json:"Amount Due"`
	Currency   string          `json:"Currency"`
}

// AccountSummary is the aggregate summary returned when reporting all
// invoices for an account.
type AccountSummary struct {
	InvoiceCount    int             `json:"invoice_count"`
	DueCount        int             `json:"due_count"`
	PaidCount       int             `json:"paid_count"`
	TotalDueAmount  decimal.Decimal `json:"total_due_amount"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
}

// SummaryField is one labeled summary value in display order. The
// markdown renderer consumes these instead of reflecting over structs so
// summaries keep a stable field order.
type SummaryField struct {
	Key   string
	Value interface{}
}

// SummaryFields returns the summary's fields in display order.
func (s *InvoiceSummary) SummaryFields() []SummaryField {
	return []SummaryField{
		{Key: "Amount Paid", Value: s.AmountPaid},
		{Key: "Amount Due", Value: s.AmountDue},
		{Key: "Currency", Value: s.Currency},
	}
}

// SummaryFields returns the summary's fields in display order.
func (s *AccountSummary) SummaryFields() []SummaryField {
	return []SummaryField{
		{Key: "invoice_count", Value: s.InvoiceCount},
		{Key: "due_count", Value: s.DueCount},
		{Key: "paid_count", Value: s.PaidCount},
		{Key: "total_due_amount", Value: s.TotalDueAmount},
		{Key: "total_paid_amount", Value: s.TotalPaidAmount},
	}
}

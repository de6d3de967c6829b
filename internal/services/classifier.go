package services

import (
	"fmt"
	"time"

	"invoice-status-api/internal/models"
)

// paidReflectionWindow is how long after the BP clearing date a payment
// is still considered in transit to the supplier's bank account.
const paidReflectionWindow = 4 * 24 * time.Hour

// Classification is the outcome of classifying one ledger row.
type Classification struct {
	Remark string
	Status models.InvoiceStatus
}

// clearingFields holds the normalized field values the status rules
// inspect. Presence/absence of these drives the classification.
type clearingFields struct {
	Ref                 string
	ClearingDocument    string
	VendorClearingDocNo string
	BPClearingDate      string
	ClearingDate        string
}

// statusRule is one entry of the ordered classification rule table.
// Rules are evaluated strictly in order; the first match wins.
type statusRule struct {
	matches func(f clearingFields) bool
	outcome func(f clearingFields, now time.Time) Classification
}

var statusRules = []statusRule{
	// No invoice reference yet: the invoice has not been booked.
	{
		matches: func(f clearingFields) bool {
			return f.Ref == ""
		},
		outcome: func(f clearingFields, now time.Time) Classification {
			return Classification{
				Remark: "Invoice under process",
				Status: models.StatusDue,
			}
		},
	},
	// Booked, no clearing activity of any kind.
	{
		matches: func(f clearingFields) bool {
			return f.ClearingDocument == "" && f.VendorClearingDocNo == "" &&
				f.BPClearingDate == "" && f.ClearingDate == ""
		},
		outcome: func(f clearingFields, now time.Time) Classification {
			return Classification{
				Remark: fmt.Sprintf("Invoice %s has been processed and booked for payment.", f.Ref),
				Status: models.StatusDue,
			}
		},
	},
	// Cleared internally but not yet confirmed by the bank partner.
	{
		matches: func(f clearingFields) bool {
			return f.ClearingDocument != "" && f.ClearingDate != "" &&
				f.VendorClearingDocNo == "" && f.BPClearingDate == ""
		},
		outcome: func(f clearingFields, now time.Time) Classification {
			return Classification{
				Remark: fmt.Sprintf("Invoice %s has been processed and sent to AP for payment.", f.Ref),
				Status: models.StatusDue,
			}
		},
	},
	// Fully cleared: the payment went out on the BP clearing date.
	{
		matches: func(f clearingFields) bool {
			return f.ClearingDocument != "" && f.ClearingDate != "" &&
				f.VendorClearingDocNo != "" && f.BPClearingDate != ""
		},
		outcome: func(f clearingFields, now time.Time) Classification {
			paidDate, err := time.Parse(models.DateLayout, f.BPClearingDate)
			if err == nil && now.Sub(paidDate) <= paidReflectionWindow {
				return Classification{
					Remark: fmt.Sprintf(
						"Payment for invoice %s has been processed on %s. It will be reflected in your bank account within 2 working days.",
						f.Ref, f.BPClearingDate),
					Status: models.StatusPaid,
				}
			}
			// Older payments, and unparseable BP clearing dates, get the
			// remark without the in-transit clause. An unreadable date never
			// demotes a fully cleared invoice.
			return Classification{
				Remark: fmt.Sprintf("Payment for invoice %s has been processed on %s.", f.Ref, f.BPClearingDate),
				Status: models.StatusPaid,
			}
		},
	},
}

// ClassifyRow determines the human-readable remark and payment status for
// one ledger row. It is total: rows matching no rule get a catch-all Due
// classification. The caller supplies now so the time-window branch of
// the fully-cleared rule stays deterministic under test.
func ClassifyRow(row *models.LedgerRow, now time.Time) Classification {
	fields := clearingFields{
		Ref:                 models.Normalize(row.ReferenceKey3),
		ClearingDocument:    models.Normalize(row.ClearingDocument),
		VendorClearingDocNo: models.Normalize(row.VendorClearingDocNo),
		BPClearingDate:      models.Normalize(row.BPClearingDate),
		ClearingDate:        models.Normalize(row.ClearingDate),
	}

	for _, rule := range statusRules {
		if rule.matches(fields) {
			return rule.outcome(fields, now)
		}
	}

	return Classification{
		Remark: fmt.Sprintf("Invoice %s found, but does not match defined status rules.", fields.Ref),
		Status: models.StatusDue,
	}
}

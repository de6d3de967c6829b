// Package render turns invoice reports into paginated markdown tables
// for clients that consume text instead of structured data.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"invoice-status-api/internal/models"

	"github.com/shopspring/decimal"
)

// Row is one table row keyed by column name.
type Row map[string]interface{}

// PriorityColumns are shown first, in this order, when present.
var PriorityColumns = []string{
	"Supplier Name",
	"Supplier SECS",
	"Vendor Code",
	"Invoice Number",
	"Invoice Date",
	"Payment Due Date",
	"Amount",
	"Currency",
	"Remark",
	"Status",
}

// dateInputLayouts are the timestamp shapes accepted by the date
// formatter, tried in order.
var dateInputLayouts = []string{
	models.DateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

const displayDateLayout = "02-Jan-2006"

// columnFormatters maps column names to their display formatter.
var columnFormatters = map[string]func(interface{}) string{
	"Invoice Date":      formatDate,
	"Payment Due Date":  formatDate,
	"Amount":            formatAmount,
	"Amount Paid":       formatAmount,
	"Amount Due":        formatAmount,
	"total_due_amount":  formatAmount,
	"total_paid_amount": formatAmount,
}

// InvoiceRows converts invoice records into renderable rows.
func InvoiceRows(records []models.InvoiceRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			"Supplier Name":    r.SupplierName,
			"Supplier SECS":    int64(r.SupplierSECS),
			"Vendor Code":      r.VendorCode,
			"Invoice Number":   r.InvoiceNumber,
			"Invoice Date":     r.InvoiceDate,
			"Payment Due Date": r.PaymentDueDate,
			"Document Type":    r.DocumentType,
			"Amount":           r.Amount,
			"Currency":         r.Currency,
			"Remark":           r.Remark,
			"Status":           string(r.Status),
		})
	}
	return rows
}

// DeriveColumns derives the table headers from the union of keys across
// all rows. Priority columns that exist appear first; the remaining keys
// follow sorted by frequency (descending) then name (ascending). maxCols
// caps the column count when positive.
func DeriveColumns(rows []Row, maxCols int) []string {
	frequency := make(map[string]int)
	for _, row := range rows {
		for key := range row {
			frequency[key]++
		}
	}

	if len(frequency) == 0 {
		columns := append([]string(nil), PriorityColumns...)
		return capColumns(columns, maxCols)
	}

	var columns []string
	inPriority := make(map[string]bool)
	for _, column := range PriorityColumns {
		if frequency[column] > 0 {
			columns = append(columns, column)
			inPriority[column] = true
		}
	}

	var rest []string
	for key := range frequency {
		if !inPriority[key] {
			rest = append(rest, key)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		if frequency[rest[i]] != frequency[rest[j]] {
			return frequency[rest[i]] > frequency[rest[j]]
		}
		return strings.ToLower(rest[i]) < strings.ToLower(rest[j])
	})
	columns = append(columns, rest...)

	return capColumns(columns, maxCols)
}

func capColumns(columns []string, maxCols int) []string {
	if maxCols > 0 && maxCols < len(columns) {
		return columns[:maxCols]
	}
	return columns
}

// Table renders a markdown table of the given page of rows, followed by
// a pager hint (or an empty-result marker).
func Table(rows []Row, columns []string, page, pageSize int) string {
	var lines []string
	lines = append(lines, "| "+strings.Join(columns, " | ")+" |")

	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = "---"
	}
	lines = append(lines, "|"+strings.Join(separators, "|")+"|")

	total := len(rows)
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	for _, row := range rows[start:end] {
		cells := make([]string, 0, len(columns))
		for _, column := range columns {
			cells = append(cells, coerceToText(column, row[column]))
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}

	if total == 0 {
		lines = append(lines, "\n_No invoices found._")
	} else {
		pages := (total + pageSize - 1) / pageSize
		lines = append(lines, fmt.Sprintf("\n_Page **%d** of **%d** · %d rows_", page, pages, total))
	}

	return strings.Join(lines, "\n")
}

// Summary renders a compact summary block below the table.
func Summary(fields []models.SummaryField) string {
	if len(fields) == 0 {
		return ""
	}

	items := make([]string, 0, len(fields))
	for _, field := range fields {
		items = append(items, fmt.Sprintf("- **%s**: %s", field.Key, coerceToText(field.Key, field.Value)))
	}
	return "\n\n**Summary**\n" + strings.Join(items, "\n")
}

// NotFound renders the soft response for an invoice that is not in the
// ledger yet.
func NotFound(invoiceNumber string) string {
	return fmt.Sprintf("**Invoice `%s` is under process**", invoiceNumber)
}

// coerceToText formats a value by column, then makes it safe to embed in
// a markdown table cell: newlines are stripped and pipes escaped.
func coerceToText(column string, raw interface{}) string {
	var text string
	if formatter, ok := columnFormatters[column]; ok {
		text = formatter(raw)
	} else {
		text = plainText(raw)
	}

	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.TrimSpace(text)
	return strings.ReplaceAll(text, "|", "\\|")
}

func plainText(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}

// formatDate renders ISO-like date strings as DD-MMM-YYYY; anything
// unrecognized passes through unchanged.
func formatDate(raw interface{}) string {
	s, ok := raw.(string)
	if !ok {
		return plainText(raw)
	}
	if s == "" {
		return ""
	}

	for _, layout := range dateInputLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.Format(displayDateLayout)
		}
	}
	return s
}

// formatAmount renders numeric amounts with thousands separators and two
// decimals; anything non-numeric passes through unchanged.
func formatAmount(raw interface{}) string {
	var d decimal.Decimal
	switch v := raw.(type) {
	case decimal.Decimal:
		d = v
	case models.Amount:
		d = v.Decimal
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return v
		}
		d = parsed
	case nil:
		return ""
	default:
		return plainText(raw)
	}
	return groupThousands(d.StringFixed(2))
}

// groupThousands inserts comma separators into a fixed-point decimal
// string, preserving any leading sign.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + fracPart
}

package services

import (
	"fmt"
	"math/rand"
	"time"

	"invoice-status-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// vendorInfo is one supplier of the generator's vendor pool.
type vendorInfo struct {
	Name string
	Code string
}

// Invoice lifecycle profiles the generator produces. Together they cover
// every status rule the classifier knows.
const (
	profileBooked = iota
	profileSentToAP
	profilePaidRecently
	profilePaidLongAgo
	profilePartiallyCleared
	profileCount
)

const (
	baseAccountNumber = 100000
	paymentTermDays   = 30
)

type ledgerGenerator struct {
	vendorPool []vendorInfo
	faker      *gofakeit.Faker
	rng        *rand.Rand
}

// NewLedgerGenerator creates a generator with a time-based seed.
func NewLedgerGenerator() LedgerGeneratorInterface {
	return NewLedgerGeneratorWithSeed(uint64(time.Now().UnixNano()))
}

// NewLedgerGeneratorWithSeed creates a deterministic generator, so tests
// and reproducible dev data sets can pin the seed.
func NewLedgerGeneratorWithSeed(seed uint64) LedgerGeneratorInterface {
	return &ledgerGenerator{
		vendorPool: initializeVendorPool(),
		faker:      gofakeit.New(seed),
		rng:        rand.New(rand.NewSource(int64(seed))),
	}
}

// initializeVendorPool creates a pool of realistic suppliers with their
// vendor master codes.
func initializeVendorPool() []vendorInfo {
	return []vendorInfo{
		{"Acme Industrial Supply", "300101"},
		{"Northfield Logistics", "300114"},
		{"Brightline Office Solutions", "300127"},
		{"Vertex Components GmbH", "300142"},
		{"Hollis & Crane Facilities", "300155"},
		{"Meridian Packaging Co", "300163"},
		{"Calder Freight Services", "300178"},
		{"Summit IT Consulting", "300184"},
		{"Pinewood Catering Group", "300199"},
		{"Atlas Machine Works", "300207"},
		{"Redwood Chemical Trading", "300218"},
		{"Lakeside Print & Media", "300226"},
		{"Orion Electrical Wholesale", "300239"},
		{"Harbor Marine Supplies", "300244"},
		{"Fairview Cleaning Services", "300251"},
		{"Quantum Lab Equipment", "300266"},
		{"Sterling Legal Advisors", "300270"},
		{"Crestway Construction", "300288"},
		{"Bluepeak Telecom", "300293"},
		{"Ironside Security Systems", "300305"},
	}
}

// GenerateLedger produces a fake ledger export covering accountCount
// accounts with invoicesPerAccount invoices each, spread over the last
// days days of entry dates.
func (g *ledgerGenerator) GenerateLedger(accountCount, invoicesPerAccount, days int) []models.LedgerRow {
	if accountCount < 1 {
		accountCount = 1
	}
	if invoicesPerAccount < 1 {
		invoicesPerAccount = 1
	}
	if days < 1 {
		days = 1
	}

	today := time.Now().UTC()
	rows := make([]models.LedgerRow, 0, accountCount*invoicesPerAccount*2)

	for a := 0; a < accountCount; a++ {
		account := models.AccountNumber(baseAccountNumber + a)
		for i := 0; i < invoicesPerAccount; i++ {
			invoiceNumber := fmt.Sprintf("INV%d-%04d", account, i+1)
			entryDate := today.AddDate(0, 0, -g.rng.Intn(days))
			rows = append(rows, g.generateInvoice(account, invoiceNumber, entryDate, today)...)
		}
	}

	return rows
}

// generateInvoice produces the ledger rows of one invoice in a randomly
// chosen lifecycle profile.
func (g *ledgerGenerator) generateInvoice(account models.AccountNumber, invoiceNumber string, entryDate, today time.Time) []models.LedgerRow {
	vendor := g.vendorPool[g.rng.Intn(len(g.vendorPool))]
	amount := decimal.NewFromFloat(g.faker.Price(100, 50000)).Round(2)
	currency := g.faker.RandomString([]string{"USD", "USD", "USD", "EUR", "GBP"})

	row := models.LedgerRow{
		Account:       account,
		ReferenceKey3: invoiceNumber,
		DocumentType:  models.DocumentTypeInvoice,
		EntryDate:     entryDate.Format(models.DateLayout),
		PaymentDate:   entryDate.AddDate(0, 0, paymentTermDays).Format(models.DateLayout),
		VendorName:    vendor.Name,
		Vendor:        vendor.Code,
		Amount:        models.NewAmount(amount),
		Currency:      currency,
	}

	switch g.rng.Intn(profileCount) {
	case profileBooked:
		return []models.LedgerRow{row}

	case profileSentToAP:
		row.ClearingDocument = g.clearingDocumentNumber()
		row.ClearingDate = entryDate.AddDate(0, 0, 1+g.rng.Intn(5)).Format(models.DateLayout)
		return []models.LedgerRow{row}

	case profilePaidRecently:
		return []models.LedgerRow{g.markPaid(row, today.AddDate(0, 0, -g.rng.Intn(4)))}

	case profilePaidLongAgo:
		return []models.LedgerRow{g.markPaid(row, today.AddDate(0, 0, -(5 + g.rng.Intn(60))))}

	default: // profilePartiallyCleared
		clearing := row
		clearing.DocumentType = models.DocumentTypeClearing
		// Signed clearing amounts mimic the real export; consumers take
		// absolute values.
		partial := amount.Div(decimal.NewFromInt(int64(2 + g.rng.Intn(3)))).Round(2)
		clearing.Amount = models.NewAmount(partial.Neg())
		clearing.EntryDate = entryDate.AddDate(0, 0, 2+g.rng.Intn(10)).Format(models.DateLayout)
		return []models.LedgerRow{row, clearing}
	}
}

// markPaid fills in the full set of clearing fields for a paid invoice.
func (g *ledgerGenerator) markPaid(row models.LedgerRow, paidDate time.Time) models.LedgerRow {
	row.ClearingDocument = g.clearingDocumentNumber()
	row.VendorClearingDocNo = g.clearingDocumentNumber()
	row.ClearingDate = paidDate.Format(models.DateLayout)
	row.BPClearingDate = paidDate.Format(models.DateLayout)
	return row
}

func (g *ledgerGenerator) clearingDocumentNumber() string {
	return fmt.Sprintf("20%08d", g.rng.Intn(100000000))
}

package report

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"gemtrade/database"
	"gemtrade/model"
	"gemtrade/money"
)

// InvoiceOptions are the company settings printed on an invoice.
type InvoiceOptions struct {
	CompanyName    string
	TaxRatePercent float64
}

// BuildInvoice assembles the invoice of a sale. It returns nil when the
// sale does not exist. Missing clients and stones print as "Unknown".
func BuildInvoice(db *sqlx.DB, saleID string, opts InvoiceOptions, now time.Time) (*model.Invoice, error) {
	sale, err := database.GetSaleByID(db, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}

	inv := &model.Invoice{
		IssueDate:   now.Format("2006-01-02"),
		CompanyName: opts.CompanyName,
		Sale:        *sale,
		ClientName:  database.UnknownName,
		StoneType:   database.UnknownName,
		Carat:       sale.Carat,
	}

	if sale.ClientID != "" {
		c, err := database.GetClientByID(db, sale.ClientID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			inv.Client = *c
			inv.ClientName = c.Name
		}
	}
	if sale.StoneID != "" {
		stone, err := database.GetInventoryByID(db, sale.StoneID)
		if err != nil {
			return nil, err
		}
		if stone != nil {
			inv.Stone = *stone
			inv.StoneType = stone.Type
			if inv.Carat == "" {
				inv.Carat = stone.Carat
			}
			certs, err := database.GetCertificationsByStone(db, stone.ID)
			if err != nil {
				return nil, err
			}
			inv.Certificates = certs
		}
	}

	subtotal, tax, total := Totals(sale.TotalAmount, opts.TaxRatePercent)
	inv.Subtotal = money.FormatDecimal(subtotal)
	inv.Tax = money.FormatDecimal(tax)
	inv.Total = money.FormatDecimal(total)
	inv.TaxRatePct = decimal.NewFromFloat(opts.TaxRatePercent).String()

	number, err := database.GetInvoiceNumber(db, sale.ID)
	if err != nil {
		return nil, fmt.Errorf("BuildInvoice: %w", err)
	}
	inv.Number = number
	return inv, nil
}

// Totals adds tax at ratePercent to the sale amount, rounding the tax to
// two decimals.
func Totals(amount string, ratePercent float64) (subtotal, tax, total decimal.Decimal) {
	subtotal = money.ParseDecimal(amount)
	tax = subtotal.Mul(decimal.NewFromFloat(ratePercent)).Div(decimal.NewFromInt(100)).Round(2)
	return subtotal, tax, subtotal.Add(tax)
}

package aggregation

import (
	"sort"
	"time"

	"gemtrade/model"
	"gemtrade/money"
)

// DetectLowStock counts items below LowStockThreshold and names the types of
// the first two of them.
func DetectLowStock(inventory []model.InventoryItem) model.LowStockSummary {
	summary := model.LowStockSummary{ExampleTypes: []string{}}
	for _, item := range inventory {
		if money.Parse(item.Quantity) < LowStockThreshold {
			summary.Count++
			if len(summary.ExampleTypes) < 2 {
				summary.ExampleTypes = append(summary.ExampleTypes, item.Type)
			}
		}
	}
	return summary
}

// AverageSaleValue is the mean sale amount, 0 without sales.
func AverageSaleValue(sales []model.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}
	var total float64
	for _, s := range sales {
		total += money.Parse(s.TotalAmount)
	}
	return money.Clamp(total / float64(len(sales)))
}

// DetectPriceVariance returns the first stone type, in inventory order,
// whose population variance of price per carat exceeds
// PriceVarianceThreshold.
func DetectPriceVariance(inventory []model.InventoryItem) (model.PriceVarianceCandidate, bool) {
	for _, g := range groupByType(inventory) {
		prices := make([]float64, len(g.Items))
		for i, item := range g.Items {
			prices[i] = money.Parse(item.PricePerCarat)
		}
		if v := money.Clamp(populationVariance(prices)); v > PriceVarianceThreshold {
			return model.PriceVarianceCandidate{Type: g.Type, Variance: v, Items: len(g.Items)}, true
		}
	}
	return model.PriceVarianceCandidate{}, false
}

// IsPeakSeason reports whether now falls in October, November or December.
func IsPeakSeason(now time.Time) bool {
	m := now.Month()
	return m >= time.October && m <= time.December
}

// BuildStockReport summarises the inventory per stone type for the printed
// and exported stock report.
func BuildStockReport(inventory []model.InventoryItem, now time.Time) model.StockReport {
	report := model.StockReport{
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Rows:        []model.StockReportRow{},
		Items:       make([]model.InventoryItem, len(inventory)),
		TotalItems:  len(inventory),
	}
	copy(report.Items, inventory)
	sort.SliceStable(report.Items, func(i, j int) bool {
		if report.Items[i].Type != report.Items[j].Type {
			return report.Items[i].Type < report.Items[j].Type
		}
		return report.Items[i].SKU < report.Items[j].SKU
	})

	for _, g := range groupByType(inventory) {
		row := model.StockReportRow{Type: g.Type, Items: len(g.Items)}
		for _, item := range g.Items {
			qty := money.Parse(item.Quantity)
			row.Quantity += qty
			row.TotalCarat += money.Parse(item.Carat)
			row.Value += qty * money.Parse(item.SellingPrice)
			if qty < LowStockThreshold {
				row.LowStock++
			}
		}
		row.Quantity = money.Clamp(row.Quantity)
		row.TotalCarat = money.Clamp(row.TotalCarat)
		row.Value = money.Clamp(row.Value)
		report.TotalQty += row.Quantity
		report.TotalValue += row.Value
		report.Rows = append(report.Rows, row)
	}
	report.TotalQty = money.Clamp(report.TotalQty)
	report.TotalValue = money.Clamp(report.TotalValue)
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Type < report.Rows[j].Type
	})
	return report
}

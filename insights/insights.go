// Package insights turns a dashboard snapshot into a short list of
// prioritised recommendations.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"gemtrade/model"
	"gemtrade/money"
)

// MaxInsights bounds the list shown on the dashboard.
const MaxInsights = 4

// PremiumSaleThreshold is the average sale value above which the premium
// market rule fires.
const PremiumSaleThreshold = 100_000

// rule produces at most one insight from a snapshot.
type rule struct {
	category string
	eval     func(model.Snapshot) (model.Insight, bool)
}

// rules are evaluated in this order, which is also the output order.
var rules = []rule{
	{model.InsightStock, lowStockRule},
	{model.InsightDemand, demandRule},
	{model.InsightGrowth, premiumRule},
	{model.InsightTrend, seasonalRule},
	{model.InsightGrowth, pricingRule},
}

// Generate evaluates every rule against snap and returns the first
// MaxInsights that fired, in rule order.
func Generate(snap model.Snapshot) []model.Insight {
	out := make([]model.Insight, 0, MaxInsights)
	for _, r := range rules {
		if len(out) == MaxInsights {
			break
		}
		if in, ok := r.eval(snap); ok {
			in.Category = r.category
			out = append(out, in)
		}
	}
	return out
}

func lowStockRule(snap model.Snapshot) (model.Insight, bool) {
	if snap.LowStock.Count <= 0 {
		return model.Insight{}, false
	}
	return model.Insight{
		Title: "Low Stock Alert",
		Description: fmt.Sprintf("%d items are running low on stock, including %s. Consider restocking soon.",
			snap.LowStock.Count, strings.Join(snap.LowStock.ExampleTypes, ", ")),
		Priority: model.InsightHigh,
		Action:   "Restock immediately",
	}, true
}

// demandRule picks the type with the most sales from the performance
// ranking, which itself is ordered by demand score.
func demandRule(snap model.Snapshot) (model.Insight, bool) {
	if len(snap.StonePerformance) == 0 {
		return model.Insight{}, false
	}
	bySales := make([]model.StonePerformanceSummary, len(snap.StonePerformance))
	copy(bySales, snap.StonePerformance)
	sort.SliceStable(bySales, func(i, j int) bool {
		return bySales[i].TotalSales > bySales[j].TotalSales
	})
	top := bySales[0]
	return model.Insight{
		Title: "High Demand Stone",
		Description: fmt.Sprintf("%s shows the highest demand with %d sales. Consider increasing stock levels.",
			top.Type, top.TotalSales),
		Priority: model.InsightMedium,
		Action:   "Increase inventory",
	}, true
}

func premiumRule(snap model.Snapshot) (model.Insight, bool) {
	if snap.AverageSaleValue <= PremiumSaleThreshold {
		return model.Insight{}, false
	}
	return model.Insight{
		Title: "Premium Market Opportunity",
		Description: fmt.Sprintf("Average sale value is %s. Focus on premium stones for higher margins.",
			money.FormatWhole(snap.AverageSaleValue)),
		Priority: model.InsightMedium,
		Action:   "Expand premium inventory",
	}, true
}

func seasonalRule(snap model.Snapshot) (model.Insight, bool) {
	if !snap.PeakSeason {
		return model.Insight{}, false
	}
	return model.Insight{
		Title:       "Seasonal Demand Approaching",
		Description: "Festival and wedding season drives demand for precious stones. Stock up on popular varieties.",
		Priority:    model.InsightMedium,
		Action:      "Seasonal stocking",
	}, true
}

func pricingRule(snap model.Snapshot) (model.Insight, bool) {
	if snap.PriceVariance == nil {
		return model.Insight{}, false
	}
	return model.Insight{
		Title: "Pricing Inconsistency",
		Description: fmt.Sprintf("%s prices per carat vary widely across your inventory. Review pricing for consistency.",
			snap.PriceVariance.Type),
		Priority: model.InsightLow,
		Action:   "Review pricing strategy",
	}, true
}

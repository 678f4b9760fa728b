package aggregation

import (
	"sort"
	"time"

	"gemtrade/model"
	"gemtrade/money"
)

const (
	// LowStockThreshold is the quantity under which an item needs restocking.
	LowStockThreshold = 5
	// TopStones is how many stone types the performance ranking keeps.
	TopStones = 5
	// TopClientsOnDashboard is how many clients the dashboard shows.
	TopClientsOnDashboard = 3
	// PriceVarianceThreshold is the per-carat price variance (currency²)
	// above which a stone type is flagged as inconsistently priced.
	PriceVarianceThreshold = 1_000_000
)

// Input is the set of collections fetched from the record store for one
// refresh of the dashboard.
type Input struct {
	Inventory     []model.InventoryItem
	Sales         []model.Sale
	Clients       []model.Client
	Suppliers     []model.Supplier
	Tasks         []model.Task
	Expenses      []model.Expense
	Consultations []model.Consultation
}

// BuildSnapshot evaluates every metric once. now is only used for the
// seasonal flag.
func BuildSnapshot(in Input, now time.Time) model.Snapshot {
	snap := model.Snapshot{
		ClientRanking:    RankClientsByRevenue(in.Clients, in.Sales),
		StonePerformance: RankStonePerformance(in.Inventory, in.Sales),
		LowStock:         DetectLowStock(in.Inventory),
		AverageSaleValue: AverageSaleValue(in.Sales),
		PeakSeason:       IsPeakSeason(now),
	}
	if c, ok := DetectPriceVariance(in.Inventory); ok {
		snap.PriceVariance = &c
	}
	return snap
}

// RankClientsByRevenue sums each client's sales and orders the clients by
// revenue, highest first. Clients with equal revenue keep their input order.
// Sales whose client is unknown are not attributed to anyone.
func RankClientsByRevenue(clients []model.Client, sales []model.Sale) []model.ClientRevenueSummary {
	ranking := make([]model.ClientRevenueSummary, 0, len(clients))
	for _, c := range clients {
		summary := model.ClientRevenueSummary{Client: c}
		for _, s := range sales {
			if s.ClientID == c.ID {
				summary.TotalRevenue += money.Parse(s.TotalAmount)
				summary.TotalPurchases++
			}
		}
		summary.TotalRevenue = money.Clamp(summary.TotalRevenue)
		ranking = append(ranking, summary)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalRevenue > ranking[j].TotalRevenue
	})
	return ranking
}

// TopClients returns at most n entries from the front of a ranking.
func TopClients(ranking []model.ClientRevenueSummary, n int) []model.ClientRevenueSummary {
	if n < 0 {
		n = 0
	}
	if len(ranking) > n {
		return ranking[:n]
	}
	return ranking
}

// RankStonePerformance groups the inventory by stone type and ranks the
// types by demand score (sales count x price per carat), keeping the top
// TopStones.
func RankStonePerformance(inventory []model.InventoryItem, sales []model.Sale) []model.StonePerformanceSummary {
	ranking := stonePerformance(inventory, sales)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].DemandScore > ranking[j].DemandScore
	})
	if len(ranking) > TopStones {
		ranking = ranking[:TopStones]
	}
	return ranking
}

// StockLevels returns the summed quantity of every stone type, in the order
// the types first appear in the inventory.
func StockLevels(inventory []model.InventoryItem) []model.StonePerformanceSummary {
	return stonePerformance(inventory, nil)
}

func stonePerformance(inventory []model.InventoryItem, sales []model.Sale) []model.StonePerformanceSummary {
	groups := groupByType(inventory)
	result := make([]model.StonePerformanceSummary, 0, len(groups))
	for _, g := range groups {
		ids := make(map[string]bool, len(g.Items))
		var stock float64
		for _, item := range g.Items {
			ids[item.ID] = true
			stock += money.Parse(item.Quantity)
		}

		var count int
		var revenue float64
		for _, s := range sales {
			if ids[s.StoneID] {
				count++
				revenue += money.Parse(s.TotalAmount)
			}
		}

		avgPrice := money.Parse(g.Items[0].PricePerCarat)
		result = append(result, model.StonePerformanceSummary{
			Type:         g.Type,
			TotalSales:   count,
			TotalRevenue: money.Clamp(revenue),
			AvgPrice:     avgPrice,
			DemandScore:  money.Clamp(float64(count) * avgPrice),
			StockLevel:   money.Clamp(stock),
		})
	}
	return result
}

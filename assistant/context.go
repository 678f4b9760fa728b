package assistant

import (
	"fmt"
	"strings"

	"gemtrade/model"
	"gemtrade/money"
)

const systemPrompt = `You are the business assistant of a gemstone trading house.
Answer questions about sales, stock, clients and pricing using only the
figures in the BUSINESS SUMMARY below. Amounts are in Indian rupees.
If the summary does not contain the answer, say so. Keep replies short.`

// BuildContext summarises the dashboard figures for the model. Only
// aggregates are included, never individual records.
func BuildContext(snap model.Snapshot, overview model.Overview, insights []model.Insight) string {
	var sb strings.Builder
	sb.WriteString("BUSINESS SUMMARY\n")
	fmt.Fprintf(&sb, "Total revenue: %s\n", money.Format(overview.TotalRevenue))
	fmt.Fprintf(&sb, "This month: %d sales, %s\n", overview.SalesThisMonth, money.Format(overview.RevenueThisMonth))
	fmt.Fprintf(&sb, "Inventory: %d items valued at %s\n", overview.InventoryItems, money.Format(overview.InventoryValue))
	fmt.Fprintf(&sb, "Clients: %d, suppliers: %d\n", overview.TotalClients, overview.TotalSuppliers)
	fmt.Fprintf(&sb, "Open tasks: %d (%d overdue)\n", overview.PendingTasks, len(overview.OverdueTasks))
	fmt.Fprintf(&sb, "Average sale value: %s\n", money.Format(snap.AverageSaleValue))
	if snap.PeakSeason {
		sb.WriteString("Season: peak (October to December)\n")
	}

	if len(snap.ClientRanking) > 0 {
		sb.WriteString("\nTop clients by revenue:\n")
		for i, c := range snap.ClientRanking {
			if i == 5 {
				break
			}
			fmt.Fprintf(&sb, "- %s (%s): %s over %d purchases\n",
				c.Client.Name, c.Client.ClientType, money.Format(c.TotalRevenue), c.TotalPurchases)
		}
	}

	if len(snap.StonePerformance) > 0 {
		sb.WriteString("\nStone performance:\n")
		for _, s := range snap.StonePerformance {
			fmt.Fprintf(&sb, "- %s: %d sales, revenue %s, avg price/ct %s, stock %s\n",
				s.Type, s.TotalSales, money.Format(s.TotalRevenue), money.Format(s.AvgPrice), money.Quantity(s.StockLevel))
		}
	}

	if snap.LowStock.Count > 0 {
		fmt.Fprintf(&sb, "\nLow stock items: %d (e.g. %s)\n", snap.LowStock.Count, strings.Join(snap.LowStock.ExampleTypes, ", "))
	}

	if len(insights) > 0 {
		sb.WriteString("\nCurrent insights:\n")
		for _, in := range insights {
			fmt.Fprintf(&sb, "- [%s] %s: %s\n", in.Priority, in.Title, in.Description)
		}
	}
	return sb.String()
}

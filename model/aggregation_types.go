package model

// ClientRevenueSummary is a client with the revenue derived from its sales.
type ClientRevenueSummary struct {
	Client         Client  `json:"client"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalPurchases int     `json:"totalPurchases"`
}

// StonePerformanceSummary aggregates every inventory item of one stone type.
// AvgPrice is the price per carat of the first item seen for the type.
type StonePerformanceSummary struct {
	Type         string  `json:"type"`
	TotalSales   int     `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
	AvgPrice     float64 `json:"avgPrice"`
	DemandScore  float64 `json:"demandScore"`
	StockLevel   float64 `json:"stockLevel"`
}

// LowStockSummary counts items under the restock threshold.
type LowStockSummary struct {
	Count        int      `json:"count"`
	ExampleTypes []string `json:"exampleTypes"`
}

// PriceVarianceCandidate is a stone type whose per-carat prices disagree.
type PriceVarianceCandidate struct {
	Type     string  `json:"type"`
	Variance float64 `json:"variance"`
	Items    int     `json:"items"`
}

// Snapshot is every aggregate computed for one refresh of the dashboard.
type Snapshot struct {
	ClientRanking    []ClientRevenueSummary    `json:"clientRanking"`
	StonePerformance []StonePerformanceSummary `json:"stonePerformance"`
	LowStock         LowStockSummary           `json:"lowStock"`
	AverageSaleValue float64                   `json:"averageSaleValue"`
	PriceVariance    *PriceVarianceCandidate   `json:"priceVariance"`
	PeakSeason       bool                      `json:"peakSeason"`
}

// Insight categories.
const (
	InsightGrowth = "growth"
	InsightDemand = "demand"
	InsightStock  = "stock"
	InsightTrend  = "trend"
)

// Insight priorities.
const (
	InsightHigh   = "high"
	InsightMedium = "medium"
	InsightLow    = "low"
)

// Insight is a single recommendation shown on the dashboard.
type Insight struct {
	Category    string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Action      string `json:"action,omitempty"`
}

// Overview holds the headline figures of the dashboard cards.
type Overview struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	SalesThisMonth   int     `json:"salesThisMonth"`
	RevenueThisMonth float64 `json:"revenueThisMonth"`
	InventoryValue   float64 `json:"inventoryValue"`
	InventoryItems   int     `json:"inventoryItems"`
	TotalClients     int     `json:"totalClients"`
	TotalSuppliers   int     `json:"totalSuppliers"`
	PendingTasks     int     `json:"pendingTasks"`
	OverdueTasks     []Task  `json:"overdueTasks"`
	UpcomingTasks    []Task  `json:"upcomingTasks"`
}

// MonthlyFinance is one month of the finance breakdown. Month is YYYY-MM.
type MonthlyFinance struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

type FinanceSummary struct {
	SalesRevenue        float64            `json:"salesRevenue"`
	ConsultationRevenue float64            `json:"consultationRevenue"`
	TotalRevenue        float64            `json:"totalRevenue"`
	TotalExpenses       float64            `json:"totalExpenses"`
	NetProfit           float64            `json:"netProfit"`
	ExpensesByCategory  map[string]float64 `json:"expensesByCategory"`
	Monthly             []MonthlyFinance   `json:"monthly"`
}

// StockReportRow is one stone type in the stock report.
type StockReportRow struct {
	Type       string  `json:"type"`
	Items      int     `json:"items"`
	Quantity   float64 `json:"quantity"`
	TotalCarat float64 `json:"totalCarat"`
	Value      float64 `json:"value"`
	LowStock   int     `json:"lowStock"`
}

type StockReport struct {
	GeneratedAt string           `json:"generatedAt"`
	CompanyName string           `json:"companyName"`
	Rows        []StockReportRow `json:"rows"`
	Items       []InventoryItem  `json:"items"`
	TotalItems  int              `json:"totalItems"`
	TotalQty    float64          `json:"totalQuantity"`
	TotalValue  float64          `json:"totalValue"`
}

package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"gemtrade/aggregation"
	"gemtrade/database"
	"gemtrade/insights"
	"gemtrade/model"
	"gemtrade/respond"
)

// Dashboard is the payload of /api/dashboard.
type Dashboard struct {
	Date             string                          `json:"date"`
	Overview         model.Overview                  `json:"overview"`
	TopClients       []model.ClientRevenueSummary    `json:"topClients"`
	TopStones        []model.StonePerformanceSummary `json:"topStones"`
	StockLevels      []model.StonePerformanceSummary `json:"stockLevels"`
	LowStock         model.LowStockSummary           `json:"lowStock"`
	AverageSaleValue float64                         `json:"averageSaleValue"`
	PriceVariance    *model.PriceVarianceCandidate   `json:"priceVariance"`
	PeakSeason       bool                            `json:"peakSeason"`
	Insights         []model.Insight                 `json:"insights"`

	snapshot model.Snapshot
}

// Snapshot returns the full metric set the dashboard was built from.
func (d Dashboard) Snapshot() model.Snapshot {
	return d.snapshot
}

// Build loads every collection and evaluates the dashboard as of now.
func Build(db *sqlx.DB, now time.Time) (Dashboard, error) {
	in, err := database.LoadCollections(db)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return Compute(in, now), nil
}

// Compute evaluates the dashboard from already loaded collections.
func Compute(in aggregation.Input, now time.Time) Dashboard {
	snap := aggregation.BuildSnapshot(in, now)
	return Dashboard{
		Date:             now.Format("2006-01-02"),
		Overview:         aggregation.BuildOverview(in, now),
		TopClients:       aggregation.TopClients(snap.ClientRanking, aggregation.TopClientsOnDashboard),
		TopStones:        snap.StonePerformance,
		StockLevels:      aggregation.StockLevels(in.Inventory),
		LowStock:         snap.LowStock,
		AverageSaleValue: snap.AverageSaleValue,
		PriceVariance:    snap.PriceVariance,
		PeakSeason:       snap.PeakSeason,
		Insights:         insights.Generate(snap),
		snapshot:         snap,
	}
}

// Now reads the optional ?date=YYYY-MM-DD override. Without it the current
// time is used.
func Now(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", raw)
	}
	return d.Add(12 * time.Hour), nil
}

func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet) {
			return
		}
		now, err := Now(r)
		if err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		d, err := Build(db, now)
		if err != nil {
			respond.StoreError(w, "dashboard", err)
			return
		}
		respond.JSON(w, http.StatusOK, d)
	}
}

// InsightsHandler returns only the generated insights.
func InsightsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet) {
			return
		}
		now, err := Now(r)
		if err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		d, err := Build(db, now)
		if err != nil {
			respond.StoreError(w, "insights", err)
			return
		}
		respond.JSON(w, http.StatusOK, d.Insights)
	}
}

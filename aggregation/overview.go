package aggregation

import (
	"sort"
	"strings"
	"time"

	"gemtrade/model"
	"gemtrade/money"
)

// UpcomingWindow is how far ahead a task counts as upcoming.
const UpcomingWindow = 7 * 24 * time.Hour

// BuildOverview computes the headline dashboard figures as of now.
func BuildOverview(in Input, now time.Time) model.Overview {
	ov := model.Overview{
		InventoryItems: len(in.Inventory),
		TotalClients:   len(in.Clients),
		TotalSuppliers: len(in.Suppliers),
		OverdueTasks:   []model.Task{},
		UpcomingTasks:  []model.Task{},
	}

	for _, item := range in.Inventory {
		ov.InventoryValue += money.Parse(item.Quantity) * money.Parse(item.SellingPrice)
	}

	for _, s := range in.Sales {
		amount := money.Parse(s.TotalAmount)
		ov.TotalRevenue += amount
		if d, ok := ParseDate(s.SaleDate, now.Location()); ok && d.Year() == now.Year() && d.Month() == now.Month() {
			ov.SalesThisMonth++
			ov.RevenueThisMonth += amount
		}
	}

	ov.InventoryValue = money.Clamp(ov.InventoryValue)
	ov.TotalRevenue = money.Clamp(ov.TotalRevenue)
	ov.RevenueThisMonth = money.Clamp(ov.RevenueThisMonth)

	for _, t := range in.Tasks {
		if t.Completed {
			continue
		}
		ov.PendingTasks++
		if t.DueDate == nil {
			continue
		}
		due, ok := ParseDate(*t.DueDate, now.Location())
		if !ok {
			continue
		}
		switch {
		case due.Before(now):
			ov.OverdueTasks = append(ov.OverdueTasks, t)
		case due.Before(now.Add(UpcomingWindow)):
			ov.UpcomingTasks = append(ov.UpcomingTasks, t)
		}
	}
	sortByDue(ov.OverdueTasks, now.Location())
	sortByDue(ov.UpcomingTasks, now.Location())
	return ov
}

// OverdueTasks returns the incomplete tasks due before now, earliest first.
func OverdueTasks(tasks []model.Task, now time.Time) []model.Task {
	return BuildOverview(Input{Tasks: tasks}, now).OverdueTasks
}

func sortByDue(tasks []model.Task, loc *time.Location) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, _ := ParseDate(*tasks[i].DueDate, loc)
		b, _ := ParseDate(*tasks[j].DueDate, loc)
		return a.Before(b)
	})
}

const unknownMonth = "unknown"

// SummariseFinance totals completed revenue against expenses, overall and
// per calendar month.
func SummariseFinance(sales []model.Sale, expenses []model.Expense, consultations []model.Consultation) model.FinanceSummary {
	summary := model.FinanceSummary{
		ExpensesByCategory: map[string]float64{},
		Monthly:            []model.MonthlyFinance{},
	}
	months := make(map[string]*model.MonthlyFinance)
	bucket := func(date string) *model.MonthlyFinance {
		key := unknownMonth
		if d, ok := ParseDate(date, time.UTC); ok {
			key = d.Format("2006-01")
		}
		m, ok := months[key]
		if !ok {
			m = &model.MonthlyFinance{Month: key}
			months[key] = m
		}
		return m
	}

	for _, s := range sales {
		if !strings.EqualFold(s.Status, model.SaleCompleted) {
			continue
		}
		amount := money.Parse(s.TotalAmount)
		summary.SalesRevenue += amount
		bucket(s.SaleDate).Revenue += amount
	}
	for _, c := range consultations {
		if !strings.EqualFold(c.Status, model.SaleCompleted) {
			continue
		}
		fee := money.Parse(c.Fee)
		summary.ConsultationRevenue += fee
		bucket(c.ConsultationDate).Revenue += fee
	}
	for _, e := range expenses {
		amount := money.Parse(e.Amount)
		summary.TotalExpenses += amount
		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = "Uncategorised"
		}
		summary.ExpensesByCategory[category] += amount
		bucket(e.ExpenseDate).Expenses += amount
	}

	summary.SalesRevenue = money.Clamp(summary.SalesRevenue)
	summary.ConsultationRevenue = money.Clamp(summary.ConsultationRevenue)
	summary.TotalExpenses = money.Clamp(summary.TotalExpenses)
	summary.TotalRevenue = money.Clamp(summary.SalesRevenue + summary.ConsultationRevenue)
	summary.NetProfit = money.Clamp(summary.TotalRevenue - summary.TotalExpenses)
	for category, amount := range summary.ExpensesByCategory {
		summary.ExpensesByCategory[category] = money.Clamp(amount)
	}

	for _, m := range months {
		m.Revenue = money.Clamp(m.Revenue)
		m.Expenses = money.Clamp(m.Expenses)
		m.Net = money.Clamp(m.Revenue - m.Expenses)
		summary.Monthly = append(summary.Monthly, *m)
	}
	sort.Slice(summary.Monthly, func(i, j int) bool {
		return summary.Monthly[i].Month < summary.Monthly[j].Month
	})
	return summary
}

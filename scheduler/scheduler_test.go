package scheduler_test

import (
	"testing"
	"time"

	"gemtrade/database"
	"gemtrade/dbtest"
	"gemtrade/model"
	"gemtrade/scheduler"
)

func TestBuildDigest(t *testing.T) {
	db := dbtest.Open(t)

	ruby := model.InventoryItem{Type: "Ruby", Carat: "2", Quantity: "2", PricePerCarat: "50000"}
	if err := database.CreateInventory(db, &ruby); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}
	due := "2025-11-01"
	task := model.Task{Title: "Call supplier", DueDate: &due}
	if err := database.CreateTask(db, &task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	now := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)
	d, err := scheduler.BuildDigest(db, now)
	if err != nil {
		t.Fatalf("BuildDigest: %v", err)
	}
	if d.Snapshot.LowStock.Count != 1 {
		t.Errorf("expected 1 low stock item, got %d", d.Snapshot.LowStock.Count)
	}
	if len(d.OverdueTasks) != 1 || d.OverdueTasks[0].Title != "Call supplier" {
		t.Errorf("expected the overdue task, got %+v", d.OverdueTasks)
	}
	if len(d.Insights) == 0 || d.Insights[0].Title != "Low Stock Alert" {
		t.Errorf("expected low stock insight first, got %+v", d.Insights)
	}
	if !d.Snapshot.PeakSeason {
		t.Errorf("expected November to be peak season")
	}
	scheduler.LogDigest(d)
}

func TestNew(t *testing.T) {
	s, err := scheduler.New(nil, "")
	if err != nil || s != nil {
		t.Errorf("expected disabled scheduler, got %v %v", s, err)
	}
	if _, err := scheduler.New(nil, "every morning"); err == nil {
		t.Errorf("expected error for invalid schedule")
	}
	if s, err := scheduler.New(nil, "0 8 * * *"); err != nil || s == nil {
		t.Errorf("expected scheduler, got %v %v", s, err)
	}
	if err := scheduler.ValidateSchedule("61 * * * *"); err == nil {
		t.Errorf("expected minute 61 to be rejected")
	}
}

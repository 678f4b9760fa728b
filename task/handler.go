package task

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"gemtrade/aggregation"
	"gemtrade/database"
	"gemtrade/model"
	"gemtrade/respond"
)

var priorities = []string{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

// Handler lists tasks (open first, by due date) on GET and creates on POST.
func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			tasks, err := database.GetAllTasks(db)
			if err != nil {
				respond.StoreError(w, "tasks", err)
				return
			}
			respond.JSON(w, http.StatusOK, tasks)
			return
		}

		var t model.Task
		if !respond.Decode(w, r, &t) {
			return
		}
		if err := validate(&t); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.CreateTask(db, &t); err != nil {
			respond.StoreError(w, "task", err)
			return
		}
		respond.JSON(w, http.StatusCreated, t)
	}
}

func UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		var t model.Task
		if !respond.Decode(w, r, &t) {
			return
		}
		if t.ID == "" {
			respond.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := validate(&t); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if err := database.UpdateTask(db, t); err != nil {
			respond.StoreError(w, "task", err)
			return
		}
		respond.JSON(w, http.StatusOK, t)
	}
}

// ToggleHandler flips the completion of /api/tasks/toggle/{id}.
func ToggleHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		id, ok := respond.PathID(w, r, "/api/tasks/toggle/")
		if !ok {
			return
		}
		if err := database.ToggleTask(db, id); err != nil {
			respond.StoreError(w, "task", err)
			return
		}
		respond.Message(w, "toggled")
	}
}

func DeleteHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodDelete, http.MethodPost) {
			return
		}
		id, ok := respond.PathID(w, r, "/api/tasks/delete/")
		if !ok {
			return
		}
		if err := database.DeleteTask(db, id); err != nil {
			respond.StoreError(w, "task", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

func validate(t *model.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.DueDate != nil {
		due := strings.TrimSpace(*t.DueDate)
		if due == "" {
			t.DueDate = nil
		} else if _, ok := aggregation.ParseDate(due, time.Local); !ok {
			return fmt.Errorf("dueDate %q is not a date", due)
		} else {
			t.DueDate = &due
		}
	}
	if t.Priority != "" {
		for _, p := range priorities {
			if strings.EqualFold(t.Priority, p) {
				t.Priority = p
				return nil
			}
		}
		return fmt.Errorf("unknown priority %q", t.Priority)
	}
	return nil
}

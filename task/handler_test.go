package task_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/database"
	"gemtrade/dbtest"
	"gemtrade/model"
	"gemtrade/task"
)

func TestCreateAndToggle(t *testing.T) {
	db := dbtest.Open(t)

	rec := httptest.NewRecorder()
	task.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/tasks",
		strings.NewReader(`{"title":"Send GIA batch","dueDate":"2025-11-05","priority":"high"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created model.Task
	json.NewDecoder(rec.Body).Decode(&created)
	if created.Priority != model.PriorityHigh || created.DueDate == nil {
		t.Errorf("unexpected task %+v", created)
	}

	rec = httptest.NewRecorder()
	task.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"No date","dueDate":""}`)))
	var undated model.Task
	json.NewDecoder(rec.Body).Decode(&undated)
	if undated.DueDate != nil || undated.Priority != model.PriorityMedium {
		t.Errorf("expected nil due date and medium priority, got %+v", undated)
	}

	for _, body := range []string{`{"title":""}`, `{"title":"x","dueDate":"soon"}`, `{"title":"x","priority":"urgent"}`} {
		rec = httptest.NewRecorder()
		task.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}

	rec = httptest.NewRecorder()
	task.ToggleHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/tasks/toggle/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	tasks, _ := database.GetAllTasks(db)
	for _, tk := range tasks {
		if tk.ID == created.ID && !tk.Completed {
			t.Errorf("expected task to be completed after toggle")
		}
	}

	rec = httptest.NewRecorder()
	task.ToggleHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/tasks/toggle/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	task.DeleteHandler(db)(rec, httptest.NewRequest(http.MethodDelete, "/api/tasks/delete/"+undated.ID, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

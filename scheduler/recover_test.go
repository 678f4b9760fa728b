package scheduler

import (
	"testing"
	"time"
)

func TestDigestJobPanicIsRecovered(t *testing.T) {
	s, err := New(nil, "0 8 * * *")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.now = func() time.Time { panic("clock failure") }

	entries := s.cron.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 job, got %d", len(entries))
	}
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected the job panic to be recovered, got %v", r)
		}
	}()
	entries[0].WrappedJob.Run()
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"

	"gemtrade/aggregation"
	"gemtrade/database"
	"gemtrade/insights"
	"gemtrade/logger"
	"gemtrade/model"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Digest is the morning summary of what needs attention.
type Digest struct {
	GeneratedAt  time.Time
	Snapshot     model.Snapshot
	Insights     []model.Insight
	OverdueTasks []model.Task
}

// BuildDigest loads every collection and evaluates it at now.
func BuildDigest(db *sqlx.DB, now time.Time) (Digest, error) {
	in, err := database.LoadCollections(db)
	if err != nil {
		return Digest{}, fmt.Errorf("BuildDigest failed: %w", err)
	}
	snap := aggregation.BuildSnapshot(in, now)
	return Digest{
		GeneratedAt:  now,
		Snapshot:     snap,
		Insights:     insights.Generate(snap),
		OverdueTasks: aggregation.OverdueTasks(in.Tasks, now),
	}, nil
}

// ValidateSchedule checks a five field cron expression.
func ValidateSchedule(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := cronParser.Parse(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Scheduler runs the digest job on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
	db   *sqlx.DB
	now  func() time.Time
}

// New registers the digest job. An empty schedule returns nil, nil.
func New(db *sqlx.DB, schedule string) (*Scheduler, error) {
	if schedule == "" {
		return nil, nil
	}
	s := &Scheduler{
		cron: cron.New(cron.WithParser(cronParser), cron.WithChain(cron.Recover(cronLogger{}))),
		db:   db,
		now:  time.Now,
	}
	if _, err := s.cron.AddFunc(schedule, s.runDigest); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	return s, nil
}

// cronLogger routes cron's own messages, including recovered job panics,
// to the application log.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("scheduler started", "next", s.cron.Entries()[0].Next)
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.Warn("scheduler stop timed out")
	}
}

func (s *Scheduler) runDigest() {
	d, err := BuildDigest(s.db, s.now())
	if err != nil {
		logger.Error("digest failed", "error", err)
		return
	}
	LogDigest(d)
}

// LogDigest writes the digest to the log, one line per insight and overdue task.
func LogDigest(d Digest) {
	logger.Info("daily digest",
		"date", d.GeneratedAt.Format("2006-01-02"),
		"insights", len(d.Insights),
		"overdueTasks", len(d.OverdueTasks),
		"lowStock", d.Snapshot.LowStock.Count,
		"averageSale", d.Snapshot.AverageSaleValue,
	)
	for _, in := range d.Insights {
		logger.Info("insight", "priority", in.Priority, "title", in.Title, "description", in.Description)
	}
	for _, t := range d.OverdueTasks {
		due := ""
		if t.DueDate != nil {
			due = *t.DueDate
		}
		logger.Warn("overdue task", "title", t.Title, "due", due, "priority", t.Priority)
	}
}

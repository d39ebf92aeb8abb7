package report

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RunRecord is the persisted form of a Run.
type RunRecord struct {
	ID         string `gorm:"primaryKey"`
	Env        string
	Browser    string
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Failed     int
}

func (RunRecord) TableName() string { return "runs" }

// ResultRecord is the persisted form of a Result. Screenshots stay in the
// HTML report; the store keeps outcomes queryable across runs.
type ResultRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	RunID      string `gorm:"index"`
	Name       string
	Passed     bool
	DurationMS int64
	Error      string
	FinishedAt time.Time
}

func (ResultRecord) TableName() string { return "test_results" }

// Store keeps run history in postgres. It is only constructed when a DSN
// is configured; otherwise the suites run with the no-op reporter.
type Store struct {
	db  *gorm.DB
	log *zap.Logger

	mu     sync.Mutex
	run    Run
	total  int
	failed int
}

func NewStore(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open run-history store: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) StartRun(run Run) {
	s.mu.Lock()
	s.run = run
	s.mu.Unlock()

	rec := RunRecord{
		ID:        run.ID,
		Env:       run.Env,
		Browser:   run.Browser,
		StartedAt: run.StartedAt,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.log.Warn("run-history insert failed", zap.Error(err))
	}
}

func (s *Store) Record(result Result) {
	s.mu.Lock()
	runID := s.run.ID
	s.total++
	if !result.Passed {
		s.failed++
	}
	s.mu.Unlock()

	rec := ResultRecord{
		RunID:      runID,
		Name:       result.Name,
		Passed:     result.Passed,
		DurationMS: result.Duration.Milliseconds(),
		Error:      result.Error,
		FinishedAt: result.FinishedAt,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.log.Warn("result-history insert failed", zap.Error(err))
	}
}

func (s *Store) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Model(&RunRecord{}).
		Where("id = ?", s.run.ID).
		Updates(map[string]any{
			"finished_at": time.Now(),
			"total":       s.total,
			"failed":      s.failed,
		}).Error
}

// Runs returns the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	if err := s.db.Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

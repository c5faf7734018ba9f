// Package scheduler runs the periodic due-word scan. It is the seam
// between the pure engine and whatever drives review sessions: each
// scan hands the highest-priority batch to a Presenter and does
// nothing else with it.
package scheduler

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/go-co-op/gocron"

	"github.com/example/vocabsrs/internal/engine"
	"github.com/example/vocabsrs/pkg/models"
)

// Default scan window, overridable via Config.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 22
)

// Presenter receives a batch of words selected for review. The
// implementation decides what presentation means; the scheduler never
// blocks on it beyond the call itself.
type Presenter interface {
	Present(words []models.ItemRecord) error
}

// Config controls the scan cadence and window.
type Config struct {
	ScanInterval time.Duration // zero → 1h
	BatchSize    int           // zero → 10
	StartHour    int           // scans run only within [StartHour, EndHour]
	EndHour      int           // both zero → defaults
}

// Scheduler manages the recurring due-word scan.
type Scheduler struct {
	scheduler *gocron.Scheduler
	engine    *engine.Engine
	presenter Presenter
	log       *bolt.Logger
	cfg       Config
	now       func() time.Time
}

// New creates a scheduler over the engine. The presenter may be nil,
// in which case scans only log what would have been presented.
func New(eng *engine.Engine, presenter Presenter, log *bolt.Logger, cfg Config) *Scheduler {
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = time.Hour
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.StartHour == 0 && cfg.EndHour == 0 {
		cfg.StartHour = DefaultStartHour
		cfg.EndHour = DefaultEndHour
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		engine:    eng,
		presenter: presenter,
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Start begins the recurring scan without blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(s.cfg.ScanInterval).Do(s.scan)
	s.scheduler.StartAsync()
}

// Stop terminates the scan loop.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// scan ranks the vocabulary by session priority and forwards the top
// batch to the presenter. Outside the configured hours it does
// nothing.
func (s *Scheduler) scan() {
	now := s.now()
	hour := now.Hour()
	if hour < s.cfg.StartHour || hour > s.cfg.EndHour {
		s.log.Debug().
			Int("hour", hour).
			Int("start", s.cfg.StartHour).
			Int("end", s.cfg.EndHour).
			Msg("outside scan hours, skipping")
		return
	}

	batch, err := s.engine.PriorityRanked(now, s.cfg.BatchSize)
	if err != nil {
		s.log.Warn().Err(err).Msg("due scan failed")
		return
	}
	if len(batch) == 0 {
		return
	}

	s.log.Info().Int("count", len(batch)).Msg("review batch ready")
	if s.presenter == nil {
		return
	}
	if err := s.presenter.Present(batch); err != nil {
		s.log.Warn().Err(err).Msg("presenter rejected batch")
	}
}

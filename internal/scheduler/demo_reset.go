package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/demo"
)

// DemoResetScheduler periodically restores the database to its sample
// state while demo mode is on, so public installs cannot drift.
type DemoResetScheduler struct {
	db       *database.Database
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewDemoResetScheduler creates a new scheduler instance.
func NewDemoResetScheduler(db *database.Database, schedule string) *DemoResetScheduler {
	return &DemoResetScheduler{
		db:       db,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the periodic reset. The database is reset once immediately
// so the first visitor always sees the sample data.
func (s *DemoResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := demo.Reset(s.db); err != nil {
		return fmt.Errorf("initial demo reset failed: %w", err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runReset()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule demo reset: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Demo reset scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *DemoResetScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	s.cron.Stop()
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	log.Printf("Demo reset scheduler: stopped")
}

func (s *DemoResetScheduler) runReset() {
	if err := demo.Reset(s.db); err != nil {
		log.Printf("Demo reset failed: %v", err)
		return
	}
	log.Printf("Demo reset: restored sample data")
}

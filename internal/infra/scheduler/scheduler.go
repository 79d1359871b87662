package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CycleRunner is the unit of work driven by the scheduler: one polling
// cycle against the homework statuses API.
type CycleRunner interface {
	RunCycle(ctx context.Context)
}

// PollScheduler fires the polling cycle at a fixed retry period. Jobs
// are chained with DelayIfStillRunning, so a slow cycle delays the next
// fire instead of being overlapped by it.
type PollScheduler struct {
	cronEngine  *cron.Cron
	service     CycleRunner
	logger      *logrus.Logger
	retryPeriod time.Duration
}

func NewPollScheduler(
	service CycleRunner,
	logger *logrus.Logger,
	retryPeriod time.Duration,
) *PollScheduler {
	return &PollScheduler{
		cronEngine:  cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		service:     service,
		logger:      logger,
		retryPeriod: retryPeriod,
	}
}

// Start registers the polling job and launches the cron engine. The
// first cycle fires immediately; cron takes over from there, every
// retry period.
func (s *PollScheduler) Start() error {
	chain := cron.NewChain(cron.DelayIfStillRunning(cron.PrintfLogger(s.logger)))
	job := chain.Then(cron.FuncJob(s.runCycle))

	spec := fmt.Sprintf("@every %s", s.retryPeriod)
	if _, err := s.cronEngine.AddJob(spec, job); err != nil {
		return fmt.Errorf("could not add polling job: %w", err)
	}

	s.logger.Infof("Poll scheduler started. Retry period: %s", s.retryPeriod)
	go job.Run() // Immediate first poll; the chain keeps runs serial.
	s.cronEngine.Start()
	return nil
}

// runCycle executes one polling cycle, bounded so a hung cycle cannot
// outlive its slot.
func (s *PollScheduler) runCycle() {
	ctx, cancel := context.WithTimeout(context.Background(), s.retryPeriod)
	defer cancel()
	s.service.RunCycle(ctx)
}

// Stop halts the cron engine and waits for a running cycle to finish.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new runs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Poll scheduler gracefully stopped.")
}

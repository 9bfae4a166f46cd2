package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	portssvc "github.com/engiops/timesheet_mgmt_app/internal/core/ports/services"
)

// ArchiveScheduler runs the timesheet archival sweep on a cron schedule in
// addition to the manual admin endpoint.
type ArchiveScheduler struct {
	cron             *cron.Cron
	timesheetService portssvc.TimesheetSvcFacade
	logger           *slog.Logger
}

// NewArchiveScheduler creates a scheduler that is not yet started.
func NewArchiveScheduler(timesheetService portssvc.TimesheetSvcFacade, logger *slog.Logger) *ArchiveScheduler {
	return &ArchiveScheduler{
		cron:             cron.New(),
		timesheetService: timesheetService,
		logger:           logger,
	}
}

// Start registers the sweep job under spec and starts the cron loop. The
// spec uses the standard 5-field cron format.
func (s *ArchiveScheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runSweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Archive scheduler started", slog.String("cron_spec", spec))
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *ArchiveScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Archive scheduler stopped")
}

func (s *ArchiveScheduler) runSweep() {
	now := time.Now().UTC()

	// Checks daily but only acts on the first of the month. The manual admin
	// endpoint is not gated this way.
	if now.Day() != 1 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := s.timesheetService.ArchiveOldTimesheets(ctx, now)
	if err != nil {
		s.logger.Error("Scheduled archive sweep failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled archive sweep completed", slog.Int64("archived_count", count))
}

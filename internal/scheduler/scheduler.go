package scheduler

import (
	"taskdesk/internal/abstraction"
	"taskdesk/internal/config"
	"taskdesk/internal/factory"
	"taskdesk/internal/stats"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the recurring workload report job.
type Scheduler struct {
	cron    *cron.Cron
	factory *factory.Factory
}

func New(f *factory.Factory) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		factory: f,
	}
}

// Start registers the workload report on the configured cron spec and
// launches the cron loop.
func (s *Scheduler) Start() error {
	spec := config.Get().Scheduler.WorkloadReportSpec
	if _, err := s.cron.AddFunc(spec, s.reportWorkload); err != nil {
		return err
	}
	s.cron.Start()
	logrus.Infof("scheduler started, workload report on spec %q", spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) reportWorkload() {
	requests, err := s.factory.RequestRepository.Find(&abstraction.Context{})
	if err != nil && err.Error() != "record not found" {
		logrus.Errorf("workload report failed: %v", err)
		return
	}

	snapshot := stats.CalculateWorkload(requests)
	logrus.WithFields(logrus.Fields{
		"pending_count":           snapshot.PendingCount,
		"total_estimated_minutes": snapshot.TotalEstimatedMinutes,
		"total_estimated_hours":   snapshot.TotalEstimatedHours,
		"estimated_label":         stats.FormatDuration(snapshot.TotalEstimatedMinutes),
	}).Info("pending workload report")
}

package cron

import (
	"Stride/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine               *cron.Cron
	followCountJob       *job.FollowCountJob
	activityReconcileJob *job.ActivityReconcileJob
}

func NewCronManager(followCountJob *job.FollowCountJob, activityReconcileJob *job.ActivityReconcileJob) *Manager {
	return &Manager{
		engine:               cron.New(cron.WithSeconds()),
		followCountJob:       followCountJob,
		activityReconcileJob: activityReconcileJob,
	}
}

// RegisterJobs wires the reconcile schedules.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.activityReconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.followCountJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}

// Package scheduler holds the cron-driven entrypoints of the engine.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/refreshing"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/utils"
	"github.com/sirupsen/logrus"
)

// MartRefreshService runs the daily mart refresh on a cron schedule. The
// refresh itself carries the single-flight guard, so a manual trigger racing
// the cron simply loses.
type MartRefreshService struct {
	scheduler *gocron.Scheduler
	refresher refreshing.Service
	config    config.MartRefresh
}

func NewMartRefreshService(
	refresher refreshing.Service,
	cfg *config.Config,
) *MartRefreshService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.MartRefresh.CronSchedule,
		"enabled":       cfg.MartRefresh.Enabled,
	}).Info("Mart refresh scheduler configuration loaded")

	return &MartRefreshService{
		scheduler: scheduler,
		refresher: refresher,
		config:    cfg.MartRefresh,
	}
}

func (s *MartRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Mart refresh cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting mart refresh cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Error("Scheduled mart refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule mart refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping mart refresh cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow refreshes the mart for yesterday, the most recent fully closed day.
func (s *MartRefreshService) RunNow(ctx context.Context) error {
	result, err := s.refresher.Refresh(ctx, utils.Yesterday(), "")
	if err != nil {
		if err == refreshing.ErrAlreadyRunning {
			logrus.Warn("Mart refresh already in progress, skipping scheduled run")
			return nil
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"ref_date": result.RefDate.Format("2006-01-02"),
		"windows":  result.Windows,
		"failed":   result.FailedEntities,
	}).Info("Scheduled mart refresh completed")

	return nil
}

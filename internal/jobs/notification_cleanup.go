package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
)

// NotificationCleanupJob drops notifications past the retention window on
// a cron schedule.
type NotificationCleanupJob struct {
	notifications *repositories.NotificationRepository
	config        *CleanupConfig
	logger        *zap.Logger
	cron          *cron.Cron
}

// CleanupConfig contains configuration for the cleanup job.
type CleanupConfig struct {
	Schedule      string // Cron schedule (e.g., "0 3 * * *" for 3 AM daily)
	RetentionDays int
}

func NewNotificationCleanupJob(notifications *repositories.NotificationRepository, config *CleanupConfig, logger *zap.Logger) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		notifications: notifications,
		config:        config,
		logger:        logger,
		cron:          cron.New(),
	}
}

// Start begins the scheduled cleanup job.
func (j *NotificationCleanupJob) Start() error {
	j.logger.Info("starting notification cleanup job",
		zap.String("schedule", j.config.Schedule),
		zap.Int("retention_days", j.config.RetentionDays))

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunCleanup(); err != nil {
			j.logger.Error("notification cleanup failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	j.cron.Start()
	return nil
}

// Stop stops the scheduled cleanup job.
func (j *NotificationCleanupJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunCleanup performs a single cleanup run.
func (j *NotificationCleanupJob) RunCleanup() error {
	cutoff := time.Now().AddDate(0, 0, -j.config.RetentionDays)
	removed, err := j.notifications.DeleteOlderThan(cutoff)
	if err != nil {
		return err
	}
	j.logger.Info("notification cleanup finished",
		zap.Int64("removed", removed),
		zap.Time("cutoff", cutoff))
	return nil
}

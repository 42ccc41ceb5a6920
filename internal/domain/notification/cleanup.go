package notification

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CleanupConfig holds configuration for cleanup tasks
type CleanupConfig struct {
	Retention time.Duration // read notifications older than this are deleted
	Interval  time.Duration
}

// CleanupService deletes read notifications past their retention.
type CleanupService struct {
	repo *NotificationRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewCleanupService(repo *NotificationRepository, log zerolog.Logger) *CleanupService {
	return &CleanupService{
		repo: repo,
		log:  log.With().Str("component", "notification_cleanup").Logger(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (c *CleanupService) RunOnce(ctx context.Context, retention time.Duration) (int64, error) {
	start := time.Now()

	deleted, err := c.repo.DeleteReadBefore(ctx, c.now().Add(-retention))
	if err != nil {
		c.log.Error().Err(err).Msg("notification cleanup failed")
		return 0, err
	}

	c.log.Info().
		Int64("deleted", deleted).
		Dur("took", time.Since(start)).
		Msg("notification cleanup completed")
	return deleted, nil
}

// Schedule runs RunOnce every cfg.Interval until ctx is done.
func (c *CleanupService) Schedule(ctx context.Context, cfg CleanupConfig) {
	if cfg.Interval <= 0 || cfg.Retention <= 0 {
		c.log.Info().Msg("notification cleanup disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_, _ = c.RunOnce(ctx, cfg.Retention)
			case <-ctx.Done():
				c.log.Debug().Msg("notification cleanup stopped")
				return
			}
		}
	}()

	c.log.Info().Dur("interval", cfg.Interval).Dur("retention", cfg.Retention).Msg("notification cleanup scheduled")
}

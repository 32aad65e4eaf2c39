package scheduler

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/robfig/cron/v3"

	"educonnect_backend/internals/features/users/auth/service"
)

// StartSessionCleanupScheduler sweeps expired admin sessions on schedule
// (a cron expression or descriptor such as "@every 1h"). The caller stops
// the returned cron on shutdown.
func StartSessionCleanupScheduler(sessions *service.SessionService, schedule string, logger log.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if n := sessions.Sweep(); n > 0 {
			level.Info(logger).Log("op", "session.sweep", "removed", n, "active", sessions.Active())
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule session cleanup %q: %w", schedule, err)
	}
	c.Start()
	level.Info(logger).Log("op", "session.sweep", "msg", "scheduled", "schedule", schedule)
	return c, nil
}

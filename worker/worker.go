package worker

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Worker long-running job
type Worker interface {
	Run(ctx context.Context) error
}

// StartCron run the schedule until ctx is done
func StartCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}

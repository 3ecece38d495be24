package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
)

type CountdownCmd struct {
	Watch bool `help:"Keep running and refresh every minute until interrupted."`
}

func (c *CountdownCmd) Run(ctx *Context) error {
	printCountdown(ctx)
	if !c.Watch {
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.New(cron.WithLogger(logger.CronLogger{}))
	spec := fmt.Sprintf("@every %s", constants.CountdownInterval)
	if _, err := scheduler.AddFunc(spec, func() { printCountdown(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule countdown refresh: %w", err)
	}
	scheduler.Start()

	<-sigCtx.Done()
	<-scheduler.Stop().Done()
	return nil
}

func printCountdown(ctx *Context) {
	fmt.Printf("NEET %s: %s\n", ctx.Tracker.Catalog().ExamDate, formatCountdown(ctx.Tracker.Countdown()))
}

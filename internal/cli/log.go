package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// withRun derives a logger tagged with a fresh run id and attaches it to
// ctx, where the operation packages pick it up with log.FromContext.
func (c *CLI) withRun(ctx context.Context, command string) (context.Context, *log.Logger) {
	id := uuid.New().String()[:8]
	l := c.Logger.With("run", id, "cmd", command)

	return log.WithContext(ctx, l), l
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

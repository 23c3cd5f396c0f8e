package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Job interface{ Run(ctx context.Context) }

type FuncJob func(ctx context.Context)

func (f FuncJob) Run(ctx context.Context) { f(ctx) }

// Cron - планировщик повторяющихся задач. Задача не запускается, пока не
// завершился ее предыдущий запуск, паника задачи не роняет процесс.
type Cron struct {
	c *cron.Cron
}

func NewCron(logger *logrus.Logger) *Cron {
	cl := cron.PrintfLogger(logger)
	c := cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	return &Cron{c: c}
}

// Every регистрирует задачу с фиксированным периодом
func (cr *Cron) Every(ctx context.Context, period time.Duration, job Job) (cron.EntryID, error) {
	if period <= 0 {
		return 0, fmt.Errorf("invalid period %s", period)
	}
	return cr.c.AddFunc(fmt.Sprintf("@every %s", period), func() { job.Run(ctx) })
}

// Schedule - то же, что Every, для вызывающих без зависимости от cron
func (cr *Cron) Schedule(ctx context.Context, period time.Duration, job func(ctx context.Context)) error {
	_, err := cr.Every(ctx, period, FuncJob(job))
	return err
}

func (cr *Cron) Start() { cr.c.Start() }
func (cr *Cron) Stop()  { ctx := cr.c.Stop(); <-ctx.Done() }

func (cr *Cron) Entries() []cron.Entry { return cr.c.Entries() }

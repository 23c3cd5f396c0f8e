package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/sirupsen/logrus"
)

// ErrTargetAbsent - области рендерера нет на текущей странице; пропускается молча
var ErrTargetAbsent = errors.New("render target absent")

const (
	RenderOutcomeRendered = "rendered"
	RenderOutcomeSkipped  = "skipped"
	RenderOutcomeFailed   = "failed"
)

// NotifyReport - результат одного прохода fan-out
type NotifyReport struct {
	Rendered []string
	Skipped  []string
	Failed   []string
}

// Coordinator связывает мутацию, сохранение и перерисовку всех представлений
// в одну последовательность. Все мутации и их fan-out выполняются под одним мьютексом,
// поэтому ни одно представление не рисуется по состоянию старше последней мутации.
type Coordinator struct {
	mu        sync.Mutex
	store     StoreReader
	renderers []Renderer
	logger    *logrus.Logger
	metrics   Metrics
}

func NewCoordinator(store StoreReader, logger *logrus.Logger, metrics Metrics) *Coordinator {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Coordinator{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// RegisterRenderer добавляет рендерер в конец очереди fan-out.
// Вызывать из Render нельзя: мьютекс координатора в этот момент занят.
func (c *Coordinator) RegisterRenderer(r Renderer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderers = append(c.renderers, r)
}

// Notify синхронно вызывает все рендереры в порядке регистрации
func (c *Coordinator) Notify(ctx context.Context) NotifyReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notifyLocked(ctx)
}

// Commit применяет мутацию и сразу выполняет fan-out. Мутация, отклоненная до
// применения, fan-out не вызывает; ошибка записи в backend - вызывает, так как
// состояние в памяти уже изменено.
func (c *Coordinator) Commit(ctx context.Context, mutate func(ctx context.Context) error) (NotifyReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := mutate(ctx)
	if err != nil && !errors.Is(err, store.ErrPersistenceWrite) {
		return NotifyReport{}, err
	}
	return c.notifyLocked(ctx), err
}

func (c *Coordinator) notifyLocked(ctx context.Context) NotifyReport {
	var report NotifyReport
	for _, r := range c.renderers {
		name := r.Name()
		err := c.render(ctx, r)
		switch {
		case err == nil:
			report.Rendered = append(report.Rendered, name)
			c.metrics.RenderOutcome(name, RenderOutcomeRendered)
		case errors.Is(err, ErrTargetAbsent):
			report.Skipped = append(report.Skipped, name)
			c.metrics.RenderOutcome(name, RenderOutcomeSkipped)
		default:
			report.Failed = append(report.Failed, name)
			c.metrics.RenderOutcome(name, RenderOutcomeFailed)
			c.logger.WithFields(logrus.Fields{
				"service":  "coordinator",
				"method":   "Notify",
				"renderer": name,
			}).WithError(err).Error("Renderer failed")
		}
	}
	return report
}

func (c *Coordinator) render(ctx context.Context, r Renderer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("renderer panic: %v", rec)
		}
	}()
	return r.Render(ctx, c.store)
}

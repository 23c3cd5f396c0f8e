package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/crisis_relief_coordinator/internal/service"
	"github.com/shenikar/crisis_relief_coordinator/internal/service/mocks"
	"github.com/shenikar/crisis_relief_coordinator/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockRenderer(ctrl *gomock.Controller, name string) *mocks.MockRenderer {
	r := mocks.NewMockRenderer(ctrl)
	r.EXPECT().Name().Return(name).AnyTimes()
	return r
}

func TestNotify_RendersInRegistrationOrder(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	s := newTestStore(t)
	c := service.NewCoordinator(s, newTestLogger(), nil)
	ctx := context.Background()

	first := newMockRenderer(ctrl, "map:mini-map")
	second := newMockRenderer(ctrl, "feed:alert-feed")
	third := newMockRenderer(ctrl, "chart:trend-chart")
	for _, r := range []service.Renderer{first, second, third} {
		c.RegisterRenderer(r)
	}

	// Ожидания
	gomock.InOrder(
		first.EXPECT().Render(ctx, s).Return(nil),
		second.EXPECT().Render(ctx, s).Return(nil),
		third.EXPECT().Render(ctx, s).Return(nil),
	)

	// Действие
	report := c.Notify(ctx)

	// Проверки
	assert.Equal(t, []string{"map:mini-map", "feed:alert-feed", "chart:trend-chart"}, report.Rendered)
	assert.Empty(t, report.Skipped)
	assert.Empty(t, report.Failed)
}

func TestNotify_AbsentTargetSkippedSilently(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	metrics := newRecordingMetrics()
	c := service.NewCoordinator(newTestStore(t), newTestLogger(), metrics)

	absent := newMockRenderer(ctrl, "map:full-map")
	present := newMockRenderer(ctrl, "detail:detail")
	c.RegisterRenderer(absent)
	c.RegisterRenderer(present)

	// Ожидания
	absent.EXPECT().Render(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: full-map", service.ErrTargetAbsent))
	present.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

	// Действие
	report := c.Notify(context.Background())

	// Проверки
	assert.Equal(t, []string{"map:full-map"}, report.Skipped)
	assert.Equal(t, []string{"detail:detail"}, report.Rendered)
	assert.Equal(t, service.RenderOutcomeSkipped, metrics.outcomes["map:full-map"])
	assert.Equal(t, service.RenderOutcomeRendered, metrics.outcomes["detail:detail"])
}

func TestNotify_FailingRendererDoesNotBlockSiblings(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	c := service.NewCoordinator(newTestStore(t), newTestLogger(), nil)

	broken := newMockRenderer(ctrl, "chart:resource-chart")
	panicking := newMockRenderer(ctrl, "grid:resource-grid")
	healthy := newMockRenderer(ctrl, "grid:volunteer-grid")
	c.RegisterRenderer(broken)
	c.RegisterRenderer(panicking)
	c.RegisterRenderer(healthy)

	// Ожидания
	broken.EXPECT().Render(gomock.Any(), gomock.Any()).Return(errors.New("canvas lost"))
	panicking.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, service.StoreReader) error {
			panic("nil widget")
		})
	healthy.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)

	// Действие
	report := c.Notify(context.Background())

	// Проверки
	assert.Equal(t, []string{"chart:resource-chart", "grid:resource-grid"}, report.Failed)
	assert.Equal(t, []string{"grid:volunteer-grid"}, report.Rendered)
}

func TestCommit_RejectedMutationDoesNotRender(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	c := service.NewCoordinator(newTestStore(t), newTestLogger(), nil)
	r := newMockRenderer(ctrl, "feed:alert-feed")
	c.RegisterRenderer(r)

	// Ожидания
	r.EXPECT().Render(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	report, err := c.Commit(context.Background(), func(context.Context) error {
		return store.ErrInvalidIncident
	})

	// Проверки
	assert.ErrorIs(t, err, store.ErrInvalidIncident)
	assert.Empty(t, report.Rendered)
}

func TestCommit_PersistenceFailureStillRenders(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	c := service.NewCoordinator(newTestStore(t), newTestLogger(), nil)
	r := newMockRenderer(ctrl, "feed:alert-feed")
	c.RegisterRenderer(r)

	// Ожидания
	r.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	report, err := c.Commit(context.Background(), func(context.Context) error {
		return fmt.Errorf("incident 1 kept in memory: %w", store.ErrPersistenceWrite)
	})

	// Проверки
	require.ErrorIs(t, err, store.ErrPersistenceWrite)
	assert.Equal(t, []string{"feed:alert-feed"}, report.Rendered)
}

func TestCommit_RenderersSeeMutatedState(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	s := newTestStore(t)
	c := service.NewCoordinator(s, newTestLogger(), nil)
	r := newMockRenderer(ctrl, "map:mini-map")
	c.RegisterRenderer(r)
	incident := newReport("Sarah Connor")
	incident.ID = 1700000000001

	// Ожидания
	r.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reader service.StoreReader) error {
			assert.Equal(t, incident.ID, reader.Incidents()[0].ID)
			return nil
		})

	// Действие
	_, err := c.Commit(context.Background(), func(ctx context.Context) error {
		return s.AddIncident(ctx, incident)
	})

	// Проверки
	require.NoError(t, err)
}

// Package views содержит рендереры дашборда. Каждый рендерер читает хранилище и
// перерисовывает свою область Board; виджеты карты и графиков потребляют готовые
// модели представления и в этот пакет не входят.
package views

import (
	"fmt"
	"sync"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
)

// Region - область страницы, принадлежащая одному рендереру
type Region string

const (
	RegionMiniMap       Region = "mini-map"
	RegionFullMap       Region = "full-map"
	RegionAlertFeed     Region = "alert-feed"
	RegionResourceGrid  Region = "resource-grid"
	RegionVolunteerGrid Region = "volunteer-grid"
	RegionTrendChart    Region = "trend-chart"
	RegionResourceChart Region = "resource-chart"
	RegionDetail        Region = "detail"
)

// DashboardRegions - области главной страницы
func DashboardRegions() []Region {
	return []Region{
		RegionMiniMap,
		RegionFullMap,
		RegionAlertFeed,
		RegionResourceGrid,
		RegionVolunteerGrid,
		RegionTrendChart,
		RegionResourceChart,
	}
}

// DetailRegions - области страницы деталей инцидента
func DetailRegions() []Region {
	return []Region{RegionDetail}
}

// Board - загруженная страница: набор присутствующих областей и их последние модели
type Board struct {
	mu      sync.RWMutex
	present map[Region]bool
	content map[Region]any
	version uint64
}

func NewBoard(regions ...Region) *Board {
	b := &Board{
		present: make(map[Region]bool, len(regions)),
		content: make(map[Region]any, len(regions)),
	}
	for _, r := range regions {
		b.present[r] = true
	}
	return b
}

// Has сообщает, есть ли область на странице
func (b *Board) Has(region Region) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.present[region]
}

func (b *Board) put(region Region, model any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.present[region] {
		return fmt.Errorf("%w: %s", service.ErrTargetAbsent, region)
	}
	b.content[region] = model
	b.version++
	return nil
}

// Get возвращает последнюю отрисованную модель области
func (b *Board) Get(region Region) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	model, ok := b.content[region]
	return model, ok
}

// Version растет при каждой записи в любую область
func (b *Board) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Snapshot возвращает копию всех отрисованных областей
func (b *Board) Snapshot() map[Region]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[Region]any, len(b.content))
	for r, m := range b.content {
		out[r] = m
	}
	return out
}

// DashboardRenderers возвращает рендереры главной страницы в порядке fan-out
func DashboardRenderers(board *Board, series *TrendSeries, center models.Coordinates) []service.Renderer {
	return []service.Renderer{
		NewMiniMapRenderer(board, center),
		NewFullMapRenderer(board, center),
		NewAlertFeedRenderer(board),
		NewResourceGridRenderer(board),
		NewVolunteerGridRenderer(board),
		NewTrendChartRenderer(board, series),
		NewResourceMixRenderer(board),
	}
}

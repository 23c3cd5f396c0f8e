package views

import (
	"context"
	"sync"

	"github.com/shenikar/crisis_relief_coordinator/internal/service"
)

// TrendSeries - скользящий ряд фиксированной длины. Push сдвигает окно на одну точку.
type TrendSeries struct {
	mu     sync.RWMutex
	labels []string
	values []float64
}

func NewTrendSeries(labels []string, values []float64) *TrendSeries {
	return &TrendSeries{
		labels: append([]string(nil), labels...),
		values: append([]float64(nil), values...),
	}
}

// DefaultTrendSeries - ряд за последний час с шагом 15 минут
func DefaultTrendSeries() *TrendSeries {
	return NewTrendSeries(
		[]string{"1h", "45m", "30m", "15m", "Now"},
		[]float64{2, 4, 3, 5, 8},
	)
}

func (t *TrendSeries) Push(value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.values) == 0 {
		return
	}
	t.values = append(t.values[1:], value)
}

func (t *TrendSeries) Values() []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]float64(nil), t.values...)
}

func (t *TrendSeries) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.labels...)
}

type TrendChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type TrendChartRenderer struct {
	board  *Board
	series *TrendSeries
}

func NewTrendChartRenderer(board *Board, series *TrendSeries) *TrendChartRenderer {
	return &TrendChartRenderer{board: board, series: series}
}

func (r *TrendChartRenderer) Name() string { return "chart:" + string(RegionTrendChart) }

func (r *TrendChartRenderer) Render(_ context.Context, _ service.StoreReader) error {
	if !r.board.Has(RegionTrendChart) {
		return service.ErrTargetAbsent
	}
	return r.board.put(RegionTrendChart, TrendChart{Labels: r.series.Labels(), Values: r.series.Values()})
}

type MixSlice struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Share    float64 `json:"share"`
}

// ResourceMix - разбивка запасов по категориям
type ResourceMix struct {
	Slices []MixSlice `json:"slices"`
	Total  int        `json:"total"`
}

type ResourceMixRenderer struct {
	board *Board
}

func NewResourceMixRenderer(board *Board) *ResourceMixRenderer {
	return &ResourceMixRenderer{board: board}
}

func (r *ResourceMixRenderer) Name() string { return "chart:" + string(RegionResourceChart) }

func (r *ResourceMixRenderer) Render(_ context.Context, store service.StoreReader) error {
	if !r.board.Has(RegionResourceChart) {
		return service.ErrTargetAbsent
	}
	var mix ResourceMix
	index := make(map[string]int)
	for _, res := range store.Resources() {
		i, ok := index[res.Category]
		if !ok {
			i = len(mix.Slices)
			index[res.Category] = i
			mix.Slices = append(mix.Slices, MixSlice{Category: res.Category})
		}
		mix.Slices[i].Quantity += res.Quantity
		mix.Total += res.Quantity
	}
	if mix.Total > 0 {
		for i := range mix.Slices {
			mix.Slices[i].Share = float64(mix.Slices[i].Quantity) / float64(mix.Total)
		}
	}
	return r.board.put(RegionResourceChart, mix)
}

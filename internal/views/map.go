package views

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
)

// DetailLinkBase - адрес страницы деталей, на который ссылаются маркеры и лента
const DetailLinkBase = "/api/v1/detail"

const (
	miniMapZoom     = 12
	fullMapZoom     = 13
	miniMapFlyZoom  = 13
	fullMapFlyZoom  = 15
	summaryMaxRunes = 50
)

// DefaultCenter - центр карты по умолчанию
var DefaultCenter = models.Coordinates{Lat: 40.7128, Lon: -74.0060}

type Marker struct {
	ID        int64               `json:"id"`
	Coords    models.Coordinates  `json:"coords"`
	Type      models.IncidentType `json:"type"`
	Severity  models.Severity     `json:"severity"`
	Color     string              `json:"color"`
	Summary   string              `json:"summary"`
	DetailURL string              `json:"detail_url"`
}

type MapView struct {
	Center  models.Coordinates `json:"center"`
	Zoom    int                `json:"zoom"`
	Markers []Marker           `json:"markers"`
}

// MapFocus - команда "перелететь к координатам" для одной карты
type MapFocus struct {
	Region Region             `json:"region"`
	Coords models.Coordinates `json:"coords"`
	Zoom   int                `json:"zoom"`
}

// MapRenderer перерисовывает маркеры всех инцидентов на одной карте
type MapRenderer struct {
	board  *Board
	region Region
	center models.Coordinates
	zoom   int
}

func NewMiniMapRenderer(board *Board, center models.Coordinates) *MapRenderer {
	return &MapRenderer{board: board, region: RegionMiniMap, center: center, zoom: miniMapZoom}
}

func NewFullMapRenderer(board *Board, center models.Coordinates) *MapRenderer {
	return &MapRenderer{board: board, region: RegionFullMap, center: center, zoom: fullMapZoom}
}

func (r *MapRenderer) Name() string { return "map:" + string(r.region) }

func (r *MapRenderer) Render(_ context.Context, store service.StoreReader) error {
	if !r.board.Has(r.region) {
		return fmt.Errorf("%w: %s", service.ErrTargetAbsent, r.region)
	}
	incidents := store.Incidents()
	markers := make([]Marker, 0, len(incidents))
	for _, inc := range incidents {
		markers = append(markers, Marker{
			ID:        inc.ID,
			Coords:    inc.Coords,
			Type:      inc.Type,
			Severity:  inc.Severity,
			Color:     SeverityColor(inc.Severity),
			Summary:   summarize(inc.Description),
			DetailURL: DetailURL(inc.ID),
		})
	}
	return r.board.put(r.region, MapView{Center: r.center, Zoom: r.zoom, Markers: markers})
}

// FlyTo возвращает команды центрирования для карт, присутствующих на странице
func FlyTo(board *Board, coords models.Coordinates) []MapFocus {
	var focus []MapFocus
	if board.Has(RegionFullMap) {
		focus = append(focus, MapFocus{Region: RegionFullMap, Coords: coords, Zoom: fullMapFlyZoom})
	}
	if board.Has(RegionMiniMap) {
		focus = append(focus, MapFocus{Region: RegionMiniMap, Coords: coords, Zoom: miniMapFlyZoom})
	}
	return focus
}

func DetailURL(id int64) string {
	return fmt.Sprintf("%s?id=%d", DetailLinkBase, id)
}

func summarize(description string) string {
	if description == "" {
		return "No details."
	}
	runes := []rune(description)
	if len(runes) > summaryMaxRunes {
		runes = runes[:summaryMaxRunes]
	}
	return string(runes) + "..."
}

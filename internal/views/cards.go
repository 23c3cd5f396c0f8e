package views

import (
	"context"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var quantityPrinter = message.NewPrinter(language.English)

type ResourceCard struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Category      string                `json:"category"`
	Quantity      int                   `json:"quantity"`
	QuantityLabel string                `json:"quantity_label"`
	Unit          string                `json:"unit"`
	Status        models.ResourceStatus `json:"status"`
	StatusClass   string                `json:"status_class"`
	BorderClass   string                `json:"border_class"`
}

type VolunteerCard struct {
	ID         int64                  `json:"id"`
	Name       string                 `json:"name"`
	Role       string                 `json:"role"`
	Status     models.VolunteerStatus `json:"status"`
	StatusTone string                 `json:"status_tone"`
	Location   string                 `json:"location"`
	Avatar     string                 `json:"avatar"`
}

// ResourceStatusClasses возвращает классы бейджа и рамки карточки ресурса
func ResourceStatusClasses(status models.ResourceStatus) (statusClass, borderClass string) {
	switch status {
	case models.ResourceLow, models.ResourceCritical:
		return "status-low", "resource-status-low"
	case models.ResourceSurplus:
		return "status-surplus", "resource-status-surplus"
	default:
		return "status-ok", "resource-status-ok"
	}
}

// VolunteerStatusTone: Busy - warning, Offline - muted, остальные - success
func VolunteerStatusTone(status models.VolunteerStatus) string {
	switch status {
	case models.VolunteerBusy:
		return "warning"
	case models.VolunteerOffline:
		return "muted"
	default:
		return "success"
	}
}

func FormatQuantity(quantity int) string {
	return quantityPrinter.Sprintf("%d", quantity)
}

type ResourceGridRenderer struct {
	board *Board
}

func NewResourceGridRenderer(board *Board) *ResourceGridRenderer {
	return &ResourceGridRenderer{board: board}
}

func (r *ResourceGridRenderer) Name() string { return "grid:" + string(RegionResourceGrid) }

func (r *ResourceGridRenderer) Render(_ context.Context, store service.StoreReader) error {
	if !r.board.Has(RegionResourceGrid) {
		return service.ErrTargetAbsent
	}
	resources := store.Resources()
	cards := make([]ResourceCard, 0, len(resources))
	for _, res := range resources {
		statusClass, borderClass := ResourceStatusClasses(res.Status)
		cards = append(cards, ResourceCard{
			ID:            res.ID,
			Name:          res.Name,
			Category:      res.Category,
			Quantity:      res.Quantity,
			QuantityLabel: FormatQuantity(res.Quantity),
			Unit:          res.Unit,
			Status:        res.Status,
			StatusClass:   statusClass,
			BorderClass:   borderClass,
		})
	}
	return r.board.put(RegionResourceGrid, cards)
}

type VolunteerGridRenderer struct {
	board *Board
}

func NewVolunteerGridRenderer(board *Board) *VolunteerGridRenderer {
	return &VolunteerGridRenderer{board: board}
}

func (r *VolunteerGridRenderer) Name() string { return "grid:" + string(RegionVolunteerGrid) }

func (r *VolunteerGridRenderer) Render(_ context.Context, store service.StoreReader) error {
	if !r.board.Has(RegionVolunteerGrid) {
		return service.ErrTargetAbsent
	}
	volunteers := store.Volunteers()
	cards := make([]VolunteerCard, 0, len(volunteers))
	for _, vol := range volunteers {
		cards = append(cards, VolunteerCard{
			ID:         vol.ID,
			Name:       vol.Name,
			Role:       vol.Role,
			Status:     vol.Status,
			StatusTone: VolunteerStatusTone(vol.Status),
			Location:   vol.Location,
			Avatar:     vol.Avatar,
		})
	}
	return r.board.put(RegionVolunteerGrid, cards)
}

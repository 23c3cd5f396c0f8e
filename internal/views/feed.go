package views

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
)

const alertFeedLimit = 10

type AlertItem struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Time          string          `json:"time"`
	ReportedBy    string          `json:"reported_by"`
	Severity      models.Severity `json:"severity"`
	PriorityClass string          `json:"priority_class"`
	Color         string          `json:"color"`
	DetailURL     string          `json:"detail_url"`
}

// AlertFeed - последние инциденты и общий счетчик кризисов
type AlertFeed struct {
	Items []AlertItem `json:"items"`
	Total int         `json:"total"`
}

type AlertFeedRenderer struct {
	board *Board
}

func NewAlertFeedRenderer(board *Board) *AlertFeedRenderer {
	return &AlertFeedRenderer{board: board}
}

func (r *AlertFeedRenderer) Name() string { return "feed:" + string(RegionAlertFeed) }

func (r *AlertFeedRenderer) Render(_ context.Context, store service.StoreReader) error {
	if !r.board.Has(RegionAlertFeed) {
		return service.ErrTargetAbsent
	}
	incidents := store.Incidents()
	latest := incidents
	if len(latest) > alertFeedLimit {
		latest = latest[:alertFeedLimit]
	}

	items := make([]AlertItem, 0, len(latest))
	for _, inc := range latest {
		reportedBy := inc.Reporter.Name
		if reportedBy == "" {
			reportedBy = "Unknown"
		}
		items = append(items, AlertItem{
			ID:            inc.ID,
			Title:         fmt.Sprintf("%s Reported", inc.Type),
			Time:          inc.Time,
			ReportedBy:    reportedBy,
			Severity:      inc.Severity,
			PriorityClass: PriorityClass(inc.Severity),
			Color:         SeverityColor(inc.Severity),
			DetailURL:     DetailURL(inc.ID),
		})
	}
	return r.board.put(RegionAlertFeed, AlertFeed{Items: items, Total: len(incidents)})
}

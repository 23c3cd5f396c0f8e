package views

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
	"github.com/shenikar/crisis_relief_coordinator/internal/service"
)

const detailMapZoom = 15

// IncidentDetail - модель страницы деталей. Found=false означает явное пустое состояние.
type IncidentDetail struct {
	Found       bool                `json:"found"`
	Title       string              `json:"title"`
	ID          int64               `json:"id,omitempty"`
	Type        models.IncidentType `json:"type,omitempty"`
	Severity    string              `json:"severity,omitempty"`
	Time        string              `json:"time,omitempty"`
	Coords      string              `json:"coords,omitempty"`
	Description string              `json:"description,omitempty"`
	Reporter    *ReporterDetail     `json:"reporter,omitempty"`
	Map         *MapFocus           `json:"map,omitempty"`
}

type ReporterDetail struct {
	Name    string              `json:"name"`
	Role    models.ReporterRole `json:"role"`
	Contact string              `json:"contact"`
	Trust   string              `json:"trust"`
	Avatar  string              `json:"avatar"`
}

func NotFoundDetail() IncidentDetail {
	return IncidentDetail{Found: false, Title: "Incident Not Found"}
}

// NewIncidentDetail форматирует инцидент для страницы деталей
func NewIncidentDetail(inc models.Incident) IncidentDetail {
	return IncidentDetail{
		Found:       true,
		Title:       fmt.Sprintf("%s #%s", inc.Type, lastDigits(inc.ID, 4)),
		ID:          inc.ID,
		Type:        inc.Type,
		Severity:    strings.ToUpper(string(inc.Severity)),
		Time:        inc.Time,
		Coords:      fmt.Sprintf("%.4f, %.4f", inc.Coords.Lat, inc.Coords.Lon),
		Description: inc.Description,
		Reporter: &ReporterDetail{
			Name:    inc.Reporter.Name,
			Role:    inc.Reporter.Role,
			Contact: inc.Reporter.Contact,
			Trust:   fmt.Sprintf("%d%%", inc.Reporter.Trust),
			Avatar:  inc.Reporter.Avatar,
		},
		Map: &MapFocus{Region: RegionDetail, Coords: inc.Coords, Zoom: detailMapZoom},
	}
}

func lastDigits(id int64, n int) string {
	s := strconv.FormatInt(id, 10)
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// DetailRenderer рисует страницу деталей для id из параметра страницы
type DetailRenderer struct {
	board *Board
	rawID string
}

func NewDetailRenderer(board *Board, rawID string) *DetailRenderer {
	return &DetailRenderer{board: board, rawID: rawID}
}

func (r *DetailRenderer) Name() string { return "detail:" + string(RegionDetail) }

func (r *DetailRenderer) Render(_ context.Context, store service.StoreReader) error {
	if !r.board.Has(RegionDetail) {
		return service.ErrTargetAbsent
	}
	incident, err := service.NewDetailResolver(store).Resolve(r.rawID)
	if err != nil {
		if errors.Is(err, service.ErrIncidentNotFound) {
			return r.board.put(RegionDetail, NotFoundDetail())
		}
		return err
	}
	return r.board.put(RegionDetail, NewIncidentDetail(incident))
}

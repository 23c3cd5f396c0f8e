package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/crisis_relief_coordinator/internal/models"
)

// ErrIncidentNotFound - запрошенного инцидента нет; страница показывает пустое состояние
var ErrIncidentNotFound = errors.New("incident not found")

// DetailResolver находит один инцидент для страницы деталей
type DetailResolver struct {
	store StoreReader
}

func NewDetailResolver(store StoreReader) *DetailResolver {
	return &DetailResolver{store: store}
}

// Resolve принимает id в текстовом виде (из параметра страницы) и сравнивает его численно
func (r *DetailResolver) Resolve(raw string) (models.Incident, error) {
	id, err := ParseIncidentID(raw)
	if err != nil {
		return models.Incident{}, err
	}
	return r.ResolveID(id)
}

func (r *DetailResolver) ResolveID(id int64) (models.Incident, error) {
	incident, ok := r.store.FindIncident(id)
	if !ok {
		return models.Incident{}, fmt.Errorf("%w: id %d", ErrIncidentNotFound, id)
	}
	return incident, nil
}

// ParseIncidentID разбирает "17192834", " 17192834 " и "17192834.0"
func ParseIncidentID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing id", ErrIncidentNotFound)
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= 1<<63 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrIncidentNotFound, raw)
	}
	return int64(f), nil
}

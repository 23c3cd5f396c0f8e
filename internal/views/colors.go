package views

import "github.com/shenikar/crisis_relief_coordinator/internal/models"

// Трехуровневая цветовая шкала маркеров и ленты
const (
	ColorRed   = "#ef4444"
	ColorAmber = "#f59e0b"
	ColorBlue  = "#3b82f6"
)

// SeverityColor: high - красный, medium - янтарный, все остальное - синий
func SeverityColor(severity models.Severity) string {
	switch severity {
	case models.SeverityHigh:
		return ColorRed
	case models.SeverityMedium:
		return ColorAmber
	default:
		return ColorBlue
	}
}

// PriorityClass - класс элемента ленты оповещений
func PriorityClass(severity models.Severity) string {
	if severity == models.SeverityHigh {
		return "high-priority"
	}
	return "medium-priority"
}

package models

type ResourceStatus string

const (
	ResourceCritical ResourceStatus = "Critical"
	ResourceLow      ResourceStatus = "Low"
	ResourceAdequate ResourceStatus = "Adequate"
	ResourceSurplus  ResourceStatus = "Surplus"
)

// Resource - запас гуманитарной помощи. Статус задается внешней политикой склада.
type Resource struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Quantity int            `json:"quantity" validate:"gte=0"`
	Unit     string         `json:"unit"`
	Status   ResourceStatus `json:"status"`
}

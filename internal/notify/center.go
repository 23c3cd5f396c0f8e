// Package notify реализует временные уведомления дашборда (toast), которые
// исчезают сами по истечении времени жизни.
package notify

import (
	"sort"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	KindInfo  = "info"
	KindAlert = "alert"

	// DefaultLifetime - сколько уведомление остается видимым
	DefaultLifetime = 3500 * time.Millisecond
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	RaisedAt  time.Time `json:"raised_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center хранит активные уведомления; истекшие удаляет go-cache
type Center struct {
	cache    *gocache.Cache
	lifetime time.Duration
	now      func() time.Time
}

func NewCenter(lifetime time.Duration) *Center {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Center{
		cache:    gocache.New(lifetime, 2*lifetime),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Raise показывает уведомление; неизвестный вид сводится к info
func (c *Center) Raise(kind, message string) {
	c.Push(kind, message)
}

// Push - то же, что Raise, но возвращает созданное уведомление
func (c *Center) Push(kind, message string) Notification {
	if kind != KindAlert {
		kind = KindInfo
	}
	now := c.now()
	n := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		RaisedAt:  now,
		ExpiresAt: now.Add(c.lifetime),
	}
	c.cache.Set(n.ID.String(), n, c.lifetime)
	return n
}

// Dismiss убирает уведомление раньше срока
func (c *Center) Dismiss(id uuid.UUID) {
	c.cache.Delete(id.String())
}

// Active возвращает видимые уведомления, старые первыми
func (c *Center) Active() []Notification {
	items := c.cache.Items()
	out := make([]Notification, 0, len(items))
	for _, item := range items {
		if n, ok := item.Object.(Notification); ok {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RaisedAt.Before(out[j].RaisedAt)
	})
	return out
}

package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_PushAndActive(t *testing.T) {
	c := NewCenter(time.Minute)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	c.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first := c.Push(KindAlert, "New Fire Incident reported by Sarah Connor")
	second := c.Push(KindInfo, "System reset")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
	assert.Equal(t, KindAlert, active[0].Kind)
	assert.Equal(t, first.RaisedAt.Add(time.Minute), first.ExpiresAt)
}

func TestCenter_UnknownKindBecomesInfo(t *testing.T) {
	c := NewCenter(time.Minute)

	n := c.Push("warning", "Backend unavailable")

	assert.Equal(t, KindInfo, n.Kind)
}

func TestCenter_Expires(t *testing.T) {
	c := NewCenter(50 * time.Millisecond)

	c.Raise(KindAlert, "New Flood Incident reported by John Wick")
	require.Len(t, c.Active(), 1)

	time.Sleep(120 * time.Millisecond)

	assert.Empty(t, c.Active())
}

func TestCenter_Dismiss(t *testing.T) {
	c := NewCenter(time.Minute)
	n := c.Push(KindAlert, "New Medical Incident reported by Rick Deckard")

	c.Dismiss(n.ID)

	assert.Empty(t, c.Active())
}

func TestNewCenter_DefaultLifetime(t *testing.T) {
	c := NewCenter(0)

	assert.Equal(t, DefaultLifetime, c.lifetime)
}

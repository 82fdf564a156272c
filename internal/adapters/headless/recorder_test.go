package headless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/cairn/internal/domain"
)

func TestRecorder_KeepsLastValues(t *testing.T) {
	r := NewRecorder(nil)

	r.ShowMode("25min")
	r.ShowTime(1500)
	r.ShowControls(true)
	r.ShowPaused(true)
	r.ShowSessions(2)
	r.ShowGuide(domain.GuideWave)

	assert.Equal(t, "25min", r.Mode())
	assert.Equal(t, "25:00", r.Clock())
	assert.True(t, r.Started())
	assert.True(t, r.Paused())
	assert.Equal(t, 2, r.Sessions())
	assert.Equal(t, domain.GuideWave, r.Guide())
}

func TestRecorder_StampsEvents(t *testing.T) {
	now := time.Duration(0)
	r := NewRecorder(func() time.Duration { return now })

	r.ShowGuide(domain.GuideWave)
	now = 3 * time.Second
	r.Celebrate()

	assert.Equal(t, []Event{
		{At: 0, Kind: EventGuide, Value: "wave"},
		{At: 3 * time.Second, Kind: EventCelebrate, Value: "1"},
	}, r.Events())
}

func TestRecorder_DropsRepeatedEvents(t *testing.T) {
	r := NewRecorder(nil)

	r.ShowPaused(false)
	r.ShowPaused(false)
	r.ShowPaused(true)

	assert.Len(t, r.Events(), 2)
}

func TestRecorder_TimeIsNotLogged(t *testing.T) {
	r := NewRecorder(nil)

	for s := 60; s >= 0; s-- {
		r.ShowTime(s)
	}

	assert.Empty(t, r.Events())
	assert.Equal(t, "00:00", r.Clock())
}

func TestRecorder_CairnCopiesStones(t *testing.T) {
	r := NewRecorder(nil)
	stones := []domain.Stone{domain.PickStone(0), domain.PickStone(1)}

	r.RenderCairn(stones, true)
	stones[0] = domain.PickStone(5)

	assert.Equal(t, domain.PickStone(0), r.Stones()[0])
	assert.Equal(t, "2 (drop)", r.Events()[0].Value)
}

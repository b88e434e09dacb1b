package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ha-entity-engine/internal/domain/model"
)

func speedOptions() []model.Option {
	return []model.Option{
		{Value: "off"}, {Value: "low"}, {Value: "medium"}, {Value: "high"},
	}
}

type recorder struct {
	events []ValueChanged
}

func (r *recorder) record(e ValueChanged) { r.events = append(r.events, e) }

func TestControl_ArrowRightThenSpace(t *testing.T) {
	rec := &recorder{}
	c := NewControl(speedOptions(), "low", rec.record)

	c.Dispatch(Event{Kind: Focus})
	idx, ok := c.ActiveIndex()
	require.True(t, ok)
	require.Equal(t, 1, idx)

	c.Dispatch(Event{Kind: KeyDown, Key: KeyArrowRight})
	idx, _ = c.ActiveIndex()
	assert.Equal(t, 2, idx)
	assert.Empty(t, rec.events)

	c.Dispatch(Event{Kind: KeyDown, Key: KeySpace})
	assert.Equal(t, "medium", c.Value())
	require.Len(t, rec.events, 1)
	assert.Equal(t, ValueChanged{Type: "value-changed", Value: "medium"}, rec.events[0])

	// still focused
	idx, ok = c.ActiveIndex()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestControl_FocusDefaultsToFirst(t *testing.T) {
	c := NewControl(speedOptions(), "turbo", nil)
	_, ok := c.ActiveIndex()
	assert.False(t, ok)

	c.Dispatch(Event{Kind: Focus})
	idx, ok := c.ActiveIndex()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestControl_CircularNavigation(t *testing.T) {
	for _, vertical := range []bool{false, true} {
		c := NewControl(speedOptions(), "off", nil)
		c.SetVertical(vertical)
		c.Dispatch(Event{Kind: Focus})

		c.Dispatch(Event{Kind: KeyDown, Key: KeyArrowLeft})
		idx, _ := c.ActiveIndex()
		assert.Equal(t, 3, idx, "left wraps to the end")

		c.Dispatch(Event{Kind: KeyDown, Key: KeyArrowDown})
		idx, _ = c.ActiveIndex()
		assert.Equal(t, 0, idx, "down wraps to the start")

		c.Dispatch(Event{Kind: KeyDown, Key: KeyArrowUp})
		idx, _ = c.ActiveIndex()
		assert.Equal(t, 3, idx)

		c.Dispatch(Event{Kind: KeyDown, Key: KeyHome})
		idx, _ = c.ActiveIndex()
		assert.Equal(t, 0, idx)

		c.Dispatch(Event{Kind: KeyDown, Key: KeyEnd})
		idx, _ = c.ActiveIndex()
		assert.Equal(t, 3, idx)

		c.Dispatch(Event{Kind: KeyDown, Key: "x"})
		idx, _ = c.ActiveIndex()
		assert.Equal(t, 3, idx)
	}
}

func TestControl_BlurClearsActiveIndex(t *testing.T) {
	rec := &recorder{}
	c := NewControl(speedOptions(), "high", rec.record)
	c.Dispatch(Event{Kind: Focus})
	c.Dispatch(Event{Kind: Blur})

	_, ok := c.ActiveIndex()
	assert.False(t, ok)

	// keys do nothing without a highlighted option
	c.Dispatch(Event{Kind: KeyDown, Key: KeySpace})
	assert.Empty(t, rec.events)
	assert.Equal(t, "high", c.Value())
}

func TestControl_PointerDragAwayCancels(t *testing.T) {
	rec := &recorder{}
	c := NewControl(speedOptions(), "off", rec.record)

	c.Dispatch(Event{Kind: PointerDown, Index: 2})
	idx, ok := c.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "off", c.Value())

	c.Dispatch(Event{Kind: PointerUp})
	_, ok = c.ActiveIndex()
	assert.False(t, ok)
	assert.Empty(t, rec.events)
	assert.Equal(t, "off", c.Value())
}

func TestControl_ClickCommits(t *testing.T) {
	rec := &recorder{}
	c := NewControl(speedOptions(), "off", rec.record)

	c.Dispatch(Event{Kind: Click, Index: 3})
	assert.Equal(t, "high", c.Value())
	require.Len(t, rec.events, 1)
	assert.Equal(t, "high", rec.events[0].Value)

	c.Dispatch(Event{Kind: Click, Index: 9})
	assert.Len(t, rec.events, 1)
}

func TestControl_DisabledHasNoHandlers(t *testing.T) {
	rec := &recorder{}
	c := NewControl(speedOptions(), "off", rec.record)
	c.SetDisabled(true)

	assert.Empty(t, c.Handlers())

	c.Dispatch(Event{Kind: Focus})
	c.Dispatch(Event{Kind: Click, Index: 1})
	c.Dispatch(Event{Kind: KeyDown, Key: KeySpace})
	_, ok := c.ActiveIndex()
	assert.False(t, ok)
	assert.Equal(t, "off", c.Value())
	assert.Empty(t, rec.events)

	c.SetDisabled(false)
	assert.Len(t, c.Handlers(), 6)
}

func TestControl_SetOptionsDropsStaleIndex(t *testing.T) {
	c := NewControl(speedOptions(), "high", nil)
	c.Dispatch(Event{Kind: Focus})
	c.SetOptions(speedOptions()[:2])

	_, ok := c.ActiveIndex()
	assert.False(t, ok)
}

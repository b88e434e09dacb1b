// Package selector holds the option-selector state machine, the option tables
// that feed it, and the optimistic toggle.
package selector

import (
	"ha-entity-engine/internal/domain/model"
)

const EventValueChanged = "value-changed"

// ValueChanged is the only event a Control emits.
type ValueChanged struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type EventKind int

const (
	Focus EventKind = iota
	Blur
	KeyDown
	PointerDown
	PointerUp
	Click
)

// Keys understood by KeyDown, named like DOM KeyboardEvent.key.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeySpace      = " "
)

type Event struct {
	Kind EventKind
	Key  string
	// Index of the option under the pointer for PointerDown and Click.
	Index int
}

type Handler func(Event)

// Control is a single-select over a small set of options. Create one per widget.
type Control struct {
	options     []model.Option
	value       string
	activeIndex int // -1 when nothing is highlighted
	vertical    bool
	disabled    bool
	onChange    func(ValueChanged)
}

func NewControl(options []model.Option, value string, onChange func(ValueChanged)) *Control {
	return &Control{
		options:     options,
		value:       value,
		activeIndex: -1,
		onChange:    onChange,
	}
}

func (c *Control) Value() string { return c.value }

func (c *Control) Options() []model.Option { return c.options }

// ActiveIndex returns the highlighted, not yet committed, option.
func (c *Control) ActiveIndex() (int, bool) {
	return c.activeIndex, c.activeIndex >= 0
}

func (c *Control) Vertical() bool { return c.vertical }

func (c *Control) Disabled() bool { return c.disabled }

func (c *Control) SetOptions(options []model.Option) {
	c.options = options
	if c.activeIndex >= len(options) {
		c.activeIndex = -1
	}
}

func (c *Control) SetValue(value string) { c.value = value }

// SetVertical only changes layout; arrow keys keep their meaning.
func (c *Control) SetVertical(vertical bool) { c.vertical = vertical }

func (c *Control) SetDisabled(disabled bool) {
	c.disabled = disabled
	if disabled {
		c.activeIndex = -1
	}
}

// Handlers returns the event handlers to attach. A disabled control has none.
func (c *Control) Handlers() map[EventKind]Handler {
	if c.disabled {
		return nil
	}
	return map[EventKind]Handler{
		Focus:       func(Event) { c.focus() },
		Blur:        func(Event) { c.activeIndex = -1 },
		KeyDown:     func(e Event) { c.keyDown(e.Key) },
		PointerDown: func(e Event) { c.pointerDown(e.Index) },
		PointerUp:   func(Event) { c.activeIndex = -1 },
		Click:       func(e Event) { c.click(e.Index) },
	}
}

// Dispatch routes e to its handler, if the control has one.
func (c *Control) Dispatch(e Event) {
	if h, ok := c.Handlers()[e.Kind]; ok {
		h(e)
	}
}

func (c *Control) indexOf(value string) int {
	for i, o := range c.options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

func (c *Control) focus() {
	if len(c.options) == 0 {
		return
	}
	idx := c.indexOf(c.value)
	if idx < 0 {
		idx = 0
	}
	c.activeIndex = idx
}

func (c *Control) keyDown(key string) {
	n := len(c.options)
	if n == 0 || c.activeIndex < 0 {
		return
	}
	switch key {
	case KeySpace:
		c.commit(c.activeIndex)
	case KeyArrowLeft, KeyArrowUp:
		c.activeIndex = (c.activeIndex - 1 + n) % n
	case KeyArrowRight, KeyArrowDown:
		c.activeIndex = (c.activeIndex + 1) % n
	case KeyHome:
		c.activeIndex = 0
	case KeyEnd:
		c.activeIndex = n - 1
	}
}

func (c *Control) pointerDown(index int) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.activeIndex = index
}

func (c *Control) click(index int) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.commit(index)
}

func (c *Control) commit(index int) {
	c.value = c.options[index].Value
	if c.onChange != nil {
		c.onChange(ValueChanged{Type: EventValueChanged, Value: c.value})
	}
}

package rules

import (
	mapset "github.com/deckarep/golang-set/v2"

	"ha-entity-engine/internal/domain/model"
)

// Icon is an icon reference such as "mdi:lightbulb".
type Icon string

// ColorToken is a semantic color name; the renderer maps it to a concrete color.
type ColorToken string

const (
	ColorActive   ColorToken = "active"
	ColorAlerting ColorToken = "alerting"
)

// IconFunc resolves an icon for a state. ok=false lets the registry fall back
// to the rule's DefaultIcon.
type IconFunc func(state, deviceClass string, attrs model.Attributes) (Icon, bool)

// ColorFunc is only called for active entities.
type ColorFunc func(state, deviceClass string, attrs model.Attributes) (ColorToken, bool)

// ToggleFunc maps the current on/off reading of an entity to the service that flips it.
type ToggleFunc func(currentlyOn bool, state string) (serviceDomain, service string)

// SelectFunc turns a chosen option of a mode attribute into a service call.
type SelectFunc func(entity *model.EntityState, attribute, option string) (model.ServiceCall, bool)

// ValueAction describes how a numeric intent is sent for a domain.
type ValueAction struct {
	Service string
	Field   string
	Scale   float64 // multiplier applied to the 0-100 input, 0 means 1
}

// DomainRule keeps every per-domain decision in one place.
type DomainRule struct {
	Domain string

	// Momentary domains have no persistent on state: active unless unavailable.
	Momentary bool
	// OffIsActive keeps "off" from short-circuiting to inactive.
	OffIsActive bool
	// InactiveStates: active unless state is one of these.
	InactiveStates mapset.Set[string]
	// ActiveStates: active only if state is one of these. Wins over InactiveStates.
	ActiveStates mapset.Set[string]

	DefaultIcon Icon
	IconFunc    IconFunc
	ColorFunc   ColorFunc
	// Uncolored disables the generic active color for the domain.
	Uncolored bool

	ToggleFunc ToggleFunc
	SelectFunc SelectFunc
	Value      *ValueAction
}

func (r *DomainRule) active(state string) bool {
	if r.ActiveStates != nil {
		return r.ActiveStates.Contains(state)
	}
	if r.InactiveStates != nil {
		return !r.InactiveStates.Contains(state)
	}
	return true
}

func states(values ...string) mapset.Set[string] {
	return mapset.NewSet[string](values...)
}

func onOff(on bool, onIcon, offIcon Icon) Icon {
	if on {
		return onIcon
	}
	return offIcon
}

package rules

import (
	"ha-entity-engine/internal/domain/model"
)

// Registry maps a domain to its rule. It is built once and only read afterwards.
type Registry struct {
	rules map[string]*DomainRule
}

// Default is the compiled-in registry used by the package level helpers.
var Default = NewRegistry()

func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]*DomainRule)}
	for _, rule := range builtinRules() {
		r.rules[rule.Domain] = rule
	}
	for domain, icon := range fallbackDomainIcons {
		if _, ok := r.rules[domain]; !ok {
			r.rules[domain] = &DomainRule{Domain: domain, DefaultIcon: icon}
		}
	}
	return r
}

func builtinRules() []*DomainRule {
	return []*DomainRule{
		alarmRule(),
		alertRule(),
		automationRule(),
		binarySensorRule(),
		momentaryRule("button", IconButton, buttonIcon),
		momentaryRule("event", IconEvent, nil),
		momentaryRule("input_button", IconInputButton, nil),
		momentaryRule("scene", IconScene, nil),
		cameraRule(),
		climateRule(),
		coverRule(),
		deviceTrackerRule(),
		fanRule(),
		groupRule(),
		humidifierRule(),
		inputBooleanRule(),
		inputDatetimeRule(),
		lawnMowerRule(),
		lockRule(),
		mediaPlayerRule(),
		numberRule("number"),
		numberRule("input_number"),
		personRule(),
		plantRule(),
		selectRule("select"),
		selectRule("input_select"),
		sensorRule(),
		sunRule(),
		switchRule(),
		timerRule(),
		updateRule(),
		vacuumRule(),
		valveRule(),
		waterHeaterRule(),
		lightRule(),
	}
}

// Rule returns the rule for domain, if one is registered.
func (r *Registry) Rule(domain string) (*DomainRule, bool) {
	rule, ok := r.rules[domain]
	return rule, ok
}

// IsActive decides whether an entity is "doing something". The order of checks matters:
// momentary domains first, then sentinels, then the blanket off rule, then overrides.
func (r *Registry) IsActive(domain, state string, attrs model.Attributes) bool {
	rule, known := r.rules[domain]
	if known && rule.Momentary {
		return state != model.StateUnavailable
	}
	if model.IsUnavailableState(state) {
		return false
	}
	if state == model.StateOff && !(known && rule.OffIsActive) {
		return false
	}
	if !known {
		return true
	}
	return rule.active(state)
}

// Icon resolves an icon. Unknown domains return ok=false and callers pick a default.
func (r *Registry) Icon(domain, state, deviceClass string, attrs model.Attributes) (Icon, bool) {
	rule, ok := r.rules[domain]
	if !ok {
		return "", false
	}
	if rule.IconFunc != nil {
		if icon, ok := rule.IconFunc(state, deviceClass, attrs); ok {
			return icon, true
		}
	}
	if rule.DefaultIcon != "" {
		return rule.DefaultIcon, true
	}
	return "", false
}

// Color resolves a semantic color. Inactive entities never get one.
func (r *Registry) Color(domain, state, deviceClass string, attrs model.Attributes) (ColorToken, bool) {
	if !r.IsActive(domain, state, attrs) {
		return "", false
	}
	rule, ok := r.rules[domain]
	if !ok {
		return "", false
	}
	if rule.ColorFunc != nil {
		return rule.ColorFunc(state, deviceClass, attrs)
	}
	if rule.Uncolored {
		return "", false
	}
	return ColorActive, true
}

// ToggleCommand returns the service that flips an entity of domain. currentState is
// consulted for domains that can be mid-transit.
func (r *Registry) ToggleCommand(domain string, currentlyOn bool, currentState string) (string, string) {
	if rule, ok := r.rules[domain]; ok && rule.ToggleFunc != nil {
		return rule.ToggleFunc(currentlyOn, currentState)
	}
	return domain, turnOnOff(!currentlyOn)
}

// SelectCommand maps a chosen option of attribute to a service call.
func (r *Registry) SelectCommand(entity *model.EntityState, attribute, option string) (model.ServiceCall, bool) {
	domain, err := entity.Domain()
	if err != nil {
		return model.ServiceCall{}, false
	}
	rule, ok := r.rules[domain]
	if !ok || rule.SelectFunc == nil {
		return model.ServiceCall{}, false
	}
	return rule.SelectFunc(entity, attribute, option)
}

// ValueCommand maps a 0-100 style numeric intent to a service call.
func (r *Registry) ValueCommand(entity *model.EntityState, value float64) (model.ServiceCall, bool) {
	domain, err := entity.Domain()
	if err != nil {
		return model.ServiceCall{}, false
	}
	rule, ok := r.rules[domain]
	if !ok || rule.Value == nil {
		return model.ServiceCall{}, false
	}
	scale := rule.Value.Scale
	if scale == 0 {
		scale = 1
	}
	return model.NewServiceCall(domain, rule.Value.Service, entity.EntityID).With(rule.Value.Field, value*scale), true
}

func IsActive(domain, state string, attrs model.Attributes) bool {
	return Default.IsActive(domain, state, attrs)
}

func ResolveIcon(domain, state, deviceClass string, attrs model.Attributes) (Icon, bool) {
	return Default.Icon(domain, state, deviceClass, attrs)
}

func ResolveColor(domain, state, deviceClass string, attrs model.Attributes) (ColorToken, bool) {
	return Default.Color(domain, state, deviceClass, attrs)
}

func ToggleCommand(domain string, currentlyOn bool, currentState string) (string, string) {
	return Default.ToggleCommand(domain, currentlyOn, currentState)
}

func turnOnOff(on bool) string {
	if on {
		return "turn_on"
	}
	return "turn_off"
}

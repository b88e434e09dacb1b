package selector

import (
	"errors"
	"fmt"
	"sort"

	"ha-entity-engine/internal/domain/display"
	"ha-entity-engine/internal/domain/fan"
	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/rules"
)

var ErrNoOptions = errors.New("selector: no options")

// Attribute names that select the entity state itself rather than an attribute.
const (
	AttributeState  = "state"
	AttributeOption = "option"
)

// primaryAttributes is the mode attribute offered when the caller names none.
var primaryAttributes = map[string]string{
	"alarm_control_panel": AttributeState,
	"climate":             "hvac_mode",
	"fan":                 "percentage",
	"humidifier":          "mode",
	"input_select":        AttributeOption,
	"lock":                AttributeState,
	"media_player":        "source",
	"select":              AttributeOption,
	"vacuum":              "fan_speed",
	"water_heater":        "operation_mode",
}

// listAttributes maps a mode attribute to the attribute holding its choices.
var listAttributes = map[string]map[string]string{
	"climate": {
		"preset_mode": "preset_modes",
		"fan_mode":    "fan_modes",
		"swing_mode":  "swing_modes",
	},
	"fan":          {"preset_mode": "preset_modes"},
	"humidifier":   {"mode": "available_modes"},
	"media_player": {"source": "source_list", "sound_mode": "sound_mode_list"},
	"vacuum":       {"fan_speed": "fan_speed_list"},
	"water_heater": {"operation_mode": "operation_list"},
}

const lockFeatureOpen = 1

var lockStateOptions = map[string]string{
	"locked":    "lock",
	"locking":   "lock",
	"unlocked":  "unlock",
	"unlocking": "unlock",
	"open":      "open",
	"opening":   "open",
}

// PrimaryAttribute returns the default mode attribute of domain.
func PrimaryAttribute(domain string) (string, bool) {
	attr, ok := primaryAttributes[domain]
	return attr, ok
}

// OptionsFor lists the choices of attribute for e. An empty attribute means the
// domain's primary one.
func OptionsFor(e *model.EntityState, attribute string, f *display.Formatter) ([]model.Option, error) {
	domain, err := e.Domain()
	if err != nil {
		return nil, err
	}
	if attribute == "" {
		attr, ok := PrimaryAttribute(domain)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no mode attribute", ErrNoOptions, domain)
		}
		attribute = attr
	}

	var options []model.Option
	switch {
	case domain == "alarm_control_panel" && attribute == AttributeState:
		options = alarmOptions(e, f)
	case domain == "climate" && attribute == "hvac_mode":
		options = hvacOptions(e, f)
	case domain == "fan" && attribute == "percentage":
		options = fanSpeedOptions(e, f)
	case domain == "fan" && attribute == "direction":
		options = valueOptions(domain, attribute, []string{"forward", "reverse"}, f)
	case domain == "lock" && attribute == AttributeState:
		options = lockOptions(e, f)
	case (domain == "select" || domain == "input_select") && attribute == AttributeOption:
		options = valueOptions(domain, attribute, e.Attributes.Strings("options"), nil)
	default:
		if list, ok := listAttributes[domain][attribute]; ok {
			options = valueOptions(domain, attribute, e.Attributes.Strings(list), f)
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoOptions, e.EntityID, attribute)
	}
	return options, nil
}

// CurrentValue returns which option of attribute e currently holds.
func CurrentValue(e *model.EntityState, attribute string) string {
	domain, _ := e.Domain()
	if attribute == "" {
		attribute, _ = PrimaryAttribute(domain)
	}
	switch {
	case domain == "lock" && attribute == AttributeState:
		return lockStateOptions[e.State]
	case attribute == AttributeState, attribute == AttributeOption:
		return e.State
	case domain == "climate" && attribute == "hvac_mode":
		return e.State
	case domain == "fan" && attribute == "percentage":
		if e.State == model.StateOff {
			return string(fan.Off)
		}
		pct, _ := e.Attributes.Float("percentage")
		return string(fan.PercentageToSpeed(pct, fan.Step(e.Attributes)))
	}
	return e.Attributes.String(attribute)
}

func valueOptions(domain, attribute string, values []string, f *display.Formatter) []model.Option {
	options := make([]model.Option, 0, len(values))
	for _, v := range values {
		label := v
		if f != nil {
			label = f.FormatAttributeValue(domain, attribute, v)
		}
		options = append(options, model.Option{Value: v, Label: label})
	}
	return options
}

func stateLabel(f *display.Formatter, domain, state string) string {
	if f == nil {
		return state
	}
	return f.Format(domain, state, nil)
}

func alarmOptions(e *model.EntityState, f *display.Formatter) []model.Option {
	var options []model.Option
	for _, mode := range rules.AlarmModes {
		if mode.Feature != 0 && !e.Attributes.SupportsFeature(mode.Feature) {
			continue
		}
		options = append(options, model.Option{
			Value: mode.State,
			Label: stateLabel(f, "alarm_control_panel", mode.State),
			Icon:  string(rules.AlarmModeIcon(mode.State)),
		})
	}
	return options
}

func hvacOptions(e *model.EntityState, f *display.Formatter) []model.Option {
	modes := append([]string(nil), e.Attributes.Strings("hvac_modes")...)
	order := make(map[string]int, len(rules.HVACModes))
	for i, m := range rules.HVACModes {
		order[m] = i
	}
	rank := func(m string) int {
		if i, ok := order[m]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(modes, func(i, j int) bool { return rank(modes[i]) < rank(modes[j]) })

	options := make([]model.Option, 0, len(modes))
	for _, m := range modes {
		icon, _ := rules.HVACModeIcon(m)
		options = append(options, model.Option{Value: m, Label: stateLabel(f, "climate", m), Icon: string(icon)})
	}
	return options
}

func fanSpeedOptions(e *model.EntityState, f *display.Formatter) []model.Option {
	count := fan.SpeedCount(fan.Step(e.Attributes))
	speeds, ok := fan.Speeds(count)
	if !ok {
		return nil
	}
	options := make([]model.Option, 0, len(speeds))
	for _, s := range speeds {
		icon, _ := fan.SpeedIcon(s, count)
		label := string(s)
		if f != nil {
			label = f.FormatAttributeValue("fan", "percentage", string(s))
		}
		options = append(options, model.Option{Value: string(s), Label: label, Icon: icon})
	}
	return options
}

func lockOptions(e *model.EntityState, f *display.Formatter) []model.Option {
	values := []string{"lock", "unlock"}
	if e.Attributes.SupportsFeature(lockFeatureOpen) {
		values = append(values, "open")
	}
	return valueOptions("lock", AttributeState, values, f)
}

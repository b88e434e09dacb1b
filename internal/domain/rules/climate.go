package rules

import (
	"slices"

	"ha-entity-engine/internal/domain/fan"
	"ha-entity-engine/internal/domain/model"
)

// HVACModes is the display order of climate modes.
var HVACModes = []string{"auto", "heat_cool", "heat", "cool", "dry", "fan_only", "off"}

var hvacModeIcons = map[string]Icon{
	"auto":      IconThermostatAuto,
	"heat_cool": IconSunSnowflake,
	"heat":      IconFire,
	"cool":      IconSnowflake,
	"dry":       IconWaterPercent,
	"fan_only":  IconFan,
	"off":       IconPower,
}

var hvacColored = states("auto", "heat_cool", "heat", "cool", "dry", "fan_only")

// HVACModeIcon returns the icon of a climate mode.
func HVACModeIcon(mode string) (Icon, bool) {
	icon, ok := hvacModeIcons[mode]
	return icon, ok
}

func climateRule() *DomainRule {
	return &DomainRule{
		Domain:      "climate",
		DefaultIcon: IconThermostat,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return HVACModeIcon(state)
		},
		ColorFunc: func(state, _ string, _ model.Attributes) (ColorToken, bool) {
			if hvacColored.Contains(state) {
				return ColorToken("climate-" + state), true
			}
			return ColorActive, true
		},
		SelectFunc: attributeSelect("climate", map[string]selectTarget{
			"hvac_mode":   {Service: "set_hvac_mode", Field: "hvac_mode"},
			"preset_mode": {Service: "set_preset_mode", Field: "preset_mode"},
			"fan_mode":    {Service: "set_fan_mode", Field: "fan_mode"},
			"swing_mode":  {Service: "set_swing_mode", Field: "swing_mode"},
		}),
		Value: &ValueAction{Service: "set_temperature", Field: "temperature"},
	}
}

func waterHeaterRule() *DomainRule {
	return &DomainRule{
		Domain:      "water_heater",
		DefaultIcon: IconWaterBoiler,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == model.StateOff, IconWaterBoilerOff, IconWaterBoiler), true
		},
		SelectFunc: attributeSelect("water_heater", map[string]selectTarget{
			"operation_mode": {Service: "set_operation_mode", Field: "operation_mode"},
		}),
		Value: &ValueAction{Service: "set_temperature", Field: "temperature"},
	}
}

func humidifierRule() *DomainRule {
	return &DomainRule{
		Domain:      "humidifier",
		DefaultIcon: IconAirHumidifier,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == model.StateOff, IconAirHumidifierOff, IconAirHumidifier), true
		},
		SelectFunc: attributeSelect("humidifier", map[string]selectTarget{
			"mode": {Service: "set_mode", Field: "mode"},
		}),
		Value: &ValueAction{Service: "set_humidity", Field: "humidity"},
	}
}

func fanRule() *DomainRule {
	modes := attributeSelect("fan", map[string]selectTarget{
		"preset_mode": {Service: "set_preset_mode", Field: "preset_mode"},
		"direction":   {Service: "set_direction", Field: "direction"},
	})
	return &DomainRule{
		Domain:      "fan",
		DefaultIcon: IconFan,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == model.StateOff, IconFanOff, IconFan), true
		},
		SelectFunc: func(entity *model.EntityState, attribute, option string) (model.ServiceCall, bool) {
			if attribute != "percentage" {
				return modes(entity, attribute, option)
			}
			step := fan.Step(entity.Attributes)
			count := fan.SpeedCount(step)
			if !fan.SupportsNamedSpeeds(count) {
				return model.ServiceCall{}, false
			}
			if speeds, _ := fan.Speeds(count); !slices.Contains(speeds, fan.Speed(option)) {
				return model.ServiceCall{}, false
			}
			pct := fan.SpeedToPercentage(fan.Speed(option), step)
			return model.NewServiceCall("fan", "set_percentage", entity.EntityID).With("percentage", pct), true
		},
		Value: &ValueAction{Service: "set_percentage", Field: "percentage"},
	}
}

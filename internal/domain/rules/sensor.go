package rules

import (
	"fmt"
	"math"

	"ha-entity-engine/internal/domain/model"
)

const (
	IconBattery                Icon = "mdi:battery"
	IconBatteryAlert           Icon = "mdi:battery-alert"
	IconBatteryAlertVariant    Icon = "mdi:battery-alert-variant-outline"
	IconBatteryCharging        Icon = "mdi:battery-charging"
	IconBatteryChargingOutline Icon = "mdi:battery-charging-outline"
	IconBatteryOutline         Icon = "mdi:battery-outline"
	IconBatteryUnknown         Icon = "mdi:battery-unknown"
)

var sensorDeviceClassIcons = map[string]Icon{
	"apparent_power":             IconFlash,
	"aqi":                        IconAirFilter,
	"carbon_dioxide":             IconMoleculeCO2,
	"carbon_monoxide":            IconMoleculeCO,
	"current":                    IconCurrentAC,
	"date":                       IconCalendar,
	"energy":                     IconLightningBolt,
	"frequency":                  IconSineWave,
	"gas":                        IconMeterGas,
	"humidity":                   IconWaterPercent,
	"illuminance":                IconBrightness5,
	"monetary":                   IconCash,
	"nitrogen_dioxide":           IconMolecule,
	"nitrogen_monoxide":          IconMolecule,
	"nitrous_oxide":              IconMolecule,
	"ozone":                      IconMolecule,
	"pm1":                        IconMolecule,
	"pm10":                       IconMolecule,
	"pm25":                       IconMolecule,
	"power":                      IconFlash,
	"power_factor":               "mdi:angle-acute",
	"pressure":                   IconGauge,
	"reactive_power":             IconFlash,
	"signal_strength":            IconWifi,
	"sulphur_dioxide":            IconMolecule,
	"temperature":                IconThermometer,
	"timestamp":                  IconClock,
	"volatile_organic_compounds": IconMolecule,
	"voltage":                    IconSineWave,
}

// BatteryIcon picks a battery level icon. level may be a number, a numeric string,
// or the "on"/"off" of a low battery binary sensor.
func BatteryIcon(level interface{}, charging bool) Icon {
	value, ok := model.ToFloat(level)
	if !ok {
		switch level {
		case model.StateOff:
			return IconBattery
		case model.StateOn:
			return IconBatteryAlert
		}
		return IconBatteryUnknown
	}
	rounded := int(math.Round(value/10)) * 10
	if rounded > 100 {
		rounded = 100
	}
	if charging && value >= 10 {
		return Icon(fmt.Sprintf("mdi:battery-charging-%d", rounded))
	}
	if charging {
		return IconBatteryChargingOutline
	}
	if value <= 5 {
		return IconBatteryAlertVariant
	}
	if rounded == 100 {
		return IconBattery
	}
	return Icon(fmt.Sprintf("mdi:battery-%d", rounded))
}

func batteryLevel(state string, attrs model.Attributes) interface{} {
	if level, ok := attrs["battery_level"]; ok {
		return level
	}
	return state
}

func batteryCharging(attrs model.Attributes) bool {
	return attrs.Bool("battery_charging") || attrs.Bool("is_charging")
}

func sensorRule() *DomainRule {
	return &DomainRule{
		Domain:      "sensor",
		DefaultIcon: IconEye,
		IconFunc: func(state, deviceClass string, attrs model.Attributes) (Icon, bool) {
			if deviceClass == "battery" {
				return BatteryIcon(batteryLevel(state, attrs), batteryCharging(attrs)), true
			}
			if icon, ok := sensorDeviceClassIcons[deviceClass]; ok {
				return icon, true
			}
			switch attrs.String("unit_of_measurement") {
			case "°C", "°F":
				return IconThermometer, true
			}
			return "", false
		},
		ColorFunc: func(state, deviceClass string, attrs model.Attributes) (ColorToken, bool) {
			if deviceClass != "battery" {
				return "", false
			}
			value, ok := model.ToFloat(batteryLevel(state, attrs))
			if !ok {
				return "", false
			}
			switch {
			case value <= 30:
				return "sensor-battery-low", true
			case value <= 70:
				return "sensor-battery-medium", true
			}
			return "sensor-battery-high", true
		},
	}
}

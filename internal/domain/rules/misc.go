package rules

import (
	"ha-entity-engine/internal/domain/model"
)

// Supported feature bit of update entities reporting install progress.
const UpdateFeatureProgress = 4

// UpdateIsInstalling reports whether an update entity is mid-install.
func UpdateIsInstalling(attrs model.Attributes) bool {
	if !attrs.SupportsFeature(UpdateFeatureProgress) {
		return false
	}
	if attrs.Bool("in_progress") {
		return true
	}
	progress, ok := attrs.Float("in_progress")
	return ok && progress > 0
}

func momentaryRule(domain string, icon Icon, iconFunc IconFunc) *DomainRule {
	rule := &DomainRule{
		Domain:      domain,
		Momentary:   true,
		DefaultIcon: icon,
		IconFunc:    iconFunc,
	}
	switch domain {
	case "button", "input_button":
		rule.ToggleFunc = func(bool, string) (string, string) { return domain, "press" }
	case "scene":
		rule.ToggleFunc = func(bool, string) (string, string) { return domain, "turn_on" }
	}
	return rule
}

func buttonIcon(_, deviceClass string, _ model.Attributes) (Icon, bool) {
	switch deviceClass {
	case "restart":
		return IconRestart, true
	case "update":
		return IconPackageUp, true
	}
	return "", false
}

func alertRule() *DomainRule {
	// An alert that is "off" was silenced but not resolved; only idle is quiet.
	return &DomainRule{
		Domain:         "alert",
		OffIsActive:    true,
		InactiveStates: states("idle"),
		DefaultIcon:    IconAlert,
	}
}

func automationRule() *DomainRule {
	return &DomainRule{
		Domain:      "automation",
		DefaultIcon: IconRobot,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			switch state {
			case model.StateUnavailable:
				return IconRobotConfused, true
			case model.StateOff:
				return IconRobotOff, true
			}
			return IconRobot, true
		},
	}
}

func cameraRule() *DomainRule {
	return &DomainRule{
		Domain:       "camera",
		ActiveStates: states("streaming"),
		DefaultIcon:  IconVideo,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == model.StateOff, IconVideoOff, IconVideo), true
		},
	}
}

func groupRule() *DomainRule {
	return &DomainRule{
		Domain:       "group",
		ActiveStates: states("on", "home", "open", "locked", "problem"),
		DefaultIcon:  IconGroup,
		// Groups are switched through the homeassistant umbrella domain.
		ToggleFunc: func(currentlyOn bool, _ string) (string, string) {
			return "homeassistant", turnOnOff(!currentlyOn)
		},
	}
}

func inputBooleanRule() *DomainRule {
	return &DomainRule{
		Domain:      "input_boolean",
		DefaultIcon: IconToggleSwitch,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == model.StateOn, IconCheckCircleOutline, IconCloseCircleOutline), true
		},
	}
}

func inputDatetimeRule() *DomainRule {
	return &DomainRule{
		Domain:      "input_datetime",
		DefaultIcon: IconCalendarClock,
		IconFunc: func(_, _ string, attrs model.Attributes) (Icon, bool) {
			if !attrs.Bool("has_date") {
				return IconClock, true
			}
			if !attrs.Bool("has_time") {
				return IconCalendar, true
			}
			return "", false
		},
	}
}

func lawnMowerRule() *DomainRule {
	return &DomainRule{
		Domain:       "lawn_mower",
		ActiveStates: states("mowing", "error"),
		DefaultIcon:  IconRobotMower,
		ToggleFunc: func(currentlyOn bool, _ string) (string, string) {
			if currentlyOn {
				return "lawn_mower", "dock"
			}
			return "lawn_mower", "start_mowing"
		},
	}
}

func lightRule() *DomainRule {
	return &DomainRule{
		Domain:      "light",
		DefaultIcon: IconLightbulb,
		Value:       &ValueAction{Service: "turn_on", Field: "brightness_pct"},
	}
}

func plantRule() *DomainRule {
	return &DomainRule{
		Domain:       "plant",
		ActiveStates: states("problem"),
		DefaultIcon:  IconFlower,
	}
}

func sunRule() *DomainRule {
	return &DomainRule{
		Domain:      "sun",
		DefaultIcon: IconWhiteBalanceSunny,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == "above_horizon", IconWhiteBalanceSunny, IconWeatherNight), true
		},
		ColorFunc: func(state, _ string, _ model.Attributes) (ColorToken, bool) {
			if state == "above_horizon" {
				return "sun-day", true
			}
			return "sun-night", true
		},
	}
}

func switchRule() *DomainRule {
	return &DomainRule{
		Domain:      "switch",
		DefaultIcon: IconToggleVariant,
		IconFunc: func(state, deviceClass string, _ model.Attributes) (Icon, bool) {
			on := state == model.StateOn
			switch deviceClass {
			case "outlet":
				return onOff(on, IconPowerPlug, IconPowerPlugOff), true
			case "switch":
				return onOff(on, IconToggleVariant, IconToggleVariantOff), true
			}
			return IconToggleVariant, true
		},
	}
}

func timerRule() *DomainRule {
	return &DomainRule{
		Domain:       "timer",
		ActiveStates: states("active"),
		DefaultIcon:  IconTimerOutline,
		ToggleFunc: func(currentlyOn bool, _ string) (string, string) {
			if currentlyOn {
				return "timer", "pause"
			}
			return "timer", "start"
		},
	}
}

func updateRule() *DomainRule {
	return &DomainRule{
		Domain:      "update",
		DefaultIcon: IconPackage,
		IconFunc: func(state, _ string, attrs model.Attributes) (Icon, bool) {
			if state != model.StateOn {
				return IconPackage, true
			}
			return onOff(UpdateIsInstalling(attrs), IconPackageDown, IconPackageUp), true
		},
		ColorFunc: func(_, _ string, attrs model.Attributes) (ColorToken, bool) {
			if UpdateIsInstalling(attrs) {
				return "update-installing", true
			}
			return "update", true
		},
	}
}

func vacuumRule() *DomainRule {
	return &DomainRule{
		Domain:         "vacuum",
		InactiveStates: states("idle", "docked", "paused"),
		DefaultIcon:    IconRobotVacuum,
		ToggleFunc: func(currentlyOn bool, _ string) (string, string) {
			if currentlyOn {
				return "vacuum", "return_to_base"
			}
			return "vacuum", "start"
		},
		SelectFunc: attributeSelect("vacuum", map[string]selectTarget{
			"fan_speed": {Service: "set_fan_speed", Field: "fan_speed"},
		}),
	}
}

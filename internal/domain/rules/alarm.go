package rules

import (
	"strings"

	"ha-entity-engine/internal/domain/model"
)

const alarmDomain = "alarm_control_panel"

// Supported feature bits of alarm_control_panel entities.
const (
	AlarmFeatureArmHome         = 1
	AlarmFeatureArmAway         = 2
	AlarmFeatureArmNight        = 4
	AlarmFeatureTrigger         = 8
	AlarmFeatureArmCustomBypass = 16
	AlarmFeatureArmVacation     = 32
)

// AlarmMode is one selectable alarm state and the service that reaches it.
type AlarmMode struct {
	State   string
	Feature int
	Service string
}

// AlarmModes lists the modes in the order they are offered to the user.
var AlarmModes = []AlarmMode{
	{State: "armed_home", Feature: AlarmFeatureArmHome, Service: "alarm_arm_home"},
	{State: "armed_away", Feature: AlarmFeatureArmAway, Service: "alarm_arm_away"},
	{State: "armed_night", Feature: AlarmFeatureArmNight, Service: "alarm_arm_night"},
	{State: "armed_vacation", Feature: AlarmFeatureArmVacation, Service: "alarm_arm_vacation"},
	{State: "armed_custom_bypass", Feature: AlarmFeatureArmCustomBypass, Service: "alarm_arm_custom_bypass"},
	{State: "disarmed", Service: "alarm_disarm"},
}

var alarmIcons = map[string]Icon{
	"armed_away":          IconShieldLock,
	"armed_vacation":      IconShieldAirplane,
	"armed_home":          IconShieldHome,
	"armed_night":         IconShieldMoon,
	"armed_custom_bypass": IconSecurity,
	"pending":             IconShieldOutline,
	"arming":              IconShieldOutline,
	"triggered":           IconBellRing,
	"disarmed":            IconShieldOff,
}

// AlarmModeIcon returns the icon for an alarm state.
func AlarmModeIcon(state string) Icon {
	if icon, ok := alarmIcons[state]; ok {
		return icon
	}
	return IconShield
}

func alarmRule() *DomainRule {
	return &DomainRule{
		Domain:         alarmDomain,
		InactiveStates: states("disarmed"),
		DefaultIcon:    IconShield,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return AlarmModeIcon(state), true
		},
		ColorFunc: func(state, _ string, _ model.Attributes) (ColorToken, bool) {
			switch {
			case strings.HasPrefix(state, "armed"):
				return "alarm-armed", true
			case state == "arming":
				return "alarm-arming", true
			case state == "pending":
				return "alarm-pending", true
			case state == "triggered":
				return "alarm-triggered", true
			}
			return ColorActive, true
		},
		ToggleFunc: func(currentlyOn bool, _ string) (string, string) {
			if currentlyOn {
				return alarmDomain, "alarm_disarm"
			}
			return alarmDomain, "alarm_arm_away"
		},
		SelectFunc: func(entity *model.EntityState, _ string, option string) (model.ServiceCall, bool) {
			for _, mode := range AlarmModes {
				if mode.State == option {
					return model.NewServiceCall(alarmDomain, mode.Service, entity.EntityID), true
				}
			}
			return model.ServiceCall{}, false
		},
	}
}

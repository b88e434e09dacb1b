package rules

import (
	"ha-entity-engine/internal/domain/model"
)

func presenceColor(state, _ string, _ model.Attributes) (ColorToken, bool) {
	if state == "home" {
		return "person-home", true
	}
	return "person-zone", true
}

func deviceTrackerRule() *DomainRule {
	return &DomainRule{
		Domain:         "device_tracker",
		InactiveStates: states("not_home"),
		DefaultIcon:    IconAccount,
		IconFunc: func(state, _ string, attrs model.Attributes) (Icon, bool) {
			home := state == "home"
			switch attrs.String("source_type") {
			case "router":
				return onOff(home, IconLanConnect, IconLanDisconnect), true
			case "bluetooth", "bluetooth_le":
				return onOff(home, IconBluetoothConnect, IconBluetooth), true
			}
			return onOff(state == "not_home", IconAccountArrowRight, IconAccount), true
		},
		ColorFunc: presenceColor,
	}
}

func personRule() *DomainRule {
	return &DomainRule{
		Domain:         "person",
		InactiveStates: states("not_home"),
		DefaultIcon:    IconAccount,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			return onOff(state == "not_home", IconAccountArrowRight, IconAccount), true
		},
		ColorFunc: presenceColor,
	}
}

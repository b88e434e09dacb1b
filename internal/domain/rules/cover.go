package rules

import (
	"ha-entity-engine/internal/domain/model"
)

func coverIcon(state, deviceClass string, _ model.Attributes) (Icon, bool) {
	open := state != "closed"

	transit := func(closed, opened Icon) Icon {
		switch state {
		case "opening":
			return IconArrowUpBox
		case "closing":
			return IconArrowDownBox
		case "closed":
			return closed
		}
		return opened
	}

	switch deviceClass {
	case "garage":
		return transit(IconGarage, IconGarageOpen), true
	case "gate":
		switch state {
		case "opening", "closing":
			return IconGateArrowRight, true
		case "closed":
			return IconGate, true
		}
		return IconGateOpen, true
	case "door":
		return onOff(open, IconDoorOpen, IconDoorClosed), true
	case "damper":
		return onOff(open, IconCircle, IconCircleSlash), true
	case "shutter":
		return transit(IconWindowShutter, IconWindowShutterOpen), true
	case "curtain":
		switch state {
		case "opening":
			return IconArrowSplitVertical, true
		case "closing":
			return IconArrowCollapseHoriz, true
		case "closed":
			return IconCurtainsClosed, true
		}
		return IconCurtains, true
	case "blind", "shade":
		return transit(IconBlindsClosed, IconBlinds), true
	}
	return transit(IconWindowClosed, IconWindowOpen), true
}

// transitToggle stops a moving entity instead of reversing it.
func transitToggle(domain, openService, closeService, stopService string) ToggleFunc {
	return func(currentlyOn bool, state string) (string, string) {
		if state == "opening" || state == "closing" {
			return domain, stopService
		}
		if currentlyOn {
			return domain, closeService
		}
		return domain, openService
	}
}

func coverRule() *DomainRule {
	return &DomainRule{
		Domain:         "cover",
		InactiveStates: states("closed"),
		DefaultIcon:    IconWindowOpen,
		IconFunc:       coverIcon,
		ToggleFunc:     transitToggle("cover", "open_cover", "close_cover", "stop_cover"),
		Value:          &ValueAction{Service: "set_cover_position", Field: "position"},
	}
}

func valveRule() *DomainRule {
	return &DomainRule{
		Domain:         "valve",
		InactiveStates: states("closed"),
		DefaultIcon:    IconValve,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			switch state {
			case "opening", "closing":
				return IconValve, true
			case "closed":
				return IconValveClosed, true
			}
			return IconValveOpen, true
		},
		ToggleFunc: transitToggle("valve", "open_valve", "close_valve", "stop_valve"),
		Value:      &ValueAction{Service: "set_valve_position", Field: "position"},
	}
}

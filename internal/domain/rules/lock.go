package rules

import (
	"ha-entity-engine/internal/domain/model"
)

func lockRule() *DomainRule {
	return &DomainRule{
		Domain:         "lock",
		InactiveStates: states("locked"),
		DefaultIcon:    IconLock,
		IconFunc: func(state, _ string, _ model.Attributes) (Icon, bool) {
			switch state {
			case "unlocked":
				return IconLockOpen, true
			case "jammed":
				return IconLockAlert, true
			case "locking", "unlocking":
				return IconLockClock, true
			case "open", "opening":
				return IconLockOpenVariant, true
			}
			return IconLock, true
		},
		ColorFunc: func(state, _ string, _ model.Attributes) (ColorToken, bool) {
			switch state {
			case "unlocked":
				return "lock-unlocked", true
			case "jammed":
				return "lock-jammed", true
			case "open", "opening":
				return "lock-open", true
			case "locking", "unlocking":
				return "lock-pending", true
			}
			return ColorActive, true
		},
		// "on" for a lock means unlocked.
		ToggleFunc: func(currentlyOn bool, _ string) (string, string) {
			if currentlyOn {
				return "lock", "lock"
			}
			return "lock", "unlock"
		},
		SelectFunc: func(entity *model.EntityState, _ string, option string) (model.ServiceCall, bool) {
			switch option {
			case "lock", "unlock", "open":
				return model.NewServiceCall("lock", option, entity.EntityID), true
			}
			return model.ServiceCall{}, false
		},
	}
}

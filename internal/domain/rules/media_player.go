package rules

import (
	"ha-entity-engine/internal/domain/model"
)

func mediaPlayerIcon(state, deviceClass string, _ model.Attributes) (Icon, bool) {
	switch deviceClass {
	case "speaker":
		switch state {
		case "playing":
			return IconSpeakerPlay, true
		case "paused":
			return IconSpeakerPause, true
		case model.StateOff:
			return IconSpeakerOff, true
		}
		return IconSpeaker, true
	case "tv":
		switch state {
		case "playing":
			return IconTelevisionPlay, true
		case "paused":
			return IconTelevisionPause, true
		case model.StateOff:
			return IconTelevisionOff, true
		}
		return IconTelevision, true
	case "receiver":
		return onOff(state == model.StateOff, IconAudioVideoOff, IconAudioVideo), true
	}
	switch state {
	case "playing", "paused":
		return IconCastConnected, true
	case model.StateOff:
		return IconCastOff, true
	}
	return IconCast, true
}

func mediaPlayerRule() *DomainRule {
	return &DomainRule{
		Domain:         "media_player",
		InactiveStates: states("standby"),
		DefaultIcon:    IconCast,
		IconFunc:       mediaPlayerIcon,
		SelectFunc: attributeSelect("media_player", map[string]selectTarget{
			"source":     {Service: "select_source", Field: "source"},
			"sound_mode": {Service: "select_sound_mode", Field: "sound_mode"},
		}),
		Value: &ValueAction{Service: "volume_set", Field: "volume_level", Scale: 0.01},
	}
}

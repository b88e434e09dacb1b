// Package translator maps entities onto a Hue light view (on/off plus a 0-254
// level) and turns Hue state changes back into service calls.
package translator

import (
	"math"

	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
)

const maxBri = 254

// Translator defines the conversion for one family of domains.
type Translator interface {
	// ToHue fills Bri from the entity. On and Reachable are set by the caller.
	ToHue(e *model.EntityState) *huego.State
	// Level converts a Hue brightness into the input of the domain's value command.
	Level(e *model.EntityState, bri uint8) float64
	GetMetadata() model.HueMetadata
}

func clampBri(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > maxBri {
		return maxBri
	}
	return uint8(v + 0.5)
}

package translator

import (
	"math"

	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
)

// levelAttributes are probed in order by CustomStrategy.
var levelAttributes = []string{"brightness", "current_position", "percentage", "temperature", "value"}

// CustomStrategy is used for domains without a dedicated strategy. It reads the
// first numeric level it can find and passes it through unchanged.
type CustomStrategy struct{}

// RawLevel returns the first numeric level of e, falling back to a numeric state.
func (s *CustomStrategy) RawLevel(e *model.EntityState) (float64, bool) {
	for _, attr := range levelAttributes {
		if v, ok := e.Attributes.Float(attr); ok {
			return v, true
		}
	}
	return model.ToFloat(e.State)
}

func (s *CustomStrategy) ToHue(e *model.EntityState) *huego.State {
	state := &huego.State{}
	if v, ok := s.RawLevel(e); ok {
		state.Bri = clampBri(v)
	}
	return state
}

func (s *CustomStrategy) Level(_ *model.EntityState, bri uint8) float64 {
	return math.Round(float64(bri) * 100 / maxBri)
}

func (s *CustomStrategy) GetMetadata() model.HueMetadata {
	return model.HueMetadata{
		Type:             "Extended color light",
		ModelID:          "LCT001",
		ManufacturerName: "Philips",
	}
}

package translator

import (
	"math"

	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
)

// CoverStrategy maps current_position of covers and valves.
type CoverStrategy struct{}

func (s *CoverStrategy) ToHue(e *model.EntityState) *huego.State {
	state := &huego.State{}
	if pos, ok := e.Attributes.Float("current_position"); ok {
		state.Bri = clampBri(pos * 2.54)
	}
	return state
}

func (s *CoverStrategy) Level(_ *model.EntityState, bri uint8) float64 {
	return math.Round(float64(bri) / 2.54)
}

func (s *CoverStrategy) GetMetadata() model.HueMetadata {
	return model.HueMetadata{
		Type:             "Window covering device",
		ModelID:          "LCT001",
		ManufacturerName: "Philips",
	}
}

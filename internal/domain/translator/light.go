package translator

import (
	"math"

	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
)

// LightStrategy reads the 0-255 brightness attribute and writes brightness_pct.
type LightStrategy struct{}

func (s *LightStrategy) ToHue(e *model.EntityState) *huego.State {
	state := &huego.State{}
	if bri, ok := e.Attributes.Float("brightness"); ok {
		state.Bri = clampBri(bri)
	}
	return state
}

func (s *LightStrategy) Level(_ *model.EntityState, bri uint8) float64 {
	return math.Round(float64(bri) * 100 / maxBri)
}

func (s *LightStrategy) GetMetadata() model.HueMetadata {
	return model.HueMetadata{
		Type:             "Extended color light",
		ModelID:          "LCT001",
		ManufacturerName: "Philips",
	}
}

// PercentStrategy covers domains whose level is a 0-100 percentage, optionally
// stored scaled, such as media_player volume_level in 0-1.
type PercentStrategy struct {
	Attribute string
	Scale     float64
}

func (s *PercentStrategy) ToHue(e *model.EntityState) *huego.State {
	state := &huego.State{}
	if v, ok := e.Attributes.Float(s.Attribute); ok {
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		state.Bri = clampBri(v / scale * maxBri / 100)
	}
	return state
}

func (s *PercentStrategy) Level(_ *model.EntityState, bri uint8) float64 {
	return math.Round(float64(bri) * 100 / maxBri)
}

func (s *PercentStrategy) GetMetadata() model.HueMetadata {
	return model.HueMetadata{
		Type:             "Dimmable light",
		ModelID:          "LWB004",
		ManufacturerName: "Philips",
	}
}

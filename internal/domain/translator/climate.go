package translator

import (
	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
)

// Target temperature range used when the entity reports none.
const (
	defaultMinTemp = 7.0
	defaultMaxTemp = 28.0
)

// ClimateStrategy spreads the target temperature range over the Hue level.
type ClimateStrategy struct {
	MinTemp float64
	MaxTemp float64
}

func (s *ClimateStrategy) bounds(attrs model.Attributes) (float64, float64) {
	lo, hi := s.MinTemp, s.MaxTemp
	if lo == 0 && hi == 0 {
		lo, hi = defaultMinTemp, defaultMaxTemp
	}
	if v, ok := attrs.Float("min_temp"); ok {
		lo = v
	}
	if v, ok := attrs.Float("max_temp"); ok {
		hi = v
	}
	return lo, hi
}

func (s *ClimateStrategy) ToHue(e *model.EntityState) *huego.State {
	state := &huego.State{}
	temp, ok := e.Attributes.Float("temperature")
	if !ok {
		return state
	}
	lo, hi := s.bounds(e.Attributes)
	if hi <= lo {
		return state
	}
	if temp < lo {
		temp = lo
	}
	if temp > hi {
		temp = hi
	}
	state.Bri = uint8((temp - lo) * maxBri / (hi - lo))
	return state
}

func (s *ClimateStrategy) Level(e *model.EntityState, bri uint8) float64 {
	lo, hi := s.bounds(e.Attributes)
	return float64(bri)*(hi-lo)/maxBri + lo
}

func (s *ClimateStrategy) GetMetadata() model.HueMetadata {
	return model.HueMetadata{
		Type:             "Dimmable light",
		ModelID:          "LWB004",
		ManufacturerName: "Philips",
	}
}

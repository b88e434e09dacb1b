package translator

import (
	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/rules"
)

type Factory struct {
	registry   *rules.Registry
	strategies map[string]Translator
	fallback   *CustomStrategy
}

func NewFactory(registry *rules.Registry) *Factory {
	if registry == nil {
		registry = rules.Default
	}
	climate := &ClimateStrategy{MinTemp: defaultMinTemp, MaxTemp: defaultMaxTemp}
	cover := &CoverStrategy{}
	return &Factory{
		registry: registry,
		strategies: map[string]Translator{
			"light":        &LightStrategy{},
			"cover":        cover,
			"valve":        cover,
			"climate":      climate,
			"water_heater": climate,
			"fan":          &PercentStrategy{Attribute: "percentage"},
			"humidifier":   &PercentStrategy{Attribute: "humidity"},
			"media_player": &PercentStrategy{Attribute: "volume_level", Scale: 0.01},
		},
		fallback: &CustomStrategy{},
	}
}

func (f *Factory) GetTranslator(domain string) Translator {
	if t, ok := f.strategies[domain]; ok {
		return t
	}
	return f.fallback
}

// ToHue builds the Hue view of e. A LevelFormula in o replaces the strategy's level.
func (f *Factory) ToHue(e *model.EntityState, o *model.ActionOverride) (*huego.State, error) {
	domain, err := e.Domain()
	if err != nil {
		return nil, err
	}
	state := f.GetTranslator(domain).ToHue(e)
	if o != nil && o.LevelFormula != "" {
		if raw, ok := f.fallback.RawLevel(e); ok {
			v, err := Evaluate(o.LevelFormula, raw)
			if err != nil {
				return nil, err
			}
			state.Bri = clampBri(v)
		}
	}
	state.On = f.registry.IsActive(domain, e.State, e.Attributes)
	state.Reachable = !model.IsUnavailableState(e.State)
	return state, nil
}

// Command resolves the service call that moves e towards hue. A non-zero level
// on a domain with a value service becomes a value command, anything else a toggle.
func (f *Factory) Command(e *model.EntityState, hue *huego.State, o *model.ActionOverride) (model.ServiceCall, error) {
	domain, err := e.Domain()
	if err != nil {
		return model.ServiceCall{}, err
	}
	if hue.On && hue.Bri > 0 {
		level := f.GetTranslator(domain).Level(e, hue.Bri)
		if o != nil && o.ValueFormula != "" {
			if level, err = Evaluate(o.ValueFormula, level); err != nil {
				return model.ServiceCall{}, err
			}
		}
		if call, ok := f.registry.ValueCommand(e, level); ok {
			return ApplyOverride(call, true, o), nil
		}
	}
	serviceDomain, service := f.registry.ToggleCommand(domain, !hue.On, e.State)
	return ApplyOverride(model.NewServiceCall(serviceDomain, service, e.EntityID), hue.On, o), nil
}

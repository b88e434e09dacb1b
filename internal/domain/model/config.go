package model

// ActionOverride replaces the default service mapping for one entity.
type ActionOverride struct {
	// ON actions
	OnService string                 `json:"on_service,omitempty" mapstructure:"on_service"`
	OnPayload map[string]interface{} `json:"on_payload,omitempty" mapstructure:"on_payload"` // Static params

	// OFF actions
	OffService string                 `json:"off_service,omitempty" mapstructure:"off_service"`
	OffPayload map[string]interface{} `json:"off_payload,omitempty" mapstructure:"off_payload"` // Static params

	// Conversions, variable x (e.g. "x * 2.55")
	ValueFormula string `json:"value_formula,omitempty" mapstructure:"value_formula"` // incoming value -> service value
	LevelFormula string `json:"level_formula,omitempty" mapstructure:"level_formula"` // entity level -> Hue bri

	// Options
	OmitEntityID bool `json:"omit_entity_id,omitempty" mapstructure:"omit_entity_id"` // For scripts, notify.*
}

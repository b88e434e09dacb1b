package model

// Presentation bundles everything derived from one EntityState.
type Presentation struct {
	EntityID string `json:"entity_id"`
	Domain   string `json:"domain"`
	State    string `json:"state"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Display  string `json:"display"`
}

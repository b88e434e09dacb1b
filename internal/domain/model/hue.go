package model

// HueMetadata describes how an entity presents itself to Hue clients.
type HueMetadata struct {
	Type             string `json:"type"`
	ModelID          string `json:"modelid"`
	ManufacturerName string `json:"manufacturername"`
}

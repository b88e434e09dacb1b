package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel states that carry no domain meaning.
const (
	StateUnknown     = "unknown"
	StateUnavailable = "unavailable"
	StateOn          = "on"
	StateOff         = "off"
)

var ErrInvalidEntityID = errors.New("entity: invalid entity id")

// EntityState is a single snapshot as delivered by Home Assistant.
type EntityState struct {
	EntityID    string     `json:"entity_id"`
	State       string     `json:"state"`
	Attributes  Attributes `json:"attributes"`
	LastChanged time.Time  `json:"last_changed"`
	LastUpdated time.Time  `json:"last_updated"`
}

// DomainOf returns the part of entityID before the first dot.
func DomainOf(entityID string) (string, error) {
	domain, _, found := strings.Cut(entityID, ".")
	if !found || domain == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityID, entityID)
	}
	return domain, nil
}

// Domain is DomainOf applied to the entity's own id.
func (s *EntityState) Domain() (string, error) {
	return DomainOf(s.EntityID)
}

func (s *EntityState) DeviceClass() string {
	return s.Attributes.String("device_class")
}

func (s *EntityState) FriendlyName() string {
	if name := s.Attributes.String("friendly_name"); name != "" {
		return name
	}
	return s.EntityID
}

// IsUnavailableState reports whether state is one of the non-representable sentinels.
func IsUnavailableState(state string) bool {
	return state == StateUnknown || state == StateUnavailable
}

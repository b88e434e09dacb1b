// Package group reduces a selection of same-domain entities to one state and
// one bulk command. Members are assumed to share the domain of the first entity;
// this is not checked.
package group

import (
	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/rules"
)

// coverPriority is checked in order; the first state held by any member wins.
var coverPriority = []string{"opening", "closing", "open"}

// AggregateState returns the representative state of entities.
func AggregateState(entities []*model.EntityState) string {
	if len(entities) == 0 {
		return model.StateUnavailable
	}
	domain, _ := entities[0].Domain()

	if domain == "cover" {
		for _, want := range coverPriority {
			if anyState(entities, want) {
				return want
			}
		}
		return "closed"
	}
	if anyState(entities, model.StateOn) {
		return model.StateOn
	}
	return model.StateOff
}

// ToggleCommand resolves the single call that drives every member towards desiredOn.
// Mid-transit covers are stopped regardless of desiredOn.
func ToggleCommand(registry *rules.Registry, entities []*model.EntityState, desiredOn bool) (model.ServiceCall, bool) {
	if len(entities) == 0 {
		return model.ServiceCall{}, false
	}
	domain, err := entities[0].Domain()
	if err != nil {
		return model.ServiceCall{}, false
	}
	if registry == nil {
		registry = rules.Default
	}

	ids := make([]string, len(entities))
	for i, e := range entities {
		ids[i] = e.EntityID
	}

	serviceDomain, service := registry.ToggleCommand(domain, !desiredOn, AggregateState(entities))
	return model.NewServiceCall(serviceDomain, service, ids), true
}

func anyState(entities []*model.EntityState, state string) bool {
	for _, e := range entities {
		if e.State == state {
			return true
		}
	}
	return false
}

package ports

import (
	"context"

	"ha-entity-engine/internal/domain/model"
)

// StateSource delivers entity snapshots. Callers only read what it returns.
type StateSource interface {
	GetStates(ctx context.Context) ([]*model.EntityState, error)
	GetState(ctx context.Context, entityID string) (*model.EntityState, error)
}

// CommandTransport executes a service call. Success of the call says nothing
// about the resulting entity state.
type CommandTransport interface {
	CallService(ctx context.Context, call model.ServiceCall) error
}

type HomeAssistantPort interface {
	StateSource
	CommandTransport
	Configure(url, token string)
	IsConfigured() bool
}

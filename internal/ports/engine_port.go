package ports

import (
	"context"

	"github.com/amimof/huego"

	"ha-entity-engine/internal/domain/model"
)

// EnginePort is what the inbound adapters drive.
type EnginePort interface {
	Describe(ctx context.Context, entityID string) (*model.Presentation, error)
	DescribeAll(ctx context.Context) ([]*model.Presentation, error)
	Options(ctx context.Context, entityID, attribute string) ([]model.Option, error)
	GroupState(ctx context.Context, entityIDs []string) (string, error)

	Toggle(ctx context.Context, entityID string) error
	ToggleGroup(ctx context.Context, entityIDs []string, on bool) error
	SelectOption(ctx context.Context, entityID, attribute, option string) error
	SetValue(ctx context.Context, entityID string, value float64) error

	HueState(ctx context.Context, entityID string) (*huego.State, error)
	SetHueState(ctx context.Context, entityID string, state *huego.State) error
}

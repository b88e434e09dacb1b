package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amimof/huego"
	"go.uber.org/zap"

	"ha-entity-engine/internal/domain/display"
	"ha-entity-engine/internal/domain/group"
	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/rules"
	"ha-entity-engine/internal/domain/selector"
	"ha-entity-engine/internal/domain/translator"
	"ha-entity-engine/internal/ports"
)

var (
	ErrEntityNotFound = errors.New("engine: entity not found")
	ErrNoCommand      = errors.New("engine: no command for intent")
)

// Icon used when no rule knows the entity's domain.
const defaultIcon = rules.IconBookmark

type Option func(*Engine)

func WithRegistry(r *rules.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

func WithOverrides(overrides map[string]*model.ActionOverride) Option {
	return func(e *Engine) {
		if overrides != nil {
			e.overrides = overrides
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithToggleOptions is passed to every optimistic toggle the engine creates.
func WithToggleOptions(opts ...selector.ToggleOption) Option {
	return func(e *Engine) { e.toggleOpts = append(e.toggleOpts, opts...) }
}

func WithRevertAfter(d time.Duration) Option {
	return WithToggleOptions(selector.WithRevertAfter(d))
}

type Engine struct {
	states    ports.StateSource
	transport ports.CommandTransport
	formatter *display.Formatter
	registry  *rules.Registry
	factory   *translator.Factory
	logger    *zap.Logger

	toggleOpts []selector.ToggleOption

	mu        sync.RWMutex
	overrides map[string]*model.ActionOverride
	toggles   map[string]*selector.Toggle
}

func NewEngine(states ports.StateSource, transport ports.CommandTransport, formatter *display.Formatter, opts ...Option) *Engine {
	e := &Engine{
		states:    states,
		transport: transport,
		formatter: formatter,
		registry:  rules.Default,
		logger:    zap.NewNop(),
		overrides: map[string]*model.ActionOverride{},
		toggles:   map[string]*selector.Toggle{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.formatter == nil {
		e.formatter = display.NewFormatter(nil, display.Locale{}, display.Options{})
	}
	e.factory = translator.NewFactory(e.registry)
	return e
}

func (e *Engine) entity(ctx context.Context, entityID string) (*model.EntityState, error) {
	if _, err := model.DomainOf(entityID); err != nil {
		return nil, err
	}
	state, err := e.states.GetState(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}
	return state, nil
}

func (e *Engine) override(entityID string) *model.ActionOverride {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.overrides[entityID]
}

// setOverride installs or, with nil, removes the action override of an entity.
// The entity's toggle is rebuilt on next use so it picks up the change.
func (e *Engine) setOverride(entityID string, o *model.ActionOverride) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tg, ok := e.toggles[entityID]; ok {
		tg.Close()
		delete(e.toggles, entityID)
	}
	if o == nil {
		delete(e.overrides, entityID)
		return
	}
	e.overrides[entityID] = o
}

// Present derives every presentation fact of one snapshot.
func (e *Engine) Present(state *model.EntityState) (*model.Presentation, error) {
	domain, err := state.Domain()
	if err != nil {
		return nil, err
	}
	deviceClass := state.DeviceClass()
	text, err := e.formatter.FormatEntity(state)
	if err != nil {
		return nil, err
	}

	p := &model.Presentation{
		EntityID: state.EntityID,
		Domain:   domain,
		State:    state.State,
		Name:     state.FriendlyName(),
		Active:   e.registry.IsActive(domain, state.State, state.Attributes),
		Icon:     string(defaultIcon),
		Display:  text,
	}
	if icon := state.Attributes.String("icon"); icon != "" {
		p.Icon = icon
	} else if icon, ok := e.registry.Icon(domain, state.State, deviceClass, state.Attributes); ok {
		p.Icon = string(icon)
	}
	if color, ok := e.registry.Color(domain, state.State, deviceClass, state.Attributes); ok {
		p.Color = string(color)
	}
	if tg := e.toggle(state.EntityID); tg != nil {
		confirm(tg, state)
		p.Active = tg.IsOn()
	}
	return p, nil
}

func (e *Engine) Describe(ctx context.Context, entityID string) (*model.Presentation, error) {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return e.Present(state)
}

// DescribeAll skips entities with malformed ids.
func (e *Engine) DescribeAll(ctx context.Context) ([]*model.Presentation, error) {
	states, err := e.states.GetStates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Presentation, 0, len(states))
	for _, state := range states {
		p, err := e.Present(state)
		if err != nil {
			e.logger.Warn("skipping entity", zap.String("entity_id", state.EntityID), zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (e *Engine) Options(ctx context.Context, entityID, attribute string) ([]model.Option, error) {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return selector.OptionsFor(state, attribute, e.formatter)
}

func (e *Engine) toggle(entityID string) *selector.Toggle {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.toggles[entityID]
}

// Toggle flips one entity optimistically. The displayed state follows the flip
// until a new snapshot arrives or the revert timer fires.
func (e *Engine) Toggle(ctx context.Context, entityID string) error {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	tg, ok := e.toggles[entityID]
	if !ok {
		opts := append([]selector.ToggleOption{
			selector.WithRegistry(e.registry),
			selector.WithLogger(e.logger),
			selector.WithOverride(e.overrides[entityID]),
		}, e.toggleOpts...)
		tg = selector.NewToggle(state, e.transport, opts...)
		e.toggles[entityID] = tg
	}
	e.mu.Unlock()

	confirm(tg, state)
	return tg.Set(ctx, !tg.IsOn())
}

// confirm hands state to tg unless it is a re-read of the snapshot tg already
// holds. A re-read carries the same state and last_updated.
func confirm(tg *selector.Toggle, state *model.EntityState) {
	held := tg.Entity()
	if held == state {
		return
	}
	if held.State == state.State && held.LastUpdated.Equal(state.LastUpdated) {
		return
	}
	tg.Update(state)
}

// ToggleGroup drives every member towards on with a single service call.
func (e *Engine) ToggleGroup(ctx context.Context, entityIDs []string, on bool) error {
	members := make([]*model.EntityState, 0, len(entityIDs))
	for _, id := range entityIDs {
		state, err := e.entity(ctx, id)
		if err != nil {
			return err
		}
		members = append(members, state)
	}
	call, ok := group.ToggleCommand(e.registry, members, on)
	if !ok {
		return fmt.Errorf("%w: empty group", ErrNoCommand)
	}
	return e.call(ctx, call)
}

// GroupState is the aggregate state of the given entities.
func (e *Engine) GroupState(ctx context.Context, entityIDs []string) (string, error) {
	members := make([]*model.EntityState, 0, len(entityIDs))
	for _, id := range entityIDs {
		state, err := e.entity(ctx, id)
		if err != nil {
			return "", err
		}
		members = append(members, state)
	}
	return group.AggregateState(members), nil
}

// Selector builds an option control for attribute. Each commit is sent as a
// select intent; failures are only logged.
func (e *Engine) Selector(ctx context.Context, entityID, attribute string) (*selector.Control, error) {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if attribute == "" {
		domain, _ := state.Domain()
		attribute, _ = selector.PrimaryAttribute(domain)
	}
	options, err := selector.OptionsFor(state, attribute, e.formatter)
	if err != nil {
		return nil, err
	}
	commitCtx := context.WithoutCancel(ctx)
	return selector.NewControl(options, selector.CurrentValue(state, attribute), func(ev selector.ValueChanged) {
		if err := e.SelectOption(commitCtx, entityID, attribute, ev.Value); err != nil {
			e.logger.Warn("select failed",
				zap.String("entity_id", entityID), zap.String("attribute", attribute), zap.Error(err))
		}
	}), nil
}

func (e *Engine) SelectOption(ctx context.Context, entityID, attribute, option string) error {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return err
	}
	if attribute == "" {
		domain, _ := state.Domain()
		attribute, _ = selector.PrimaryAttribute(domain)
	}
	call, ok := e.registry.SelectCommand(state, attribute, option)
	if !ok {
		return fmt.Errorf("%w: %s %s=%s", ErrNoCommand, entityID, attribute, option)
	}
	return e.call(ctx, call)
}

// SetValue sends a numeric intent, converted by the entity's value formula if it has one.
func (e *Engine) SetValue(ctx context.Context, entityID string, value float64) error {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return err
	}
	if o := e.override(entityID); o != nil && o.ValueFormula != "" {
		if value, err = translator.Evaluate(o.ValueFormula, value); err != nil {
			return err
		}
	}
	call, ok := e.registry.ValueCommand(state, value)
	if !ok {
		return fmt.Errorf("%w: %s has no value service", ErrNoCommand, entityID)
	}
	return e.call(ctx, call)
}

// HueState returns the Hue light view of an entity.
func (e *Engine) HueState(ctx context.Context, entityID string) (*huego.State, error) {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return e.factory.ToHue(state, e.override(entityID))
}

// SetHueState applies a Hue style on/bri change to an entity.
func (e *Engine) SetHueState(ctx context.Context, entityID string, hue *huego.State) error {
	state, err := e.entity(ctx, entityID)
	if err != nil {
		return err
	}
	call, err := e.factory.Command(state, hue, e.override(entityID))
	if err != nil {
		return err
	}
	return e.call(ctx, call)
}

func (e *Engine) call(ctx context.Context, call model.ServiceCall) error {
	e.logger.Debug("calling service", zap.String("service", call.String()), zap.Any("data", call.Data))
	if err := e.transport.CallService(ctx, call); err != nil {
		return fmt.Errorf("call %s: %w", call, err)
	}
	return nil
}

// Close cancels pending toggle reverts.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, tg := range e.toggles {
		tg.Close()
		delete(e.toggles, id)
	}
}

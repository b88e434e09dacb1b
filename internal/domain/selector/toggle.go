package selector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/rules"
	"ha-entity-engine/internal/domain/translator"
	"ha-entity-engine/internal/ports"
)

// DefaultRevertAfter is how long an optimistic flip waits for a confirming update.
const DefaultRevertAfter = 2 * time.Second

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clock struct{}

func (clock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type ToggleOption func(*Toggle)

func WithScheduler(s Scheduler) ToggleOption {
	return func(t *Toggle) { t.scheduler = s }
}

func WithRevertAfter(d time.Duration) ToggleOption {
	return func(t *Toggle) { t.revertAfter = d }
}

func WithRegistry(r *rules.Registry) ToggleOption {
	return func(t *Toggle) { t.registry = r }
}

func WithLogger(l *zap.Logger) ToggleOption {
	return func(t *Toggle) { t.logger = l }
}

// WithOverride rewrites the service calls sent by the toggle.
func WithOverride(o *model.ActionOverride) ToggleOption {
	return func(t *Toggle) { t.override = o }
}

// WithOnChange is called whenever the displayed on/off value changes.
func WithOnChange(fn func(on bool)) ToggleOption {
	return func(t *Toggle) { t.onChange = fn }
}

// Toggle shows an entity as on or off, flipping immediately on user action and
// falling back to the confirmed state when no update arrives in time.
type Toggle struct {
	mu sync.Mutex

	id          uuid.UUID
	transport   ports.CommandTransport
	registry    *rules.Registry
	scheduler   Scheduler
	revertAfter time.Duration
	logger      *zap.Logger
	onChange    func(on bool)
	override    *model.ActionOverride

	entity  *model.EntityState
	isOn    bool
	gen     uint64
	pending Timer
	closed  bool
}

func NewToggle(entity *model.EntityState, transport ports.CommandTransport, opts ...ToggleOption) *Toggle {
	t := &Toggle{
		id:          uuid.New(),
		transport:   transport,
		registry:    rules.Default,
		scheduler:   clock{},
		revertAfter: DefaultRevertAfter,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(zap.String("toggle", t.id.String()), zap.String("entity_id", entity.EntityID))
	t.entity = entity
	t.isOn = t.derive(entity)
	return t
}

func (t *Toggle) ID() uuid.UUID { return t.id }

func (t *Toggle) IsOn() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isOn
}

// Entity returns the last confirmed snapshot.
func (t *Toggle) Entity() *model.EntityState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entity
}

func (t *Toggle) derive(e *model.EntityState) bool {
	domain, err := e.Domain()
	if err != nil {
		return false
	}
	return t.registry.IsActive(domain, e.State, e.Attributes)
}

// Update installs a new confirmed snapshot. Any pending revert becomes a no-op
// because it no longer holds the same snapshot.
func (t *Toggle) Update(e *model.EntityState) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.entity = e
	changed := t.setLocked(t.derive(e))
	t.mu.Unlock()
	t.notify(changed)
}

// Set flips the displayed value to on, sends the matching service call and arms
// the revert. Transport errors are returned; the revert still runs.
func (t *Toggle) Set(ctx context.Context, on bool) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return fmt.Errorf("toggle %s: closed", t.id)
	}
	entity := t.entity
	domain, err := entity.Domain()
	if err != nil {
		t.mu.Unlock()
		return err
	}
	changed := t.setLocked(on)
	t.gen++
	gen := t.gen
	if t.pending != nil {
		t.pending.Stop()
	}
	t.pending = t.scheduler.AfterFunc(t.revertAfter, func() { t.revert(gen, entity) })
	t.mu.Unlock()
	t.notify(changed)

	serviceDomain, service := t.registry.ToggleCommand(domain, !on, entity.State)
	call := translator.ApplyOverride(model.NewServiceCall(serviceDomain, service, entity.EntityID), on, t.override)
	t.logger.Debug("optimistic toggle", zap.Bool("on", on), zap.String("service", call.String()))
	if err := t.transport.CallService(ctx, call); err != nil {
		return fmt.Errorf("toggle %s: %w", entity.EntityID, err)
	}
	return nil
}

// revert compares snapshot identity, not content: an update with equal values
// still counts as confirmation.
func (t *Toggle) revert(gen uint64, captured *model.EntityState) {
	t.mu.Lock()
	if t.closed || t.gen != gen {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	if t.entity != captured {
		t.mu.Unlock()
		return
	}
	changed := t.setLocked(t.derive(captured))
	t.mu.Unlock()
	if changed {
		t.logger.Debug("no confirming update, reverted")
	}
	t.notify(changed)
}

// Close cancels a pending revert. The toggle ignores all further calls.
func (t *Toggle) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Toggle) setLocked(on bool) bool {
	changed := t.isOn != on
	t.isOn = on
	return changed
}

func (t *Toggle) notify(changed bool) {
	if changed && t.onChange != nil {
		t.onChange(t.IsOn())
	}
}

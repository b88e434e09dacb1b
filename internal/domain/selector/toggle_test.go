package selector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ha-entity-engine/internal/domain/model"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) CallService(ctx context.Context, call model.ServiceCall) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type manualScheduler struct {
	timers []*fakeTimer
	delays []time.Duration
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{fn: f}
	s.timers = append(s.timers, t)
	s.delays = append(s.delays, d)
	return t
}

func (s *manualScheduler) fireLast() {
	t := s.timers[len(s.timers)-1]
	if !t.stopped {
		t.fn()
	}
}

func newTestToggle(t *testing.T, e *model.EntityState) (*Toggle, *MockTransport, *manualScheduler) {
	transport := new(MockTransport)
	sched := &manualScheduler{}
	tg := NewToggle(e, transport, WithScheduler(sched), WithLogger(zaptest.NewLogger(t)))
	return tg, transport, sched
}

func TestToggle_RevertsWithoutUpdate(t *testing.T) {
	e := &model.EntityState{EntityID: "switch.pump", State: "off"}
	tg, transport, sched := newTestToggle(t, e)
	transport.On("CallService", mock.Anything, model.NewServiceCall("switch", "turn_on", "switch.pump")).Return(nil)

	require.NoError(t, tg.Set(context.Background(), true))
	assert.True(t, tg.IsOn())
	assert.Equal(t, []time.Duration{DefaultRevertAfter}, sched.delays)

	sched.fireLast()
	assert.False(t, tg.IsOn())
	transport.AssertExpectations(t)
}

func TestToggle_NewSnapshotSuppressesRevert(t *testing.T) {
	e := &model.EntityState{EntityID: "light.desk", State: "off"}
	tg, transport, sched := newTestToggle(t, e)
	transport.On("CallService", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, tg.Set(context.Background(), true))

	// same values, different snapshot: still counts as confirmation
	tg.Update(&model.EntityState{EntityID: "light.desk", State: "on"})
	sched.fireLast()
	assert.True(t, tg.IsOn())
}

func TestToggle_IdentityNotValue(t *testing.T) {
	e := &model.EntityState{EntityID: "light.desk", State: "off"}
	tg, transport, sched := newTestToggle(t, e)
	transport.On("CallService", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, tg.Set(context.Background(), true))
	tg.Update(&model.EntityState{EntityID: "light.desk", State: "off"})
	assert.False(t, tg.IsOn())

	sched.fireLast()
	assert.False(t, tg.IsOn())
}

func TestToggle_TransportErrorStillReverts(t *testing.T) {
	e := &model.EntityState{EntityID: "lock.front", State: "locked"}
	tg, transport, sched := newTestToggle(t, e)
	boom := errors.New("boom")
	transport.On("CallService", mock.Anything, model.NewServiceCall("lock", "unlock", "lock.front")).Return(boom)

	err := tg.Set(context.Background(), true)
	assert.ErrorIs(t, err, boom)
	assert.True(t, tg.IsOn())

	sched.fireLast()
	assert.False(t, tg.IsOn())
}

func TestToggle_CloseCancelsRevert(t *testing.T) {
	e := &model.EntityState{EntityID: "switch.pump", State: "off"}
	tg, transport, sched := newTestToggle(t, e)
	transport.On("CallService", mock.Anything, mock.Anything).Return(nil)

	var changes []bool
	tg.onChange = func(on bool) { changes = append(changes, on) }

	require.NoError(t, tg.Set(context.Background(), true))
	tg.Close()
	assert.True(t, sched.timers[0].stopped)

	// a timer that fires anyway must not touch the closed toggle
	sched.timers[0].fn()
	assert.True(t, tg.IsOn())
	assert.Equal(t, []bool{true}, changes)

	assert.Error(t, tg.Set(context.Background(), false))
	transport.AssertNumberOfCalls(t, "CallService", 1)
}

func TestToggle_SecondFlipReplacesTimer(t *testing.T) {
	e := &model.EntityState{EntityID: "switch.pump", State: "off"}
	tg, transport, sched := newTestToggle(t, e)
	transport.On("CallService", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, tg.Set(context.Background(), true))
	require.NoError(t, tg.Set(context.Background(), false))
	require.Len(t, sched.timers, 2)
	assert.True(t, sched.timers[0].stopped)

	// the stale timer is ignored even if it fires
	tg.Update(e)
	tg.isOn = true
	sched.timers[0].fn()
	assert.True(t, tg.IsOn())
}

func TestToggle_Defaults(t *testing.T) {
	tg := NewToggle(&model.EntityState{EntityID: "cover.garage", State: "open"}, new(MockTransport),
		WithRevertAfter(time.Second))
	defer tg.Close()

	assert.True(t, tg.IsOn())
	assert.NotEqual(t, "", tg.ID().String())
	assert.Equal(t, time.Second, tg.revertAfter)
}

func TestToggle_Override(t *testing.T) {
	e := &model.EntityState{EntityID: "script.goodnight", State: "off"}
	transport := new(MockTransport)
	tg := NewToggle(e, transport,
		WithScheduler(&manualScheduler{}),
		WithOverride(&model.ActionOverride{OnService: "script.turn_on", OmitEntityID: true}))

	want := model.ServiceCall{Domain: "script", Service: "turn_on", Data: map[string]interface{}{}}
	transport.On("CallService", mock.Anything, want).Return(nil)

	require.NoError(t, tg.Set(context.Background(), true))
	transport.AssertExpectations(t)
}

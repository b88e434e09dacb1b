package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amimof/huego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/domain/selector"
	"ha-entity-engine/internal/domain/service"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Describe(ctx context.Context, entityID string) (*model.Presentation, error) {
	args := m.Called(ctx, entityID)
	p, _ := args.Get(0).(*model.Presentation)
	return p, args.Error(1)
}

func (m *MockEngine) DescribeAll(ctx context.Context) ([]*model.Presentation, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*model.Presentation)
	return list, args.Error(1)
}

func (m *MockEngine) Options(ctx context.Context, entityID, attribute string) ([]model.Option, error) {
	args := m.Called(ctx, entityID, attribute)
	opts, _ := args.Get(0).([]model.Option)
	return opts, args.Error(1)
}

func (m *MockEngine) GroupState(ctx context.Context, entityIDs []string) (string, error) {
	args := m.Called(ctx, entityIDs)
	return args.String(0), args.Error(1)
}

func (m *MockEngine) Toggle(ctx context.Context, entityID string) error {
	return m.Called(ctx, entityID).Error(0)
}

func (m *MockEngine) ToggleGroup(ctx context.Context, entityIDs []string, on bool) error {
	return m.Called(ctx, entityIDs, on).Error(0)
}

func (m *MockEngine) SelectOption(ctx context.Context, entityID, attribute, option string) error {
	return m.Called(ctx, entityID, attribute, option).Error(0)
}

func (m *MockEngine) SetValue(ctx context.Context, entityID string, value float64) error {
	return m.Called(ctx, entityID, value).Error(0)
}

func (m *MockEngine) HueState(ctx context.Context, entityID string) (*huego.State, error) {
	args := m.Called(ctx, entityID)
	st, _ := args.Get(0).(*huego.State)
	return st, args.Error(1)
}

func (m *MockEngine) SetHueState(ctx context.Context, entityID string, state *huego.State) error {
	return m.Called(ctx, entityID, state).Error(0)
}

func do(t *testing.T, engine *MockEngine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := New(engine, false, zaptest.NewLogger(t))
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.RegisterRoutes().ServeHTTP(rec, req)
	return rec
}

var kitchen = &model.Presentation{
	EntityID: "light.kitchen",
	Domain:   "light",
	State:    "on",
	Name:     "Kitchen",
	Active:   true,
	Icon:     "mdi:lightbulb",
	Display:  "On",
}

func TestServer_Healthcheck(t *testing.T) {
	rec := do(t, new(MockEngine), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServer_ListEntities(t *testing.T) {
	engine := new(MockEngine)
	engine.On("DescribeAll", mock.Anything).Return([]*model.Presentation{kitchen}, nil)

	rec := do(t, engine, http.MethodGet, "/api/entities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Presentation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "light.kitchen", got[0].EntityID)
	assert.True(t, got[0].Active)
}

func TestServer_GetEntity_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid id", fmt.Errorf("%w: kitchen", model.ErrInvalidEntityID), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: light.nope", service.ErrEntityNotFound), http.StatusNotFound},
		{"transport", errors.New("connection refused"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := new(MockEngine)
			engine.On("Describe", mock.Anything, "light.nope").Return(nil, tt.err)

			rec := do(t, engine, http.MethodGet, "/api/entities/light.nope", "")
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestServer_GetOptions(t *testing.T) {
	engine := new(MockEngine)
	engine.On("Options", mock.Anything, "climate.living", "preset_mode").
		Return([]model.Option{{Value: "eco", Label: "Eco"}}, nil)
	engine.On("Options", mock.Anything, "sensor.power", "").
		Return(nil, selector.ErrNoOptions)

	rec := do(t, engine, http.MethodGet, "/api/entities/climate.living/options?attribute=preset_mode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"eco"`)

	rec = do(t, engine, http.MethodGet, "/api/entities/sensor.power/options", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServer_ToggleEntity(t *testing.T) {
	engine := new(MockEngine)
	engine.On("Toggle", mock.Anything, "light.kitchen").Return(nil)
	engine.On("Describe", mock.Anything, "light.kitchen").Return(kitchen, nil)

	rec := do(t, engine, http.MethodPost, "/api/entities/light.kitchen/toggle", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"entity_id":"light.kitchen"`)
	engine.AssertExpectations(t)
}

func TestServer_ToggleEntity_NoCommand(t *testing.T) {
	engine := new(MockEngine)
	engine.On("Toggle", mock.Anything, "sensor.power").Return(fmt.Errorf("%w: sensor.power", service.ErrNoCommand))

	rec := do(t, engine, http.MethodPost, "/api/entities/sensor.power/toggle", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	engine.AssertNotCalled(t, "Describe", mock.Anything, mock.Anything)
}

func TestServer_SelectOption(t *testing.T) {
	engine := new(MockEngine)
	engine.On("SelectOption", mock.Anything, "fan.bedroom", "percentage", "medium").Return(nil)
	engine.On("Describe", mock.Anything, "fan.bedroom").Return(&model.Presentation{EntityID: "fan.bedroom"}, nil)

	rec := do(t, engine, http.MethodPost, "/api/entities/fan.bedroom/select", `{"attribute":"percentage","option":"medium"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	engine.AssertExpectations(t)

	rec = do(t, engine, http.MethodPost, "/api/entities/fan.bedroom/select", `{"attribute":"percentage"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SetValue(t *testing.T) {
	engine := new(MockEngine)
	engine.On("SetValue", mock.Anything, "climate.living", 21.5).Return(nil)
	engine.On("Describe", mock.Anything, "climate.living").Return(&model.Presentation{EntityID: "climate.living"}, nil)

	rec := do(t, engine, http.MethodPost, "/api/entities/climate.living/value", `{"value":21.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	engine.AssertExpectations(t)

	rec = do(t, engine, http.MethodPost, "/api/entities/climate.living/value", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ToggleGroup(t *testing.T) {
	engine := new(MockEngine)
	ids := []string{"light.a", "light.b"}
	engine.On("ToggleGroup", mock.Anything, ids, true).Return(nil)

	rec := do(t, engine, http.MethodPost, "/api/groups/toggle", `{"entity_ids":["light.a","light.b"],"on":true}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	engine.AssertExpectations(t)

	rec = do(t, engine, http.MethodPost, "/api/groups/toggle", `{"on":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GroupState(t *testing.T) {
	engine := new(MockEngine)
	engine.On("GroupState", mock.Anything, []string{"cover.left", "cover.right"}).Return("opening", nil)

	rec := do(t, engine, http.MethodGet, "/api/groups/state?entity_id=cover.left&entity_id=cover.right", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"opening"}`, rec.Body.String())

	rec = do(t, engine, http.MethodGet, "/api/groups/state", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetHueLight(t *testing.T) {
	engine := new(MockEngine)
	engine.On("Describe", mock.Anything, "light.kitchen").Return(kitchen, nil)
	engine.On("HueState", mock.Anything, "light.kitchen").Return(&huego.State{On: true, Bri: 127, Reachable: true}, nil)

	rec := do(t, engine, http.MethodGet, "/api/entities/light.kitchen/hue", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got huego.Light
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Kitchen", got.Name)
	assert.Equal(t, "Extended color light", got.Type)
	assert.Equal(t, "light.kitchen", got.UniqueID)
	require.NotNil(t, got.State)
	assert.Equal(t, uint8(127), got.State.Bri)
}

func TestServer_SetHueState(t *testing.T) {
	engine := new(MockEngine)
	engine.On("HueState", mock.Anything, "light.kitchen").Return(&huego.State{On: false, Bri: 0}, nil)
	engine.On("SetHueState", mock.Anything, "light.kitchen", mock.MatchedBy(func(st *huego.State) bool {
		return st.On && st.Bri == 128
	})).Return(nil)

	rec := do(t, engine, http.MethodPut, "/api/entities/light.kitchen/hue", `{"on":true,"bri":128}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `/entities/light.kitchen/hue/bri`)
	engine.AssertExpectations(t)
}

func TestServer_SetHueState_BadBody(t *testing.T) {
	rec := do(t, new(MockEngine), http.MethodPut, "/api/entities/light.kitchen/hue", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

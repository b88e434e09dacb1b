package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ha-entity-engine/internal/domain/model"
)

func entities(domain string, states ...string) []*model.EntityState {
	out := make([]*model.EntityState, len(states))
	for i, s := range states {
		out[i] = &model.EntityState{EntityID: domain + ".member_" + string(rune('a'+i)), State: s}
	}
	return out
}

func TestAggregateState(t *testing.T) {
	tests := []struct {
		name    string
		members []*model.EntityState
		want    string
	}{
		{"empty", nil, "unavailable"},
		{"cover opening wins over open", entities("cover", "open", "opening"), "opening"},
		{"cover opening wins over closing", entities("cover", "closing", "opening"), "opening"},
		{"cover closing wins over open", entities("cover", "open", "closing"), "closing"},
		{"cover open", entities("cover", "closed", "open"), "open"},
		{"cover closed", entities("cover", "closed", "closed"), "closed"},
		{"switch all off", entities("switch", "off", "off"), "off"},
		{"switch any on", entities("switch", "off", "on"), "on"},
		{"light unavailable member", entities("light", "unavailable", "off"), "off"},
		{"light all unavailable", entities("light", "unavailable"), "off"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateState(tt.members))
		})
	}
}

func TestToggleCommand_BulkCall(t *testing.T) {
	lights := entities("light", "off", "on", "off")

	call, ok := ToggleCommand(nil, lights, true)
	require.True(t, ok)
	assert.Equal(t, "light.turn_on", call.String())
	assert.Equal(t, []string{"light.member_a", "light.member_b", "light.member_c"}, call.Data["entity_id"])

	call, ok = ToggleCommand(nil, lights, false)
	require.True(t, ok)
	assert.Equal(t, "light.turn_off", call.String())
}

func TestToggleCommand_Domains(t *testing.T) {
	call, _ := ToggleCommand(nil, entities("cover", "open", "opening"), true)
	assert.Equal(t, "cover.stop_cover", call.String())

	call, _ = ToggleCommand(nil, entities("cover", "closed", "closed"), true)
	assert.Equal(t, "cover.open_cover", call.String())

	call, _ = ToggleCommand(nil, entities("lock", "locked", "locked"), true)
	assert.Equal(t, "lock.unlock", call.String())

	call, _ = ToggleCommand(nil, entities("group", "off"), true)
	assert.Equal(t, "homeassistant.turn_on", call.String())
}

func TestToggleCommand_Empty(t *testing.T) {
	_, ok := ToggleCommand(nil, nil, true)
	assert.False(t, ok)
}

package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCatalogRepository_NestedYAML(t *testing.T) {
	dir := t.TempDir()
	data := `
component:
  binary_sensor:
    state:
      moisture:
        "on": Wet
        "off": Dry
state:
  default:
    unavailable: Unavailable
ui:
  count: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(data), 0o644))

	entries, err := NewFileCatalogRepository(dir).Load(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "Wet", entries["component.binary_sensor.state.moisture.on"])
	assert.Equal(t, "Dry", entries["component.binary_sensor.state.moisture.off"])
	assert.Equal(t, "Unavailable", entries["state.default.unavailable"])
	assert.Equal(t, "3", entries["ui.count"])
}

func TestFileCatalogRepository_JSON(t *testing.T) {
	dir := t.TempDir()
	data := `{"component": {"light": {"state": {"_": {"on": "On"}}}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(data), 0o644))

	entries, err := NewFileCatalogRepository(dir).Load(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"component.light.state._.on": "On"}, entries)
}

func TestFileCatalogRepository_Migration(t *testing.T) {
	dir := t.TempDir()
	legacyData := `{
		"language": "de",
		"resources": {
			"state.default.on": "An",
			"state.lock.default.locked": "Verriegelt"
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"), []byte(legacyData), 0o644))

	entries, err := NewFileCatalogRepository(dir).Load(context.Background(), "de")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Verriegelt", entries["state.lock.default.locked"])
}

func TestFileCatalogRepository_Missing(t *testing.T) {
	entries, err := NewFileCatalogRepository(t.TempDir()).Load(context.Background(), "xx")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileCatalogRepository_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{`), 0o644))

	_, err := NewFileCatalogRepository(dir).Load(context.Background(), "en")
	assert.Error(t, err)
}

func TestFileCatalogRepository_SaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalogs")
	repo := NewFileCatalogRepository(dir)
	entries := map[string]string{
		"state.default.on":                "On",
		"component.lock.state._.unlocked": "Unlocked: yes",
		"ui.count":                        "3",
	}

	require.NoError(t, repo.Save(context.Background(), "en", entries))
	loaded, err := repo.Load(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

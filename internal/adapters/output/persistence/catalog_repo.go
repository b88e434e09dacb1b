package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileCatalogRepository reads localization catalogs named <language>.yaml,
// <language>.yml or <language>.json from one directory. Nested maps are
// flattened into dotted keys.
type FileCatalogRepository struct {
	dir string
	mu  sync.RWMutex
}

// Older catalogs wrapped a flat table in a resources object.
type legacyCatalog struct {
	Language  string            `json:"language" yaml:"language"`
	Resources map[string]string `json:"resources" yaml:"resources"`
}

var catalogExtensions = []string{".yaml", ".yml", ".json"}

func NewFileCatalogRepository(dir string) *FileCatalogRepository {
	return &FileCatalogRepository{dir: dir}
}

// Load returns an empty catalog when no file exists for language.
func (r *FileCatalogRepository) Load(ctx context.Context, language string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ext := range catalogExtensions {
		path := filepath.Join(r.dir, language+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		entries, err := decode(data, ext)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		return entries, nil
	}
	return map[string]string{}, nil
}

func decode(data []byte, ext string) (map[string]string, error) {
	var tree map[string]interface{}
	if ext == ".json" {
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	// Migration check: a resources object means the old format
	if _, ok := tree["resources"].(map[string]interface{}); ok {
		return migrate(data, ext)
	}

	entries := make(map[string]string)
	flatten("", tree, entries)
	return entries, nil
}

func migrate(data []byte, ext string) (map[string]string, error) {
	var legacy legacyCatalog
	var err error
	if ext == ".json" {
		err = json.Unmarshal(data, &legacy)
	} else {
		err = yaml.Unmarshal(data, &legacy)
	}
	if err != nil {
		return nil, err
	}
	if legacy.Resources == nil {
		return map[string]string{}, nil
	}
	return legacy.Resources, nil
}

func flatten(prefix string, node interface{}, out map[string]string) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case nil:
	case string:
		out[prefix] = v
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// Save writes entries as <language>.yaml, one flat key per line in sorted order.
func (r *FileCatalogRepository) Save(ctx context.Context, language string, entries map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entries[k]},
		)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.dir, language+".yaml"), data, 0o644)
}

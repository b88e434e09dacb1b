package service

import (
	"context"
	"strings"
	"sync"

	"ha-entity-engine/internal/ports"
)

// Catalog is the in-memory localization table. It satisfies ports.Localizer.
type Catalog struct {
	repo     ports.CatalogRepository
	mu       sync.RWMutex
	language string
	strings  map[string]string
}

func NewCatalog(repo ports.CatalogRepository) *Catalog {
	return &Catalog{repo: repo, strings: map[string]string{}}
}

// Load replaces the table with the catalog of language.
func (c *Catalog) Load(ctx context.Context, language string) error {
	entries, err := c.repo.Load(ctx, language)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = language
	c.strings = entries
	return nil
}

func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// Localize returns "" on a miss. args are name/value pairs for "{name}" placeholders.
func (c *Catalog) Localize(key string, args ...string) string {
	c.mu.RLock()
	s := c.strings[key]
	c.mu.RUnlock()
	if s == "" || len(args) < 2 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

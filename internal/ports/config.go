package ports

import (
	"context"
)

// Localizer returns "" when key is missing so callers can try the next fallback.
// args are placeholder/value pairs substituted into "{placeholder}".
type Localizer interface {
	Localize(key string, args ...string) string
}

// CatalogRepository loads the localization catalog for a language.
type CatalogRepository interface {
	Load(ctx context.Context, language string) (map[string]string, error)
}

package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	ttlcache "github.com/jellydator/ttlcache/v2"
	"go.uber.org/zap"

	"ha-entity-engine/internal/domain/model"
)

var ErrNotConfigured = errors.New("homeassistant: not configured")

const (
	DefaultCacheTTL = 2 * time.Second
	allStatesKey    = "\x00all"
)

// strippedAttributes are dropped on decode to keep cached snapshots small.
var strippedAttributes = []string{"entity_picture", "entity_picture_local"}

// Client talks to the Home Assistant REST API. Snapshots are cached for a short
// TTL, so repeated reads inside that window return the same *EntityState.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	mu         sync.RWMutex

	cache  *ttlcache.Cache
	logger *zap.Logger
}

func NewClient(logger *zap.Logger, cacheTTL time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	cache := ttlcache.NewCache()
	_ = cache.SetTTL(cacheTTL)
	cache.SkipTTLExtensionOnHit(true)
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

func (c *Client) Configure(url, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = strings.TrimSuffix(url, "/")
	c.token = token
	_ = c.cache.Purge()
}

func (c *Client) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url != "" && c.token != ""
}

func (c *Client) Close() error {
	return c.cache.Close()
}

func (c *Client) endpoint() (string, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.url == "" || c.token == "" {
		return "", "", ErrNotConfigured
	}
	return c.url, c.token, nil
}

func (c *Client) GetStates(ctx context.Context) ([]*model.EntityState, error) {
	if cached, err := c.cache.Get(allStatesKey); err == nil {
		return cached.([]*model.EntityState), nil
	}

	var states []*model.EntityState
	found, err := c.get(ctx, "/api/states", &states)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("HA API error: %d", http.StatusNotFound)
	}
	for _, s := range states {
		strip(s)
		_ = c.cache.Set(s.EntityID, s)
	}
	_ = c.cache.Set(allStatesKey, states)
	c.logger.Debug("fetched states", zap.Int("count", len(states)))
	return states, nil
}

// GetState returns nil, nil when Home Assistant does not know entityID.
func (c *Client) GetState(ctx context.Context, entityID string) (*model.EntityState, error) {
	if cached, err := c.cache.Get(entityID); err == nil {
		return cached.(*model.EntityState), nil
	}

	var state model.EntityState
	found, err := c.get(ctx, "/api/states/"+url.PathEscape(entityID), &state)
	if err != nil || !found {
		return nil, err
	}
	strip(&state)
	_ = c.cache.Set(entityID, &state)
	return &state, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) (bool, error) {
	base, token, err := c.endpoint()
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HA API error: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

// CallService posts call to /api/services/<domain>/<service>. The cached
// snapshots of the targeted entities are dropped so the next read is fresh.
func (c *Client) CallService(ctx context.Context, call model.ServiceCall) error {
	base, token, err := c.endpoint()
	if err != nil {
		return err
	}

	payload := call.Data
	if payload == nil {
		payload = map[string]interface{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", call, err)
	}

	endpoint := fmt.Sprintf("%s/api/services/%s/%s", base, call.Domain, call.Service)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	c.invalidate(payload["entity_id"])
	c.logger.Debug("service called", zap.String("service", call.String()))
	return nil
}

func (c *Client) invalidate(target interface{}) {
	_ = c.cache.Remove(allStatesKey)
	switch ids := target.(type) {
	case string:
		_ = c.cache.Remove(ids)
	case []string:
		for _, id := range ids {
			_ = c.cache.Remove(id)
		}
	}
}

func strip(s *model.EntityState) {
	for _, attr := range strippedAttributes {
		delete(s.Attributes, attr)
	}
}

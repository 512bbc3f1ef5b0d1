package assets

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

// TemplateCache wraps a Ledger with an LRU cache over ResolveTemplate.
// Template immutable data is write-once, so cached entries never stale.
type TemplateCache struct {
	inner Ledger
	cache *lru.Cache[string, *Template]
}

// NewTemplateCache creates a caching wrapper of the given size.
func NewTemplateCache(inner Ledger, size int) (*TemplateCache, error) {
	cache, err := lru.New[string, *Template](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}
	return &TemplateCache{inner: inner, cache: cache}, nil
}

func templateKey(collection string, templateID int32) string {
	return fmt.Sprintf("%s/%d", collection, templateID)
}

// ResolveTemplate serves from cache, falling through to the ledger on miss.
func (c *TemplateCache) ResolveTemplate(ctx context.Context, collection string, templateID int32) (*Template, error) {
	key := templateKey(collection, templateID)
	if tmpl, ok := c.cache.Get(key); ok {
		return tmpl, nil
	}
	tmpl, err := c.inner.ResolveTemplate(ctx, collection, templateID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, tmpl)
	return tmpl, nil
}

func (c *TemplateCache) ResolveAsset(ctx context.Context, assetID uint64) (*Asset, error) {
	return c.inner.ResolveAsset(ctx, assetID)
}

func (c *TemplateCache) MutableData(ctx context.Context, assetID uint64) (domain.AttributeMap, error) {
	return c.inner.MutableData(ctx, assetID)
}

func (c *TemplateCache) SetMutableData(ctx context.Context, assetID uint64, owner string, data domain.AttributeMap) error {
	return c.inner.SetMutableData(ctx, assetID, owner, data)
}

func (c *TemplateCache) Burn(ctx context.Context, assetID uint64) error {
	return c.inner.Burn(ctx, assetID)
}

func (c *TemplateCache) Mint(ctx context.Context, collection, schema string, templateID int32, owner string, immutable, mutable domain.AttributeMap) error {
	return c.inner.Mint(ctx, collection, schema, templateID, owner, immutable, mutable)
}

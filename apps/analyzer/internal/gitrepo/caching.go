package gitrepo

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the per-run content cache. The LRU needs a fixed bound;
// this one sits far past what a sequential walk visits in one run, so a
// locator is not evicted between two references to it.
const cacheSize = 65536

// CachingClient wraps a real Client, memoizing FetchFile results by locator
// URL so a locator seen more than once during a walk hits the network exactly
// once.
//
// Soft failures are valid outcomes and are cached like content; transport and
// HTTP errors are not cached, so a retried fetch goes back to the network.
// The cache belongs to one run and is never shared across runs.
type CachingClient struct {
	real  Client
	cache *lru.Cache[string, FileResult]
}

// NewCachingClient wraps real with an empty content cache.
func NewCachingClient(real Client) (*CachingClient, error) {
	c, err := lru.New[string, FileResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create content cache: %w", err)
	}
	return &CachingClient{real: real, cache: c}, nil
}

// ListDir forwards to the real client unchanged. Listings are not cached;
// the walker visits each directory once per run anyway.
func (c *CachingClient) ListDir(ctx context.Context, owner, repo, dirPath string) ([]DirEntry, error) {
	return c.real.ListDir(ctx, owner, repo, dirPath)
}

// FetchFile checks the cache before calling the real client.
func (c *CachingClient) FetchFile(ctx context.Context, url string) (FileResult, error) {
	if res, ok := c.cache.Get(url); ok {
		return res, nil
	}
	res, err := c.real.FetchFile(ctx, url)
	if err != nil {
		return FileResult{}, err
	}
	c.cache.Add(url, res)
	return res, nil
}

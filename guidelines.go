package erold

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// guidelineCacheTTL bounds how long a fetched guideline list is served
// from memory before the next List refetches.
const guidelineCacheTTL = 5 * time.Minute

// Guidelines fetches the workspace guideline documents directly,
// bypassing any cache.
func (c *Client) Guidelines(ctx context.Context) ([]Guideline, error) {
	result, err := c.Get(ctx, tenantPath("guidelines"), nil)
	if err != nil {
		return nil, fmt.Errorf("guidelines: %w", err)
	}

	var guidelines []Guideline
	if err := json.Unmarshal(result, &guidelines); err != nil {
		return nil, fmt.Errorf("guidelines: decode response: %w", err)
	}
	return guidelines, nil
}

// GuidelineService serves workspace guidelines through a fixed-TTL
// cache. Guidelines change rarely but are consulted on most assistant
// turns, so the full list is cached for five minutes. The cache is
// owned by the service instance; concurrent refreshes race and the
// last write wins.
type GuidelineService struct {
	client *Client
	ttl    time.Duration

	mu        sync.Mutex
	entries   []Guideline
	fetchedAt time.Time
}

// NewGuidelineService creates a guideline service backed by the given
// client.
func NewGuidelineService(client *Client) *GuidelineService {
	return &GuidelineService{
		client: client,
		ttl:    guidelineCacheTTL,
	}
}

// WithTTL overrides the cache lifetime (for testing or tuning).
func (s *GuidelineService) WithTTL(ttl time.Duration) *GuidelineService {
	s.ttl = ttl
	return s
}

// List returns the workspace guidelines, served from cache when the
// last fetch is within the TTL.
func (s *GuidelineService) List(ctx context.Context) ([]Guideline, error) {
	s.mu.Lock()
	if s.entries != nil && time.Since(s.fetchedAt) < s.ttl {
		entries := s.entries
		s.mu.Unlock()
		return entries, nil
	}
	s.mu.Unlock()

	entries, err := s.client.Guidelines(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries = entries
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return entries, nil
}

// Get resolves a single guideline by slug against the cached list.
func (s *GuidelineService) Get(ctx context.Context, slug string) (*Guideline, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].Slug == slug {
			return &entries[i], nil
		}
	}
	return nil, NewNotFoundError("Guideline")
}

package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

// LookupCache caches the read-only company and office lookups in Redis.
// Upstream geocoding results are deliberately not cached here.
type LookupCache struct {
	client *redis.Client
}

// NewLookupCache creates a new LookupCache.
func NewLookupCache(client *redis.Client) *LookupCache {
	return &LookupCache{client: client}
}

// Cache TTL constants
const (
	// CompanyCacheTTL is long because companies change rarely and are
	// written by another subsystem.
	CompanyCacheTTL = 5 * time.Minute
	OfficeCacheTTL  = 5 * time.Minute
)

// Key prefixes
const (
	companiesCacheKey  = "cache:companies"
	officesCachePrefix = "cache:offices:"
)

// GetCompanies retrieves the cached company list. A cache miss returns
// (nil, nil).
func (c *LookupCache) GetCompanies(ctx context.Context) ([]*domain.Company, error) {
	data, err := c.client.Get(ctx, companiesCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var companies []*domain.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// SetCompanies stores the company list in cache.
func (c *LookupCache) SetCompanies(ctx context.Context, companies []*domain.Company) error {
	data, err := json.Marshal(companies)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, companiesCacheKey, data, CompanyCacheTTL).Err()
}

// GetOffices retrieves the cached office list of a company. A cache miss
// returns (nil, nil).
func (c *LookupCache) GetOffices(ctx context.Context, companyID string) ([]*domain.Office, error) {
	data, err := c.client.Get(ctx, officesCachePrefix+companyID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var offices []*domain.Office
	if err := json.Unmarshal(data, &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

// SetOffices stores a company's office list in cache.
func (c *LookupCache) SetOffices(ctx context.Context, companyID string, offices []*domain.Office) error {
	data, err := json.Marshal(offices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, officesCachePrefix+companyID, data, OfficeCacheTTL).Err()
}

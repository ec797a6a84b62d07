package redis

import (
	"context"
	"time"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
)

// LockStoreInterface defines the interface for distributed route edit locks.
type LockStoreInterface interface {
	AcquireRouteLock(ctx context.Context, routeID string, ttl time.Duration) (bool, error)
	ReleaseRouteLock(ctx context.Context, routeID string) error
}

// LookupCacheInterface defines the interface for company/office lookup caching.
type LookupCacheInterface interface {
	GetCompanies(ctx context.Context) ([]*domain.Company, error)
	SetCompanies(ctx context.Context, companies []*domain.Company) error
	GetOffices(ctx context.Context, companyID string) ([]*domain.Office, error)
	SetOffices(ctx context.Context, companyID string, offices []*domain.Office) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface   = (*LockStore)(nil)
	_ LookupCacheInterface = (*LookupCache)(nil)
)

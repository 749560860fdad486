package budget

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/agentfoundry/maestro/pkg/models"
)

// VendorLookup resolves capability hints for an external vendor.
type VendorLookup interface {
	Lookup(ctx context.Context, vendor string) (*models.VendorInfo, error)
}

// VendorCache memoizes vendor capability hints. Read-mostly; entries expire
// after the configured TTL.
type VendorCache struct {
	lookup VendorLookup
	cache  *gocache.Cache
}

// NewVendorCache wraps a lookup capability with TTL caching. A nil lookup
// yields a cache that always misses.
func NewVendorCache(lookup VendorLookup, ttl time.Duration) *VendorCache {
	return &VendorCache{
		lookup: lookup,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// Lookup returns vendor hints from cache or the underlying capability.
// Returns (nil, nil) when no lookup capability is configured or the vendor is
// unknown.
func (v *VendorCache) Lookup(ctx context.Context, vendor string) (*models.VendorInfo, error) {
	if cached, found := v.cache.Get(vendor); found {
		return cached.(*models.VendorInfo), nil
	}

	if v.lookup == nil {
		return nil, nil
	}

	info, err := v.lookup.Lookup(ctx, vendor)
	if err != nil {
		return nil, err
	}
	if info != nil {
		v.cache.Set(vendor, info, gocache.DefaultExpiration)
	}
	return info, nil
}

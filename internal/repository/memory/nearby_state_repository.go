package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ai-hrchat-be/pkg/maps"
)

// NearbyStateRepository keeps per-session nearby-search pagination state
// (places already shown, next page token). The state is advisory so it
// lives in process memory with a short TTL rather than in Redis.
type NearbyStateRepository struct {
	cache *cache.Cache
}

func NewNearbyStateRepository() *NearbyStateRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &NearbyStateRepository{
		cache: c,
	}
}

func (r *NearbyStateRepository) Save(sessionID string, state *maps.NearbyState) {
	r.cache.Set(sessionID, state, cache.DefaultExpiration)
}

func (r *NearbyStateRepository) Get(sessionID string) (*maps.NearbyState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*maps.NearbyState), true
	}
	return nil, false
}

func (r *NearbyStateRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

package memcache

import (
	"sync"
	"time"

	"safar/internal/models/response_models"
)

// ItineraryCache keeps the three generated packages per submission around for
// re-display between the generation call and package selection, and marks a
// submission as in flight so a second generation cannot start while the first
// is still talking to the completion endpoint.
type ItineraryCache interface {
	// StartGeneration reports false when a generation is already running for key.
	StartGeneration(key string) bool
	FinishGeneration(key string)

	Put(key string, packages []response_models.ItineraryPackage, ttl time.Duration)
	Get(key string) ([]response_models.ItineraryPackage, bool)
}

type entry struct {
	packages  []response_models.ItineraryPackage
	expiresAt time.Time
}

type itineraryCache struct {
	mu       sync.Mutex
	data     map[string]entry
	inFlight map[string]struct{}
}

func NewItineraryCache() ItineraryCache {
	return &itineraryCache{
		data:     make(map[string]entry),
		inFlight: make(map[string]struct{}),
	}
}

func (s *itineraryCache) StartGeneration(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, running := s.inFlight[key]; running {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *itineraryCache) FinishGeneration(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func (s *itineraryCache) Put(key string, packages []response_models.ItineraryPackage, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		packages:  packages,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *itineraryCache) Get(key string) ([]response_models.ItineraryPackage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key)
		return nil, false
	}
	return e.packages, true
}

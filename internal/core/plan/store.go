package plan

import (
	"sync"

	"github.com/lisahub/agent-hub-be/internal/shared/utils"
)

const storageKey = "lisa-plan"

// Storage is the minimal persistence surface the store needs
type Storage interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// Store holds the active subscription tier. Gating checks are pure lookups
// against the static tier tables; Select is the only mutation.
type Store struct {
	mu      sync.RWMutex
	current Tier
	storage Storage
}

// NewStore loads the persisted tier, falling back to def when nothing valid
// has been stored yet.
func NewStore(storage Storage, def Tier) *Store {
	s := &Store{current: def, storage: storage}
	if !ValidTier(s.current) {
		s.current = TierBusiness
	}
	if storage != nil {
		saved, err := storage.Get(storageKey)
		if err != nil {
			utils.LogWarn("failed to load plan tier, using default", map[string]interface{}{"error": err.Error()})
		} else if ValidTier(Tier(saved)) {
			s.current = Tier(saved)
		}
	}
	return s
}

// Current returns the active tier
func (s *Store) Current() Tier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Select swaps the active tier wholesale and persists the new code. Unknown
// tiers are ignored.
func (s *Store) Select(t Tier) {
	if !ValidTier(t) {
		return
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()

	if s.storage != nil {
		if err := s.storage.Put(storageKey, string(t)); err != nil {
			utils.LogError("failed to persist plan tier", err, map[string]interface{}{"tier": string(t)})
		}
	}
}

// CanAddAgent reports whether one more agent fits under the tier limit
func (s *Store) CanAddAgent(currentCount int) bool {
	return currentCount < agentLimits[s.Current()]
}

// CanAddIntegration reports whether one more integration can be enabled
func (s *Store) CanAddIntegration(currentCount int) bool {
	return currentCount < integrationLimits[s.Current()]
}

// HasFeature reports feature membership for the active tier
func (s *Store) HasFeature(f Feature) bool {
	for _, have := range features[s.Current()] {
		if have == f {
			return true
		}
	}
	return false
}

func (s *Store) AgentLimit() int       { return agentLimits[s.Current()] }
func (s *Store) IntegrationLimit() int { return integrationLimits[s.Current()] }
func (s *Store) MessageLimit() int     { return messageLimits[s.Current()] }
func (s *Store) WhatsAppLimit() int    { return whatsappLimits[s.Current()] }

// Features returns the feature list for the active tier
func (s *Store) Features() []Feature {
	return features[s.Current()]
}

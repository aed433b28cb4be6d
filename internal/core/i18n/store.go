package i18n

import (
	"sync"

	"github.com/lisahub/agent-hub-be/internal/shared/utils"
)

const storageKey = "agent-hub-locale"

// Storage is the minimal persistence surface the store needs
type Storage interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// Store holds the active locale together with its resolved dictionary. Only
// the locale code is persisted; the dictionary is re-resolved on load.
type Store struct {
	mu      sync.RWMutex
	locale  Locale
	dict    Translations
	storage Storage
}

func NewStore(storage Storage, def Locale) *Store {
	if !ValidLocale(def) {
		def = LocaleES
	}
	s := &Store{locale: def, dict: Resolve(def), storage: storage}
	if storage != nil {
		saved, err := storage.Get(storageKey)
		if err != nil {
			utils.LogWarn("failed to load locale, using default", map[string]interface{}{"error": err.Error()})
		} else if ValidLocale(Locale(saved)) {
			s.locale = Locale(saved)
			s.dict = Resolve(s.locale)
		}
	}
	return s
}

// Current returns the active locale and its dictionary as one unit
func (s *Store) Current() (Locale, Translations) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale, s.dict
}

// SetLocale swaps locale and dictionary atomically and persists the code.
// Unknown codes are ignored.
func (s *Store) SetLocale(l Locale) {
	if !ValidLocale(l) {
		return
	}
	s.mu.Lock()
	s.locale = l
	s.dict = Resolve(l)
	s.mu.Unlock()

	if s.storage != nil {
		if err := s.storage.Put(storageKey, string(l)); err != nil {
			utils.LogError("failed to persist locale", err, map[string]interface{}{"locale": string(l)})
		}
	}
}

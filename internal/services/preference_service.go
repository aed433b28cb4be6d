package services

import (
	"strconv"
	"sync"

	"github.com/lisahub/agent-hub-be/internal/shared/utils"
)

const sidebarCollapsedKey = "sidebar-collapsed"

// PreferenceService holds dashboard UI preference flags. Only the sidebar
// collapsed flag survives restarts; the mobile drawer and modal flags are
// transient session state.
type PreferenceService struct {
	mu         sync.RWMutex
	collapsed  bool
	mobileOpen bool
	modalOpen  bool
	storage    Storage
}

// NewPreferenceService loads the persisted collapsed flag. Anything but the
// literal "true" reads as expanded.
func NewPreferenceService(storage Storage) *PreferenceService {
	s := &PreferenceService{storage: storage}
	if storage == nil {
		return s
	}
	raw, err := storage.Get(sidebarCollapsedKey)
	if err != nil {
		utils.LogWarn("failed to load sidebar preference", map[string]interface{}{"error": err.Error()})
		return s
	}
	s.collapsed = raw == "true"
	return s
}

// Collapsed reports whether the sidebar is collapsed
func (s *PreferenceService) Collapsed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collapsed
}

// SetCollapsed sets and persists the sidebar collapsed flag
func (s *PreferenceService) SetCollapsed(collapsed bool) {
	s.mu.Lock()
	s.collapsed = collapsed
	s.mu.Unlock()

	if s.storage == nil {
		return
	}
	if err := s.storage.Put(sidebarCollapsedKey, strconv.FormatBool(collapsed)); err != nil {
		utils.LogError("failed to persist sidebar preference", err, nil)
	}
}

// ToggleCollapsed flips the collapsed flag and returns the new value
func (s *PreferenceService) ToggleCollapsed() bool {
	s.mu.Lock()
	s.collapsed = !s.collapsed
	collapsed := s.collapsed
	s.mu.Unlock()

	if s.storage != nil {
		if err := s.storage.Put(sidebarCollapsedKey, strconv.FormatBool(collapsed)); err != nil {
			utils.LogError("failed to persist sidebar preference", err, nil)
		}
	}
	return collapsed
}

// MobileOpen reports whether the mobile drawer is open
func (s *PreferenceService) MobileOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mobileOpen
}

// SetMobileOpen sets the transient mobile drawer flag
func (s *PreferenceService) SetMobileOpen(open bool) {
	s.mu.Lock()
	s.mobileOpen = open
	s.mu.Unlock()
}

// ModalOpen reports whether a blocking modal is open
func (s *PreferenceService) ModalOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modalOpen
}

// SetModalOpen sets the transient modal flag
func (s *PreferenceService) SetModalOpen(open bool) {
	s.mu.Lock()
	s.modalOpen = open
	s.mu.Unlock()
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidebarCollapsedPersists(t *testing.T) {
	storage := newMemStorage()
	svc := NewPreferenceService(storage)
	assert.False(t, svc.Collapsed())

	svc.SetCollapsed(true)
	assert.Equal(t, "true", storage.values["sidebar-collapsed"])

	reloaded := NewPreferenceService(storage)
	assert.True(t, reloaded.Collapsed())
}

func TestToggleCollapsed(t *testing.T) {
	svc := NewPreferenceService(newMemStorage())

	assert.True(t, svc.ToggleCollapsed())
	assert.False(t, svc.ToggleCollapsed())
}

func TestTransientFlagsNotPersisted(t *testing.T) {
	storage := newMemStorage()
	svc := NewPreferenceService(storage)

	svc.SetMobileOpen(true)
	svc.SetModalOpen(true)

	assert.True(t, svc.MobileOpen())
	assert.True(t, svc.ModalOpen())

	reloaded := NewPreferenceService(storage)
	assert.False(t, reloaded.MobileOpen())
	assert.False(t, reloaded.ModalOpen())
}

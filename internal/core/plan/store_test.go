package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type memStorage struct {
	values map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]string{}}
}

func (m *memStorage) Get(key string) (string, error) { return m.values[key], nil }
func (m *memStorage) Put(key, value string) error {
	m.values[key] = value
	return nil
}

func TestAgentLimitIsStrict(t *testing.T) {
	s := NewStore(nil, TierStarter)

	assert.True(t, s.CanAddAgent(0))
	assert.False(t, s.CanAddAgent(1))
	assert.False(t, s.CanAddAgent(2))
}

func TestEnterpriseIsUnlimited(t *testing.T) {
	s := NewStore(nil, TierEnterprise)

	assert.True(t, s.CanAddAgent(1_000_000))
	assert.True(t, s.CanAddIntegration(1_000_000))
}

func TestIntegrationLimitsPerTier(t *testing.T) {
	s := NewStore(nil, TierStarter)
	assert.True(t, s.CanAddIntegration(1))
	assert.False(t, s.CanAddIntegration(2))

	s.Select(TierPro)
	assert.True(t, s.CanAddIntegration(4))
	assert.False(t, s.CanAddIntegration(5))

	s.Select(TierBusiness)
	assert.True(t, s.CanAddIntegration(100))
}

func TestSelectIgnoresUnknownTier(t *testing.T) {
	s := NewStore(nil, TierPro)

	s.Select(Tier("platinum"))

	assert.Equal(t, TierPro, s.Current())
}

func TestSelectPersistsAndReloads(t *testing.T) {
	storage := newMemStorage()
	s := NewStore(storage, TierBusiness)

	s.Select(TierStarter)
	assert.Equal(t, "starter", storage.values["lisa-plan"])

	reloaded := NewStore(storage, TierBusiness)
	assert.Equal(t, TierStarter, reloaded.Current())
}

func TestInvalidPersistedTierFallsBack(t *testing.T) {
	storage := newMemStorage()
	storage.values["lisa-plan"] = "gold"

	s := NewStore(storage, TierPro)

	assert.Equal(t, TierPro, s.Current())
}

func TestFeatureGating(t *testing.T) {
	s := NewStore(nil, TierStarter)
	assert.False(t, s.HasFeature(FeatureMenuManager))

	s.Select(TierPro)
	assert.True(t, s.HasFeature(FeatureMenuManager))
	assert.False(t, s.HasFeature(FeatureChannelManager))

	s.Select(TierEnterprise)
	assert.True(t, s.HasFeature(FeatureChannelManager))
	assert.True(t, s.HasFeature(FeaturePMSIntegration))
}

func TestTierSwapIsWholesale(t *testing.T) {
	s := NewStore(nil, TierEnterprise)
	assert.Equal(t, Unlimited, s.AgentLimit())

	s.Select(TierStarter)

	assert.Equal(t, 1, s.AgentLimit())
	assert.Equal(t, 2, s.IntegrationLimit())
	assert.Equal(t, 500, s.MessageLimit())
	assert.Equal(t, 1, s.WhatsAppLimit())
	assert.Empty(t, s.Features())
}

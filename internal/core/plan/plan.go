package plan

import "math"

// Tier is a named subscription level
type Tier string

const (
	TierStarter    Tier = "starter"
	TierPro        Tier = "pro"
	TierBusiness   Tier = "business"
	TierEnterprise Tier = "enterprise"
)

// Unlimited marks limits with no cap
const Unlimited = math.MaxInt

// Feature is a named capability gated by plan
type Feature string

const (
	FeaturePropertiesManager  Feature = "properties_manager"
	FeatureReservationsEngine Feature = "reservations_engine"
	FeatureChannelManager     Feature = "channel_manager"
	FeaturePMSIntegration     Feature = "pms_integration"
	FeatureOrdersEngine       Feature = "orders_engine"
	FeatureMenuManager        Feature = "menu_manager"
)

var agentLimits = map[Tier]int{
	TierStarter:    1,
	TierPro:        10,
	TierBusiness:   25,
	TierEnterprise: Unlimited,
}

var integrationLimits = map[Tier]int{
	TierStarter:    2,
	TierPro:        5,
	TierBusiness:   Unlimited,
	TierEnterprise: Unlimited,
}

var messageLimits = map[Tier]int{
	TierStarter:    500,
	TierPro:        5000,
	TierBusiness:   25000,
	TierEnterprise: Unlimited,
}

var whatsappLimits = map[Tier]int{
	TierStarter:    1,
	TierPro:        3,
	TierBusiness:   10,
	TierEnterprise: Unlimited,
}

var features = map[Tier][]Feature{
	TierStarter: {},
	TierPro: {
		FeatureMenuManager,
		FeatureOrdersEngine,
	},
	TierBusiness: {
		FeatureMenuManager,
		FeatureOrdersEngine,
		FeaturePropertiesManager,
		FeatureReservationsEngine,
	},
	TierEnterprise: {
		FeatureMenuManager,
		FeatureOrdersEngine,
		FeaturePropertiesManager,
		FeatureReservationsEngine,
		FeatureChannelManager,
		FeaturePMSIntegration,
	},
}

// ValidTier reports whether t is part of the closed tier enumeration
func ValidTier(t Tier) bool {
	_, ok := agentLimits[t]
	return ok
}

// Tiers lists all tiers in ascending order
func Tiers() []Tier {
	return []Tier{TierStarter, TierPro, TierBusiness, TierEnterprise}
}

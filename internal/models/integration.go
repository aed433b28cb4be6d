package models

// IntegrationEnvironment selects sandbox or production credentials
type IntegrationEnvironment string

const (
	EnvSandbox    IntegrationEnvironment = "sandbox"
	EnvProduction IntegrationEnvironment = "production"
)

// Integration is one third-party connector an agent can enable
type Integration struct {
	ID           string                 `json:"id"`
	AgentID      string                 `json:"agent_id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"` // payments, operations, productivity, ecommerce
	Icon         string                 `json:"icon"`
	RequiredPlan string                 `json:"required_plan"`
	Enabled      bool                   `json:"enabled"`
	Environment  IntegrationEnvironment `json:"environment,omitempty"`
	Credentials  map[string]string      `json:"credentials,omitempty"`
	Configured   bool                   `json:"configured"`
}

// UpdateIntegrationConfigRequest stores connector credentials
type UpdateIntegrationConfigRequest struct {
	Environment IntegrationEnvironment `json:"environment,omitempty" validate:"omitempty,oneof=sandbox production"`
	Credentials map[string]string      `json:"credentials" validate:"required"`
}

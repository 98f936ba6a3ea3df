package dto

// DemoTenant identifies a seeded tenant
type DemoTenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DemoUser identifies a seeded user and the tenant it acts within
type DemoUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
}

// DemoBootstrapResponse lists what the bootstrap created or found
type DemoBootstrapResponse struct {
	Tenants            []DemoTenant `json:"tenants"`
	Users              []DemoUser   `json:"users"`
	PlaidItemIDTenantA string       `json:"plaid_item_id_tenant_a"`
	TokenUserA         string       `json:"token_user_a"`
}

// DemoResetStep reports one delete step of a reset
type DemoResetStep struct {
	Step  string `json:"step"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// DemoResetResponse summarizes a reset run
type DemoResetResponse struct {
	Status string          `json:"status"`
	Steps  []DemoResetStep `json:"steps"`
}

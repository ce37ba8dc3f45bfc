package iof

// Contract models a financing contract.
type Contract struct {
	ID        string                   `json:"id"         yaml:"id"`
	Type      string                   `json:"type"       yaml:"type"`
	Status    string                   `json:"status"     yaml:"status"`
	Principal float64                  `json:"principal"  yaml:"principal"`
	Currency  string                   `json:"currency"   yaml:"currency"`
	Parties   []map[string]interface{} `json:"parties,omitempty" yaml:"parties,omitempty"`
	Terms     map[string]interface{}   `json:"terms,omitempty"   yaml:"terms,omitempty"`
	CreatedAt string                   `json:"created_at" yaml:"created_at"`
	UpdatedAt string                   `json:"updated_at" yaml:"updated_at"`
}

// CreateContractRequest is the body for creating a contract.
type CreateContractRequest struct {
	Type      string                   `json:"type"      yaml:"type"`
	Principal float64                  `json:"principal" yaml:"principal"`
	Currency  string                   `json:"currency"  yaml:"currency"`
	Parties   []map[string]interface{} `json:"parties,omitempty" yaml:"parties,omitempty"`
	Terms     map[string]interface{}   `json:"terms,omitempty"   yaml:"terms,omitempty"`
}

// UpdateContractRequest is the body for updating a contract.
type UpdateContractRequest struct {
	Status *string                `json:"status,omitempty" yaml:"status,omitempty"`
	Terms  map[string]interface{} `json:"terms,omitempty"  yaml:"terms,omitempty"`
}

// ValidationResult is the outcome of a contract dry-run validation.
type ValidationResult struct {
	Valid    bool     `json:"valid"              yaml:"valid"`
	Errors   []string `json:"errors,omitempty"   yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ContractEvent is one entry in a contract's history.
type ContractEvent struct {
	ID         string                 `json:"id"         yaml:"id"`
	ContractID string                 `json:"contract_id" yaml:"contract_id"`
	Type       string                 `json:"type"       yaml:"type"`
	Actor      string                 `json:"actor,omitempty" yaml:"actor,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"  yaml:"data,omitempty"`
	CreatedAt  string                 `json:"created_at" yaml:"created_at"`
}

// Document is a stored document attached to a resource.
type Document struct {
	ID          string `json:"id"           yaml:"id"`
	Name        string `json:"name"         yaml:"name"`
	Type        string `json:"type"         yaml:"type"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	CreatedAt   string `json:"created_at"   yaml:"created_at"`
}

// Jurisdiction models a regulatory jurisdiction.
type Jurisdiction struct {
	ID                  string `json:"id"                   yaml:"id"`
	Name                string `json:"name"                 yaml:"name"`
	Code                string `json:"code"                 yaml:"code"`
	Country             string `json:"country"              yaml:"country"`
	RegulatoryAuthority string `json:"regulatory_authority" yaml:"regulatory_authority"`
	ShariahBoard        string `json:"shariah_board"        yaml:"shariah_board"`
}

// JurisdictionConfig holds per-jurisdiction platform configuration.
type JurisdictionConfig struct {
	JurisdictionID string                 `json:"jurisdiction_id" yaml:"jurisdiction_id"`
	Settings       map[string]interface{} `json:"settings"        yaml:"settings"`
}

// JurisdictionRule is a single compliance rule for a jurisdiction.
type JurisdictionRule struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string `json:"category,omitempty"    yaml:"category,omitempty"`
}

// Customer models a KYC customer record.
type Customer struct {
	ID        string `json:"id"         yaml:"id"`
	Type      string `json:"type"       yaml:"type"`
	Status    string `json:"status"     yaml:"status"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	Email     string `json:"email,omitempty"      yaml:"email,omitempty"`
	Phone     string `json:"phone,omitempty"      yaml:"phone,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// CreateCustomerRequest is the body for registering a customer. Type is
// "individual" or "corporate".
type CreateCustomerRequest struct {
	Type      string `json:"type"                 yaml:"type"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	Email     string `json:"email,omitempty"      yaml:"email,omitempty"`
	Phone     string `json:"phone,omitempty"      yaml:"phone,omitempty"`
}

// UpdateCustomerRequest is the body for updating a customer.
type UpdateCustomerRequest struct {
	Status *string `json:"status,omitempty" yaml:"status,omitempty"`
	Email  *string `json:"email,omitempty"  yaml:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"  yaml:"phone,omitempty"`
}

// ScreeningResult is the outcome of screening a customer against watchlists.
type ScreeningResult struct {
	CustomerID string                   `json:"customer_id" yaml:"customer_id"`
	Status     string                   `json:"status"      yaml:"status"`
	Matched    bool                     `json:"matched"     yaml:"matched"`
	Matches    []map[string]interface{} `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// AMLRule models a transaction-monitoring rule.
type AMLRule struct {
	ID          string                 `json:"id"          yaml:"id"`
	Name        string                 `json:"name"        yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    string                 `json:"severity"    yaml:"severity"`
	Enabled     bool                   `json:"enabled"     yaml:"enabled"`
	Conditions  map[string]interface{} `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// CreateAMLRuleRequest is the body for creating a monitoring rule.
type CreateAMLRuleRequest struct {
	Name        string                 `json:"name"        yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    string                 `json:"severity"    yaml:"severity"`
	Enabled     bool                   `json:"enabled"     yaml:"enabled"`
	Conditions  map[string]interface{} `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// UpdateAMLRuleRequest is the body for updating a monitoring rule.
type UpdateAMLRuleRequest struct {
	Name        *string                `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    *string                `json:"severity,omitempty"    yaml:"severity,omitempty"`
	Enabled     *bool                  `json:"enabled,omitempty"     yaml:"enabled,omitempty"`
	Conditions  map[string]interface{} `json:"conditions,omitempty"  yaml:"conditions,omitempty"`
}

// AMLScreening models a watchlist screening run for an entity.
type AMLScreening struct {
	ID         string                   `json:"id"          yaml:"id"`
	EntityID   string                   `json:"entity_id"   yaml:"entity_id"`
	EntityType string                   `json:"entity_type" yaml:"entity_type"`
	Status     string                   `json:"status"      yaml:"status"`
	RiskScore  float64                  `json:"risk_score"  yaml:"risk_score"`
	Matches    []map[string]interface{} `json:"matches,omitempty" yaml:"matches,omitempty"`
	CreatedAt  string                   `json:"created_at"  yaml:"created_at"`
}

// CreateAMLScreeningRequest is the body for starting a screening.
type CreateAMLScreeningRequest struct {
	EntityID   string `json:"entity_id"   yaml:"entity_id"`
	EntityType string `json:"entity_type" yaml:"entity_type"`
}

// AMLAlert models an alert raised by a monitoring rule.
type AMLAlert struct {
	ID          string `json:"id"          yaml:"id"`
	Type        string `json:"type"        yaml:"type"`
	Severity    string `json:"severity"    yaml:"severity"`
	Status      string `json:"status"      yaml:"status"`
	EntityID    string `json:"entity_id"   yaml:"entity_id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   string `json:"created_at"  yaml:"created_at"`
}

// CreateAMLAlertRequest is the body for raising an alert manually.
type CreateAMLAlertRequest struct {
	Type        string `json:"type"        yaml:"type"`
	Severity    string `json:"severity"    yaml:"severity"`
	EntityID    string `json:"entity_id"   yaml:"entity_id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// UpdateAMLAlertRequest is the body for updating an alert.
type UpdateAMLAlertRequest struct {
	Status     *string `json:"status,omitempty"      yaml:"status,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

// AMLCase models an investigation case grouping one or more alerts.
type AMLCase struct {
	ID         string   `json:"id"          yaml:"id"`
	Title      string   `json:"title"       yaml:"title"`
	Status     string   `json:"status"      yaml:"status"`
	Priority   string   `json:"priority"    yaml:"priority"`
	AssignedTo string   `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	Alerts     []string `json:"alerts,omitempty"      yaml:"alerts,omitempty"`
	CreatedAt  string   `json:"created_at"  yaml:"created_at"`
	UpdatedAt  string   `json:"updated_at"  yaml:"updated_at"`
}

// CreateAMLCaseRequest is the body for opening a case.
type CreateAMLCaseRequest struct {
	Title    string   `json:"title"    yaml:"title"`
	Priority string   `json:"priority" yaml:"priority"`
	Alerts   []string `json:"alerts,omitempty" yaml:"alerts,omitempty"`
}

// UpdateAMLCaseRequest is the body for updating a case.
type UpdateAMLCaseRequest struct {
	Status     *string `json:"status,omitempty"      yaml:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"    yaml:"priority,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

// OAuthClient models a registered OAuth client application.
type OAuthClient struct {
	ID           string   `json:"id"            yaml:"id"`
	Name         string   `json:"name"          yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	ClientID     string   `json:"client_id"     yaml:"client_id"`
	ClientSecret string   `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	RedirectURIs []string `json:"redirect_uris,omitempty" yaml:"redirect_uris,omitempty"`
	CreatedAt    string   `json:"created_at"    yaml:"created_at"`
}

// CreateOAuthClientRequest is the body for registering a client app.
type CreateOAuthClientRequest struct {
	Name         string   `json:"name"                    yaml:"name"`
	Description  string   `json:"description,omitempty"   yaml:"description,omitempty"`
	RedirectURIs []string `json:"redirect_uris,omitempty" yaml:"redirect_uris,omitempty"`
}

// UpdateOAuthClientRequest is the body for updating a client app.
type UpdateOAuthClientRequest struct {
	Name         *string  `json:"name,omitempty"          yaml:"name,omitempty"`
	Description  *string  `json:"description,omitempty"   yaml:"description,omitempty"`
	RedirectURIs []string `json:"redirect_uris,omitempty" yaml:"redirect_uris,omitempty"`
}

// APIKey models an issued API key. Key is only populated on creation and
// rotation responses.
type APIKey struct {
	ID         string   `json:"id"           yaml:"id"`
	Name       string   `json:"name"         yaml:"name"`
	Key        string   `json:"key,omitempty" yaml:"key,omitempty"`
	Prefix     string   `json:"prefix"       yaml:"prefix"`
	Scopes     []string `json:"scopes,omitempty"       yaml:"scopes,omitempty"`
	ExpiresAt  string   `json:"expires_at,omitempty"   yaml:"expires_at,omitempty"`
	LastUsedAt string   `json:"last_used_at,omitempty" yaml:"last_used_at,omitempty"`
	CreatedAt  string   `json:"created_at"   yaml:"created_at"`
}

// CreateAPIKeyRequest is the body for issuing an API key.
type CreateAPIKeyRequest struct {
	Name      string   `json:"name"                 yaml:"name"`
	Scopes    []string `json:"scopes,omitempty"     yaml:"scopes,omitempty"`
	ExpiresAt string   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// UsageMetrics is an aggregate of API usage over a date range.
type UsageMetrics struct {
	TotalRequests int64                  `json:"total_requests" yaml:"total_requests"`
	TotalErrors   int64                  `json:"total_errors"   yaml:"total_errors"`
	ByEndpoint    map[string]int64       `json:"by_endpoint,omitempty" yaml:"by_endpoint,omitempty"`
	Period        map[string]interface{} `json:"period,omitempty"      yaml:"period,omitempty"`
}

// Partner models a distribution partner.
type Partner struct {
	ID                     string  `json:"id"     yaml:"id"`
	Name                   string  `json:"name"   yaml:"name"`
	Type                   string  `json:"type"   yaml:"type"`
	Status                 string  `json:"status" yaml:"status"`
	RevenueSharePercentage float64 `json:"revenue_share_percentage" yaml:"revenue_share_percentage"`
	CreatedAt              string  `json:"created_at" yaml:"created_at"`
}

// CreatePartnerRequest is the body for onboarding a partner.
type CreatePartnerRequest struct {
	Name                   string  `json:"name" yaml:"name"`
	Type                   string  `json:"type" yaml:"type"`
	RevenueSharePercentage float64 `json:"revenue_share_percentage,omitempty" yaml:"revenue_share_percentage,omitempty"`
}

// UpdatePartnerRequest is the body for updating a partner.
type UpdatePartnerRequest struct {
	Name                   *string  `json:"name,omitempty"   yaml:"name,omitempty"`
	Status                 *string  `json:"status,omitempty" yaml:"status,omitempty"`
	RevenueSharePercentage *float64 `json:"revenue_share_percentage,omitempty" yaml:"revenue_share_percentage,omitempty"`
}

// Program models a partner commission program.
type Program struct {
	ID             string  `json:"id"              yaml:"id"`
	Name           string  `json:"name"            yaml:"name"`
	Type           string  `json:"type"            yaml:"type"`
	CommissionRate float64 `json:"commission_rate" yaml:"commission_rate"`
	Status         string  `json:"status"          yaml:"status"`
}

// CreateProgramRequest is the body for creating a program.
type CreateProgramRequest struct {
	Name           string  `json:"name"            yaml:"name"`
	Type           string  `json:"type"            yaml:"type"`
	CommissionRate float64 `json:"commission_rate" yaml:"commission_rate"`
}

// UpdateProgramRequest is the body for updating a program.
type UpdateProgramRequest struct {
	Name           *string  `json:"name,omitempty"            yaml:"name,omitempty"`
	Status         *string  `json:"status,omitempty"          yaml:"status,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty" yaml:"commission_rate,omitempty"`
}

// RevenueReport aggregates partner revenue over a date range.
type RevenueReport struct {
	PartnerID    string                   `json:"partner_id"    yaml:"partner_id"`
	TotalRevenue float64                  `json:"total_revenue" yaml:"total_revenue"`
	Currency     string                   `json:"currency"      yaml:"currency"`
	Items        []map[string]interface{} `json:"items,omitempty" yaml:"items,omitempty"`
}

// CommissionReport aggregates partner commissions.
type CommissionReport struct {
	PartnerID       string                   `json:"partner_id"       yaml:"partner_id"`
	TotalCommission float64                  `json:"total_commission" yaml:"total_commission"`
	Currency        string                   `json:"currency"         yaml:"currency"`
	Items           []map[string]interface{} `json:"items,omitempty"  yaml:"items,omitempty"`
}

// Dispute models a transaction dispute.
type Dispute struct {
	ID        string  `json:"id"         yaml:"id"`
	Type      string  `json:"type"       yaml:"type"`
	Status    string  `json:"status"     yaml:"status"`
	Amount    float64 `json:"amount"     yaml:"amount"`
	Currency  string  `json:"currency"   yaml:"currency"`
	Reason    string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
	UpdatedAt string  `json:"updated_at" yaml:"updated_at"`
}

// CreateDisputeRequest is the body for filing a dispute.
type CreateDisputeRequest struct {
	Type     string  `json:"type"     yaml:"type"`
	Amount   float64 `json:"amount"   yaml:"amount"`
	Currency string  `json:"currency" yaml:"currency"`
	Reason   string  `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// UpdateDisputeRequest is the body for updating a dispute.
type UpdateDisputeRequest struct {
	Status *string `json:"status,omitempty" yaml:"status,omitempty"`
	Reason *string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// CollectionCase models a debt collection case.
type CollectionCase struct {
	ID        string  `json:"id"         yaml:"id"`
	DebtorID  string  `json:"debtor_id"  yaml:"debtor_id"`
	Status    string  `json:"status"     yaml:"status"`
	Amount    float64 `json:"amount"     yaml:"amount"`
	Currency  string  `json:"currency"   yaml:"currency"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
}

// CreateCollectionCaseRequest is the body for opening a collection case.
type CreateCollectionCaseRequest struct {
	DebtorID string  `json:"debtor_id" yaml:"debtor_id"`
	Amount   float64 `json:"amount"    yaml:"amount"`
	Currency string  `json:"currency"  yaml:"currency"`
}

// ZakatCalculation models a zakat assessment for an account and year.
type ZakatCalculation struct {
	ID          string  `json:"id"           yaml:"id"`
	AccountID   string  `json:"account_id"   yaml:"account_id"`
	Year        int     `json:"year"         yaml:"year"`
	TotalWealth float64 `json:"total_wealth" yaml:"total_wealth"`
	Nisab       float64 `json:"nisab"        yaml:"nisab"`
	ZakatDue    float64 `json:"zakat_due"    yaml:"zakat_due"`
	Currency    string  `json:"currency"     yaml:"currency"`
	Status      string  `json:"status"       yaml:"status"`
	CreatedAt   string  `json:"created_at"   yaml:"created_at"`
}

// CreateZakatCalculationRequest is the body for recording a calculation.
type CreateZakatCalculationRequest struct {
	AccountID   string  `json:"account_id"   yaml:"account_id"`
	Year        int     `json:"year"         yaml:"year"`
	TotalWealth float64 `json:"total_wealth" yaml:"total_wealth"`
	Currency    string  `json:"currency"     yaml:"currency"`
}

// ZakatPayment models a payment against a calculation.
type ZakatPayment struct {
	ID            string  `json:"id"             yaml:"id"`
	CalculationID string  `json:"calculation_id" yaml:"calculation_id"`
	Amount        float64 `json:"amount"         yaml:"amount"`
	Currency      string  `json:"currency"       yaml:"currency"`
	Status        string  `json:"status"         yaml:"status"`
	PaidAt        string  `json:"paid_at,omitempty" yaml:"paid_at,omitempty"`
}

// CreateZakatPaymentRequest is the body for recording a payment.
type CreateZakatPaymentRequest struct {
	CalculationID string  `json:"calculation_id" yaml:"calculation_id"`
	Amount        float64 `json:"amount"         yaml:"amount"`
	Currency      string  `json:"currency"       yaml:"currency"`
}

// PurificationResult is the income purification amount for an account year.
type PurificationResult struct {
	AccountID          string  `json:"account_id"          yaml:"account_id"`
	Year               int     `json:"year"                yaml:"year"`
	ImpermissibleGains float64 `json:"impermissible_gains" yaml:"impermissible_gains"`
	PurificationDue    float64 `json:"purification_due"    yaml:"purification_due"`
	Currency           string  `json:"currency"            yaml:"currency"`
}

// NisabRates carries the current nisab thresholds for a currency.
type NisabRates struct {
	Currency    string  `json:"currency"     yaml:"currency"`
	GoldNisab   float64 `json:"gold_nisab"   yaml:"gold_nisab"`
	SilverNisab float64 `json:"silver_nisab" yaml:"silver_nisab"`
	UpdatedAt   string  `json:"updated_at"   yaml:"updated_at"`
}

// TreasuryPosition models a currency position on an account.
type TreasuryPosition struct {
	ID        string  `json:"id"         yaml:"id"`
	AccountID string  `json:"account_id" yaml:"account_id"`
	Currency  string  `json:"currency"   yaml:"currency"`
	Balance   float64 `json:"balance"    yaml:"balance"`
	Available float64 `json:"available"  yaml:"available"`
	Reserved  float64 `json:"reserved"   yaml:"reserved"`
	UpdatedAt string  `json:"updated_at" yaml:"updated_at"`
}

// LiquidityForecast projects available liquidity over a horizon.
type LiquidityForecast struct {
	AccountID string                   `json:"account_id" yaml:"account_id"`
	Days      int                      `json:"days"       yaml:"days"`
	Points    []map[string]interface{} `json:"points,omitempty" yaml:"points,omitempty"`
}

// CashFlowReport aggregates inflows and outflows for a date range.
type CashFlowReport struct {
	AccountID string                   `json:"account_id" yaml:"account_id"`
	Inflows   float64                  `json:"inflows"    yaml:"inflows"`
	Outflows  float64                  `json:"outflows"   yaml:"outflows"`
	Net       float64                  `json:"net"        yaml:"net"`
	Items     []map[string]interface{} `json:"items,omitempty" yaml:"items,omitempty"`
}

// TreasuryTransfer models a transfer between accounts.
type TreasuryTransfer struct {
	ID            string  `json:"id"             yaml:"id"`
	FromAccountID string  `json:"from_account_id" yaml:"from_account_id"`
	ToAccountID   string  `json:"to_account_id"   yaml:"to_account_id"`
	Amount        float64 `json:"amount"         yaml:"amount"`
	Currency      string  `json:"currency"       yaml:"currency"`
	Status        string  `json:"status"         yaml:"status"`
	CreatedAt     string  `json:"created_at"     yaml:"created_at"`
}

// CreateTreasuryTransferRequest is the body for initiating a transfer.
type CreateTreasuryTransferRequest struct {
	FromAccountID string  `json:"from_account_id" yaml:"from_account_id"`
	ToAccountID   string  `json:"to_account_id"   yaml:"to_account_id"`
	Amount        float64 `json:"amount"          yaml:"amount"`
	Currency      string  `json:"currency"        yaml:"currency"`
}

// RiskLimit models an exposure limit.
type RiskLimit struct {
	ID              string  `json:"id"               yaml:"id"`
	Name            string  `json:"name"             yaml:"name"`
	Type            string  `json:"type"             yaml:"type"`
	LimitAmount     float64 `json:"limit_amount"     yaml:"limit_amount"`
	CurrentExposure float64 `json:"current_exposure" yaml:"current_exposure"`
	Currency        string  `json:"currency"         yaml:"currency"`
	Status          string  `json:"status"           yaml:"status"`
}

// CreateRiskLimitRequest is the body for creating a limit.
type CreateRiskLimitRequest struct {
	Name        string  `json:"name"         yaml:"name"`
	Type        string  `json:"type"         yaml:"type"`
	LimitAmount float64 `json:"limit_amount" yaml:"limit_amount"`
	Currency    string  `json:"currency"     yaml:"currency"`
}

// UpdateRiskLimitRequest is the body for updating a limit.
type UpdateRiskLimitRequest struct {
	LimitAmount *float64 `json:"limit_amount,omitempty" yaml:"limit_amount,omitempty"`
	Status      *string  `json:"status,omitempty"       yaml:"status,omitempty"`
}

// LimitCheckResult reports whether an amount fits under a limit.
type LimitCheckResult struct {
	LimitID   string  `json:"limit_id"  yaml:"limit_id"`
	Allowed   bool    `json:"allowed"   yaml:"allowed"`
	Headroom  float64 `json:"headroom"  yaml:"headroom"`
	Requested float64 `json:"requested" yaml:"requested"`
}

// ExposureSummary aggregates exposure by entity and currency.
type ExposureSummary struct {
	TotalExposure float64                  `json:"total_exposure" yaml:"total_exposure"`
	Currency      string                   `json:"currency"       yaml:"currency"`
	ByCategory    map[string]float64       `json:"by_category,omitempty" yaml:"by_category,omitempty"`
	Items         []map[string]interface{} `json:"items,omitempty"       yaml:"items,omitempty"`
}

// ConcentrationRisk reports concentration against configured thresholds.
type ConcentrationRisk struct {
	Segments []map[string]interface{} `json:"segments,omitempty" yaml:"segments,omitempty"`
	Breaches []map[string]interface{} `json:"breaches,omitempty" yaml:"breaches,omitempty"`
}

// RiskAssessment models a point-in-time risk assessment.
type RiskAssessment struct {
	ID        string  `json:"id"         yaml:"id"`
	EntityID  string  `json:"entity_id"  yaml:"entity_id"`
	Score     float64 `json:"score"      yaml:"score"`
	Rating    string  `json:"rating"     yaml:"rating"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
}

// CreateRiskAssessmentRequest is the body for requesting an assessment.
type CreateRiskAssessmentRequest struct {
	EntityID string `json:"entity_id" yaml:"entity_id"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Webhook models a registered webhook endpoint.
type Webhook struct {
	ID        string   `json:"id"      yaml:"id"`
	URL       string   `json:"url"     yaml:"url"`
	Events    []string `json:"events"  yaml:"events"`
	Secret    string   `json:"secret,omitempty" yaml:"secret,omitempty"`
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	CreatedAt string   `json:"created_at" yaml:"created_at"`
}

// CreateWebhookRequest is the body for registering a webhook.
type CreateWebhookRequest struct {
	URL    string   `json:"url"    yaml:"url"`
	Events []string `json:"events" yaml:"events"`
}

// UpdateWebhookRequest is the body for updating a webhook.
type UpdateWebhookRequest struct {
	URL     *string  `json:"url,omitempty"     yaml:"url,omitempty"`
	Events  []string `json:"events,omitempty"  yaml:"events,omitempty"`
	Enabled *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// WebhookDelivery models one delivery attempt to a webhook endpoint.
type WebhookDelivery struct {
	ID           string `json:"id"            yaml:"id"`
	WebhookID    string `json:"webhook_id"    yaml:"webhook_id"`
	EventType    string `json:"event_type"    yaml:"event_type"`
	Status       string `json:"status"        yaml:"status"`
	ResponseCode int    `json:"response_code,omitempty" yaml:"response_code,omitempty"`
	CreatedAt    string `json:"created_at"    yaml:"created_at"`
}

// WebhookTestResult reports the outcome of a test delivery.
type WebhookTestResult struct {
	WebhookID    string `json:"webhook_id"    yaml:"webhook_id"`
	Delivered    bool   `json:"delivered"     yaml:"delivered"`
	ResponseCode int    `json:"response_code,omitempty" yaml:"response_code,omitempty"`
}

// EventType describes an event type the platform can emit.
type EventType struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Event models a platform event.
type Event struct {
	ID        string                 `json:"id"         yaml:"id"`
	Type      string                 `json:"type"       yaml:"type"`
	Source    string                 `json:"source"     yaml:"source"`
	Data      map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	CreatedAt string                 `json:"created_at" yaml:"created_at"`
}

// PublishEventRequest is the body for publishing an event.
type PublishEventRequest struct {
	Type   string                 `json:"type"   yaml:"type"`
	Source string                 `json:"source" yaml:"source"`
	Data   map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// EventSchema is the JSON schema for an event type's payload.
type EventSchema struct {
	Type   string                 `json:"type"   yaml:"type"`
	Schema map[string]interface{} `json:"schema" yaml:"schema"`
}

// EventSubscription models a push subscription to event types.
type EventSubscription struct {
	ID        string   `json:"id"         yaml:"id"`
	Types     []string `json:"types"      yaml:"types"`
	Target    string   `json:"target"     yaml:"target"`
	CreatedAt string   `json:"created_at" yaml:"created_at"`
}

// CreateEventSubscriptionRequest is the body for subscribing to events.
type CreateEventSubscriptionRequest struct {
	Types  []string `json:"types"  yaml:"types"`
	Target string   `json:"target" yaml:"target"`
}

// SearchResult is the envelope returned by search queries.
type SearchResult struct {
	Hits  []map[string]interface{} `json:"hits"  yaml:"hits"`
	Total int                      `json:"total" yaml:"total"`
	Query string                   `json:"query" yaml:"query"`
	Took  int                      `json:"took"  yaml:"took"`
}

// IndexStats describes a search index.
type IndexStats struct {
	Index     string `json:"index"      yaml:"index"`
	Documents int64  `json:"documents"  yaml:"documents"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// ReindexResult reports a triggered reindex job.
type ReindexResult struct {
	Index  string `json:"index"  yaml:"index"`
	JobID  string `json:"job_id" yaml:"job_id"`
	Status string `json:"status" yaml:"status"`
}

// SLOMetric models a service-level objective and its current attainment.
type SLOMetric struct {
	ID      string  `json:"id"      yaml:"id"`
	Name    string  `json:"name"    yaml:"name"`
	Target  float64 `json:"target"  yaml:"target"`
	Current float64 `json:"current" yaml:"current"`
	Status  string  `json:"status"  yaml:"status"`
	Period  string  `json:"period"  yaml:"period"`
}

// SLOSummary aggregates SLO attainment across objectives.
type SLOSummary struct {
	Total    int `json:"total"    yaml:"total"`
	Meeting  int `json:"meeting"  yaml:"meeting"`
	Breached int `json:"breached" yaml:"breached"`
}

// AuditLog models one audit trail entry.
type AuditLog struct {
	ID           string                 `json:"id"            yaml:"id"`
	EventType    string                 `json:"event_type"    yaml:"event_type"`
	ActorID      string                 `json:"actor_id"      yaml:"actor_id"`
	ResourceType string                 `json:"resource_type" yaml:"resource_type"`
	ResourceID   string                 `json:"resource_id"   yaml:"resource_id"`
	Action       string                 `json:"action"        yaml:"action"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	IPAddress    string                 `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	CreatedAt    string                 `json:"created_at"    yaml:"created_at"`
}

// ShariahMonitoringRecord models a compliance check on a contract.
type ShariahMonitoringRecord struct {
	ID         string   `json:"id"          yaml:"id"`
	ContractID string   `json:"contract_id" yaml:"contract_id"`
	CheckType  string   `json:"check_type"  yaml:"check_type"`
	Status     string   `json:"status"      yaml:"status"`
	Result     string   `json:"result,omitempty" yaml:"result,omitempty"`
	Flags      []string `json:"flags,omitempty"  yaml:"flags,omitempty"`
	CreatedAt  string   `json:"created_at"  yaml:"created_at"`
}

// DataExport models an asynchronous data export job.
type DataExport struct {
	ID        string `json:"id"         yaml:"id"`
	Type      string `json:"type"       yaml:"type"`
	Status    string `json:"status"     yaml:"status"`
	Format    string `json:"format"     yaml:"format"`
	URL       string `json:"url,omitempty"        yaml:"url,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// CreateDataExportRequest is the body for starting an export job.
type CreateDataExportRequest struct {
	Type   string `json:"type"   yaml:"type"`
	Format string `json:"format" yaml:"format"`
}

// HealthStatus reports platform component health.
type HealthStatus struct {
	Status     string            `json:"status"     yaml:"status"`
	Components map[string]string `json:"components,omitempty" yaml:"components,omitempty"`
}

// PlatformMetrics aggregates platform metrics over a date range.
type PlatformMetrics struct {
	Metrics map[string]interface{} `json:"metrics" yaml:"metrics"`
}

// Case models an operational case worked by platform staff.
type Case struct {
	ID          string `json:"id"       yaml:"id"`
	Type        string `json:"type"     yaml:"type"`
	Status      string `json:"status"   yaml:"status"`
	Priority    string `json:"priority" yaml:"priority"`
	Title       string `json:"title"    yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"`
}

// CreateCaseRequest is the body for opening a case.
type CreateCaseRequest struct {
	Type        string `json:"type"     yaml:"type"`
	Priority    string `json:"priority" yaml:"priority"`
	Title       string `json:"title"    yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// UpdateCaseRequest is the body for a partial case update.
type UpdateCaseRequest struct {
	Status      *string `json:"status,omitempty"      yaml:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CaseComment is a comment on a case timeline.
type CaseComment struct {
	ID        string `json:"id"      yaml:"id"`
	CaseID    string `json:"case_id" yaml:"case_id"`
	Comment   string `json:"comment" yaml:"comment"`
	Author    string `json:"author,omitempty" yaml:"author,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// CaseEvent is one entry in a case history.
type CaseEvent struct {
	ID        string                 `json:"id"         yaml:"id"`
	CaseID    string                 `json:"case_id"    yaml:"case_id"`
	EventType string                 `json:"event_type" yaml:"event_type"`
	Actor     string                 `json:"actor,omitempty"   yaml:"actor,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	CreatedAt string                 `json:"created_at" yaml:"created_at"`
}

// Consent models a data-access consent grant. The same shape backs privacy
// consent records and open-banking access consents.
type Consent struct {
	ID          string   `json:"id"     yaml:"id"`
	Status      string   `json:"status" yaml:"status"`
	Type        string   `json:"type"   yaml:"type"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	ExpiresAt   string   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	UpdatedAt   string   `json:"updated_at" yaml:"updated_at"`
}

// CreateConsentRequest is the body for recording a consent grant.
type CreateConsentRequest struct {
	Type        string   `json:"type"        yaml:"type"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	ExpiresAt   string   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// DataSubjectRequest models a privacy request (access, erasure, portability).
type DataSubjectRequest struct {
	ID         string `json:"id"     yaml:"id"`
	Type       string `json:"type"   yaml:"type"`
	Status     string `json:"status" yaml:"status"`
	CustomerID string `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	Details    string `json:"details,omitempty"     yaml:"details,omitempty"`
	CreatedAt  string `json:"created_at" yaml:"created_at"`
	UpdatedAt  string `json:"updated_at" yaml:"updated_at"`
}

// CreateDataSubjectRequest is the body for filing a data subject request.
type CreateDataSubjectRequest struct {
	Type       string `json:"type"        yaml:"type"`
	CustomerID string `json:"customer_id" yaml:"customer_id"`
	Details    string `json:"details,omitempty" yaml:"details,omitempty"`
}

// ComplianceCheck models one regulatory compliance check run.
type ComplianceCheck struct {
	ID        string   `json:"id"     yaml:"id"`
	Type      string   `json:"type"   yaml:"type"`
	Status    string   `json:"status" yaml:"status"`
	Result    string   `json:"result,omitempty"   yaml:"result,omitempty"`
	Findings  []string `json:"findings,omitempty" yaml:"findings,omitempty"`
	CreatedAt string   `json:"created_at" yaml:"created_at"`
	UpdatedAt string   `json:"updated_at" yaml:"updated_at"`
}

// CreateComplianceCheckRequest is the body for scheduling a check.
type CreateComplianceCheckRequest struct {
	Type       string `json:"type"        yaml:"type"`
	EntityID   string `json:"entity_id"   yaml:"entity_id"`
	EntityType string `json:"entity_type" yaml:"entity_type"`
}

// ComplianceRule models a configurable compliance rule.
type ComplianceRule struct {
	ID          string `json:"id"   yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     bool   `json:"enabled"    yaml:"enabled"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"`
}

// CreateComplianceRuleRequest is the body for defining a rule.
type CreateComplianceRuleRequest struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// UpdateComplianceRuleRequest is the body for a partial rule update.
type UpdateComplianceRuleRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"     yaml:"enabled,omitempty"`
}

// ComplianceReport models a generated regulatory report.
type ComplianceReport struct {
	ID        string `json:"id"     yaml:"id"`
	Type      string `json:"type"   yaml:"type"`
	Status    string `json:"status" yaml:"status"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	CreatedAt string `json:"created_at"    yaml:"created_at"`
}

// GenerateComplianceReportRequest is the body for requesting a report.
type GenerateComplianceReportRequest struct {
	Type      string `json:"type"       yaml:"type"`
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date"   yaml:"end_date"`
}

// ComplianceStatus summarizes the compliance standing of one entity.
type ComplianceStatus struct {
	EntityID   string            `json:"entity_id"   yaml:"entity_id"`
	EntityType string            `json:"entity_type" yaml:"entity_type"`
	Status     string            `json:"status"      yaml:"status"`
	Checks     []ComplianceCheck `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// GovernanceBoard models a Shariah or corporate governance board.
type GovernanceBoard struct {
	ID        string `json:"id"   yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// CreateGovernanceBoardRequest is the body for establishing a board.
type CreateGovernanceBoardRequest struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// UpdateGovernanceBoardRequest is the body for a partial board update.
type UpdateGovernanceBoardRequest struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// BoardMember is one seated member of a governance board.
type BoardMember struct {
	ID    string `json:"id"   yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// AddBoardMemberRequest is the body for seating a member.
type AddBoardMemberRequest struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// BoardMeeting models a scheduled or held board meeting.
type BoardMeeting struct {
	ID          string `json:"id"       yaml:"id"`
	BoardID     string `json:"board_id" yaml:"board_id"`
	ScheduledAt string `json:"scheduled_at" yaml:"scheduled_at"`
	Status      string `json:"status"       yaml:"status"`
	Agenda      string `json:"agenda,omitempty"  yaml:"agenda,omitempty"`
	Minutes     string `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// CreateBoardMeetingRequest is the body for scheduling a meeting.
type CreateBoardMeetingRequest struct {
	ScheduledAt string `json:"scheduled_at" yaml:"scheduled_at"`
	Agenda      string `json:"agenda,omitempty" yaml:"agenda,omitempty"`
}

// BoardResolution models a resolution put before a board.
type BoardResolution struct {
	ID        string `json:"id"       yaml:"id"`
	BoardID   string `json:"board_id" yaml:"board_id"`
	Title     string `json:"title"    yaml:"title"`
	Status    string `json:"status"   yaml:"status"`
	Text      string `json:"text,omitempty"      yaml:"text,omitempty"`
	PassedAt  string `json:"passed_at,omitempty" yaml:"passed_at,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// CreateBoardResolutionRequest is the body for tabling a resolution.
type CreateBoardResolutionRequest struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text"  yaml:"text"`
}

// ReconciliationJob models a matching run between two ledgers.
type ReconciliationJob struct {
	ID             string `json:"id"     yaml:"id"`
	Name           string `json:"name"   yaml:"name"`
	Status         string `json:"status" yaml:"status"`
	MatchedCount   int    `json:"matched_count"   yaml:"matched_count"`
	UnmatchedCount int    `json:"unmatched_count" yaml:"unmatched_count"`
	ExceptionCount int    `json:"exception_count" yaml:"exception_count"`
	CreatedAt      string `json:"created_at" yaml:"created_at"`
	UpdatedAt      string `json:"updated_at" yaml:"updated_at"`
}

// CreateReconciliationJobRequest is the body for defining a job.
type CreateReconciliationJobRequest struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ReconciliationException is one unmatched or disputed item from a job.
type ReconciliationException struct {
	ID               string   `json:"id"     yaml:"id"`
	JobID            string   `json:"job_id" yaml:"job_id"`
	Type             string   `json:"type"   yaml:"type"`
	Status           string   `json:"status" yaml:"status"`
	Description      string   `json:"description" yaml:"description"`
	AmountDifference *float64 `json:"amount_difference,omitempty" yaml:"amount_difference,omitempty"`
	CreatedAt        string   `json:"created_at" yaml:"created_at"`
}

// MatchResult reports a manual match between two entries.
type MatchResult struct {
	Matched  bool                   `json:"matched"   yaml:"matched"`
	SourceID string                 `json:"source_id" yaml:"source_id"`
	TargetID string                 `json:"target_id" yaml:"target_id"`
	Details  map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// RoutingRule decides where a payment or message is routed.
type RoutingRule struct {
	ID          string                 `json:"id"       yaml:"id"`
	Name        string                 `json:"name"     yaml:"name"`
	Priority    int                    `json:"priority" yaml:"priority"`
	Conditions  map[string]interface{} `json:"conditions"  yaml:"conditions"`
	Destination string                 `json:"destination" yaml:"destination"`
	Enabled     bool                   `json:"enabled"     yaml:"enabled"`
	CreatedAt   string                 `json:"created_at"  yaml:"created_at"`
	UpdatedAt   string                 `json:"updated_at"  yaml:"updated_at"`
}

// CreateRoutingRuleRequest is the body for defining a routing rule.
type CreateRoutingRuleRequest struct {
	Name        string                 `json:"name"        yaml:"name"`
	Priority    int                    `json:"priority"    yaml:"priority"`
	Conditions  map[string]interface{} `json:"conditions"  yaml:"conditions"`
	Destination string                 `json:"destination" yaml:"destination"`
}

// UpdateRoutingRuleRequest is the body for a partial routing rule update.
type UpdateRoutingRuleRequest struct {
	Name        *string                `json:"name,omitempty"        yaml:"name,omitempty"`
	Priority    *int                   `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Conditions  map[string]interface{} `json:"conditions,omitempty"  yaml:"conditions,omitempty"`
	Destination *string                `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// RoutingDecision is the outcome of evaluating the rule set for a payload.
type RoutingDecision struct {
	RuleID      string                 `json:"rule_id,omitempty" yaml:"rule_id,omitempty"`
	Destination string                 `json:"destination"       yaml:"destination"`
	Matched     bool                   `json:"matched"           yaml:"matched"`
	Details     map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Message models an ISO 20022 financial message.
type Message struct {
	ID        string                 `json:"id"        yaml:"id"`
	Type      string                 `json:"type"      yaml:"type"`
	Direction string                 `json:"direction" yaml:"direction"`
	Status    string                 `json:"status"    yaml:"status"`
	Content   map[string]interface{} `json:"content"   yaml:"content"`
	CreatedAt string                 `json:"created_at" yaml:"created_at"`
	UpdatedAt string                 `json:"updated_at" yaml:"updated_at"`
}

// CreateMessageRequest is the body for submitting a message.
type CreateMessageRequest struct {
	Type      string                 `json:"type"      yaml:"type"`
	Direction string                 `json:"direction" yaml:"direction"`
	Content   map[string]interface{} `json:"content"   yaml:"content"`
}

// ParsedMessage is the structured result of parsing a raw message.
type ParsedMessage struct {
	Type   string                 `json:"type"  yaml:"type"`
	Valid  bool                   `json:"valid" yaml:"valid"`
	Fields map[string]interface{} `json:"fields,omitempty" yaml:"fields,omitempty"`
	Errors []string               `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// MessageStatus reports the delivery state of one message.
type MessageStatus struct {
	MessageID string `json:"message_id" yaml:"message_id"`
	Status    string `json:"status"     yaml:"status"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// ClearingBatch groups transactions for joint clearing and settlement.
type ClearingBatch struct {
	ID                string  `json:"id"     yaml:"id"`
	Status            string  `json:"status" yaml:"status"`
	TotalTransactions int     `json:"total_transactions" yaml:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"       yaml:"total_amount"`
	Currency          string  `json:"currency"   yaml:"currency"`
	CreatedAt         string  `json:"created_at" yaml:"created_at"`
	UpdatedAt         string  `json:"updated_at" yaml:"updated_at"`
}

// CreateClearingBatchRequest is the body for opening a batch.
type CreateClearingBatchRequest struct {
	Currency    string `json:"currency" yaml:"currency"`
	ScheduledAt string `json:"scheduled_at,omitempty" yaml:"scheduled_at,omitempty"`
}

// ClearingTransaction is one transaction inside a clearing batch.
type ClearingTransaction struct {
	ID        string  `json:"id"       yaml:"id"`
	BatchID   string  `json:"batch_id" yaml:"batch_id"`
	Status    string  `json:"status"   yaml:"status"`
	Amount    float64 `json:"amount"   yaml:"amount"`
	Currency  string  `json:"currency" yaml:"currency"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
}

// NettingResult holds the net position per participant after netting.
type NettingResult struct {
	Currency     string             `json:"currency"      yaml:"currency"`
	NetPositions map[string]float64 `json:"net_positions" yaml:"net_positions"`
}

// SettlementPosition is one participant's obligation in a batch.
type SettlementPosition struct {
	ParticipantID string  `json:"participant_id" yaml:"participant_id"`
	Amount        float64 `json:"amount"    yaml:"amount"`
	Currency      string  `json:"currency"  yaml:"currency"`
	Direction     string  `json:"direction" yaml:"direction"`
}

// Portfolio models a managed investment portfolio.
type Portfolio struct {
	ID         string  `json:"id"   yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Type       string  `json:"type" yaml:"type"`
	TotalValue float64 `json:"total_value" yaml:"total_value"`
	Currency   string  `json:"currency"    yaml:"currency"`
	CreatedAt  string  `json:"created_at"  yaml:"created_at"`
	UpdatedAt  string  `json:"updated_at"  yaml:"updated_at"`
}

// CreatePortfolioRequest is the body for opening a portfolio.
type CreatePortfolioRequest struct {
	Name     string `json:"name"     yaml:"name"`
	Type     string `json:"type"     yaml:"type"`
	Currency string `json:"currency" yaml:"currency"`
}

// UpdatePortfolioRequest is the body for a partial portfolio update.
type UpdatePortfolioRequest struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Holding is one asset position inside a portfolio.
type Holding struct {
	ID          string  `json:"id"           yaml:"id"`
	PortfolioID string  `json:"portfolio_id" yaml:"portfolio_id"`
	Asset       string  `json:"asset"    yaml:"asset"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Value       float64 `json:"value"    yaml:"value"`
	Currency    string  `json:"currency" yaml:"currency"`
}

// AddHoldingRequest is the body for adding a holding.
type AddHoldingRequest struct {
	Asset    string  `json:"asset"    yaml:"asset"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Value    float64 `json:"value"    yaml:"value"`
	Currency string  `json:"currency" yaml:"currency"`
}

// PortfolioPerformance reports returns over a period.
type PortfolioPerformance struct {
	PortfolioID string                 `json:"portfolio_id" yaml:"portfolio_id"`
	Return      float64                `json:"return"     yaml:"return"`
	StartDate   string                 `json:"start_date" yaml:"start_date"`
	EndDate     string                 `json:"end_date"   yaml:"end_date"`
	Details     map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// InvestmentMandate constrains what a portfolio may hold.
type InvestmentMandate struct {
	PortfolioID  string   `json:"portfolio_id" yaml:"portfolio_id"`
	Restrictions []string `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	Benchmark    string   `json:"benchmark,omitempty"    yaml:"benchmark,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// MandateCompliance reports whether a portfolio honours its mandate.
type MandateCompliance struct {
	PortfolioID string   `json:"portfolio_id" yaml:"portfolio_id"`
	Compliant   bool     `json:"compliant"    yaml:"compliant"`
	Violations  []string `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Report models a generated business report.
type Report struct {
	ID        string `json:"id"     yaml:"id"`
	Name      string `json:"name"   yaml:"name"`
	Type      string `json:"type"   yaml:"type"`
	Format    string `json:"format" yaml:"format"`
	Status    string `json:"status" yaml:"status"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// GenerateReportRequest is the body for requesting a report.
type GenerateReportRequest struct {
	Name       string                 `json:"name"   yaml:"name"`
	Type       string                 `json:"type"   yaml:"type"`
	Format     string                 `json:"format" yaml:"format"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// ReportTemplate describes a reusable report definition.
type ReportTemplate struct {
	ID          string `json:"id"   yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Dashboard describes a configured analytics dashboard.
type Dashboard struct {
	ID          string `json:"id"   yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DashboardData carries the rendered widget data for one dashboard.
type DashboardData struct {
	DashboardID string                 `json:"dashboard_id" yaml:"dashboard_id"`
	Data        map[string]interface{} `json:"data"         yaml:"data"`
}

// ScheduledReport is a report generated on a recurring schedule.
type ScheduledReport struct {
	ID        string `json:"id"       yaml:"id"`
	Name      string `json:"name"     yaml:"name"`
	Type      string `json:"type"     yaml:"type"`
	Schedule  string `json:"schedule" yaml:"schedule"`
	Format    string `json:"format"   yaml:"format"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// CreateScheduledReportRequest is the body for scheduling a report.
type CreateScheduledReportRequest struct {
	Name     string `json:"name"     yaml:"name"`
	Type     string `json:"type"     yaml:"type"`
	Schedule string `json:"schedule" yaml:"schedule"`
	Format   string `json:"format"   yaml:"format"`
}

// AnalyticsReport is the free-form result of an analytics view. The shape
// varies per view, so it decodes as-is.
type AnalyticsReport map[string]interface{}

// CustomQueryRequest is the body for running a named analytics view with
// arbitrary filters.
type CustomQueryRequest struct {
	ViewName string                 `json:"view_name" yaml:"view_name"`
	Filters  map[string]interface{} `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// LegalDocument models a versioned legal document.
type LegalDocument struct {
	ID        string `json:"id"      yaml:"id"`
	Name      string `json:"name"    yaml:"name"`
	Type      string `json:"type"    yaml:"type"`
	Version   string `json:"version" yaml:"version"`
	Status    string `json:"status"  yaml:"status"`
	Content   string `json:"content,omitempty" yaml:"content,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// CreateLegalDocumentRequest is the body for drafting a document.
type CreateLegalDocumentRequest struct {
	Name    string `json:"name"    yaml:"name"`
	Type    string `json:"type"    yaml:"type"`
	Content string `json:"content" yaml:"content"`
}

// UpdateLegalDocumentRequest is the body for a partial document update.
type UpdateLegalDocumentRequest struct {
	Name    *string `json:"name,omitempty"    yaml:"name,omitempty"`
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
	Status  *string `json:"status,omitempty"  yaml:"status,omitempty"`
}

// SignLegalDocumentRequest is the body for recording a signature.
type SignLegalDocumentRequest struct {
	SignerID string `json:"signer_id" yaml:"signer_id"`
	Method   string `json:"method,omitempty" yaml:"method,omitempty"`
}

// Signer is one party invited to sign a document.
type Signer struct {
	ID       string `json:"id"     yaml:"id"`
	Name     string `json:"name"   yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	Email    string `json:"email,omitempty"     yaml:"email,omitempty"`
	SignedAt string `json:"signed_at,omitempty" yaml:"signed_at,omitempty"`
}

// LegalTemplate is a reusable document template.
type LegalTemplate struct {
	ID          string `json:"id"   yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// UnderwritingApplication models a financing application under review.
type UnderwritingApplication struct {
	ID          string  `json:"id"          yaml:"id"`
	CustomerID  string  `json:"customer_id" yaml:"customer_id"`
	Status      string  `json:"status"   yaml:"status"`
	Amount      float64 `json:"amount"   yaml:"amount"`
	Currency    string  `json:"currency" yaml:"currency"`
	ProductType string  `json:"product_type,omitempty" yaml:"product_type,omitempty"`
	CreatedAt   string  `json:"created_at" yaml:"created_at"`
	UpdatedAt   string  `json:"updated_at" yaml:"updated_at"`
}

// CreateUnderwritingApplicationRequest is the body for a new application.
type CreateUnderwritingApplicationRequest struct {
	CustomerID  string  `json:"customer_id" yaml:"customer_id"`
	Amount      float64 `json:"amount"      yaml:"amount"`
	Currency    string  `json:"currency"    yaml:"currency"`
	ProductType string  `json:"product_type,omitempty" yaml:"product_type,omitempty"`
}

// UnderwritingDecision records the outcome of underwriting an application.
type UnderwritingDecision struct {
	ID            string   `json:"id"             yaml:"id"`
	ApplicationID string   `json:"application_id" yaml:"application_id"`
	Decision      string   `json:"decision"       yaml:"decision"`
	RiskScore     float64  `json:"risk_score"     yaml:"risk_score"`
	Conditions    []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	CreatedAt     string   `json:"created_at" yaml:"created_at"`
}

// DecideApplicationRequest is the body for recording a decision.
type DecideApplicationRequest struct {
	Decision   string   `json:"decision" yaml:"decision"`
	Conditions []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Reason     string   `json:"reason,omitempty"     yaml:"reason,omitempty"`
}

// RiskScore is the computed risk score for an application.
type RiskScore struct {
	ApplicationID string   `json:"application_id" yaml:"application_id"`
	Score         float64  `json:"score"          yaml:"score"`
	Grade         string   `json:"grade,omitempty"   yaml:"grade,omitempty"`
	Factors       []string `json:"factors,omitempty" yaml:"factors,omitempty"`
}

// CreditReport is a bureau credit report for a customer.
type CreditReport struct {
	CustomerID string                 `json:"customer_id" yaml:"customer_id"`
	Score      int                    `json:"score"       yaml:"score"`
	Bureau     string                 `json:"bureau,omitempty"  yaml:"bureau,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Notification is one outbound notification on any channel.
type Notification struct {
	ID        string `json:"id"        yaml:"id"`
	Type      string `json:"type"      yaml:"type"`
	Channel   string `json:"channel"   yaml:"channel"`
	Recipient string `json:"recipient" yaml:"recipient"`
	Subject   string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Body      string `json:"body"   yaml:"body"`
	Status    string `json:"status" yaml:"status"`
	SentAt    string `json:"sent_at,omitempty" yaml:"sent_at,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// SendNotificationRequest is the body for sending on an explicit channel.
type SendNotificationRequest struct {
	Channel   string `json:"channel"   yaml:"channel"`
	Recipient string `json:"recipient" yaml:"recipient"`
	Subject   string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Body      string `json:"body" yaml:"body"`
}

// SendEmailRequest is the body for the email shortcut.
type SendEmailRequest struct {
	To      string `json:"to"      yaml:"to"`
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body"    yaml:"body"`
}

// SendSMSRequest is the body for the SMS shortcut.
type SendSMSRequest struct {
	To   string `json:"to"   yaml:"to"`
	Body string `json:"body" yaml:"body"`
}

// SendPushRequest is the body for the push notification shortcut.
type SendPushRequest struct {
	DeviceToken string `json:"device_token" yaml:"device_token"`
	Title       string `json:"title"        yaml:"title"`
	Body        string `json:"body"         yaml:"body"`
}

// NotificationTemplate is a reusable message template.
type NotificationTemplate struct {
	ID      string `json:"id"      yaml:"id"`
	Name    string `json:"name"    yaml:"name"`
	Channel string `json:"channel" yaml:"channel"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Body    string `json:"body" yaml:"body"`
}

// SendFromTemplateRequest is the body for sending a templated notification.
type SendFromTemplateRequest struct {
	Recipient string                 `json:"recipient" yaml:"recipient"`
	Variables map[string]interface{} `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// NotificationPreferences holds a user's per-channel opt-ins.
type NotificationPreferences struct {
	UserID    string          `json:"user_id"  yaml:"user_id"`
	Channels  map[string]bool `json:"channels" yaml:"channels"`
	UpdatedAt string          `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

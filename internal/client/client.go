// Package client provides the concrete iof.Client implementation with one
// sub-client per platform rail.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/iofinance-io/iof-client/internal/auth"
	"github.com/iofinance-io/iof-client/internal/constants"
	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// Client implements iof.Client over the shared HTTP transport.
type Client struct {
	http *internalhttp.Client

	contracts     *ContractsClient
	jurisdictions *JurisdictionsClient
	kyc           *KYCClient
	aml           *AMLClient
	developer     *DeveloperClient
	partners      *PartnersClient
	disputes      *DisputesClient
	zakat         *ZakatClient
	treasury      *TreasuryClient
	risk          *RiskClient
	webhooks      *WebhooksClient
	events        *EventsClient
	search        *SearchClient
	observability *ObservabilityClient

	cases          *CasesClient
	consent        *ConsentClient
	accessConsents *AccessConsentsClient
	compliance     *ComplianceClient
	governance     *GovernanceClient
	reconciliation *ReconciliationClient
	routing        *RoutingClient
	messages       *MessagesClient
	clearing       *ClearingClient
	portfolios     *PortfoliosClient
	reporting      *ReportingClient
	analytics      *AnalyticsClient
	legal          *LegalClient
	underwriting   *UnderwritingClient
	notifications  *NotificationsClient
}

// New validates the configuration and builds a client.
func New(config *iof.Config) (*Client, error) {
	if config == nil {
		return nil, iof.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, iof.ErrBaseURLRequired
	}

	credentials, err := auth.FromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("building credentials: %w", err)
	}

	opts := []internalhttp.Option{}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.TenantID != "" {
		opts = append(opts, internalhttp.WithTenantID(config.TenantID))
	}

	if config.Timeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax, waitMin, waitMax := retrySettings(config)
		opts = append(opts, internalhttp.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	if config.Interceptors != nil {
		opts = append(opts, internalhttp.WithInterceptors(config.Interceptors))
	}

	transport := internalhttp.NewClient(normalizeBaseURL(config.BaseURL), credentials, opts...)

	c := &Client{http: transport}
	c.contracts = &ContractsClient{http: transport}
	c.jurisdictions = &JurisdictionsClient{http: transport}
	c.kyc = &KYCClient{http: transport}
	c.aml = &AMLClient{http: transport}
	c.developer = &DeveloperClient{http: transport}
	c.partners = &PartnersClient{http: transport}
	c.disputes = &DisputesClient{http: transport}
	c.zakat = &ZakatClient{http: transport}
	c.treasury = &TreasuryClient{http: transport}
	c.risk = &RiskClient{http: transport}
	c.webhooks = &WebhooksClient{http: transport}
	c.events = &EventsClient{http: transport}
	c.search = &SearchClient{http: transport}
	c.observability = &ObservabilityClient{http: transport}
	c.cases = &CasesClient{http: transport}
	c.consent = &ConsentClient{http: transport}
	c.accessConsents = &AccessConsentsClient{http: transport}
	c.compliance = &ComplianceClient{http: transport}
	c.governance = &GovernanceClient{http: transport}
	c.reconciliation = &ReconciliationClient{http: transport}
	c.routing = &RoutingClient{http: transport}
	c.messages = &MessagesClient{http: transport}
	c.clearing = &ClearingClient{http: transport}
	c.portfolios = &PortfoliosClient{http: transport}
	c.reporting = &ReportingClient{http: transport}
	c.analytics = &AnalyticsClient{http: transport}
	c.legal = &LegalClient{http: transport}
	c.underwriting = &UnderwritingClient{http: transport}
	c.notifications = &NotificationsClient{http: transport}

	return c, nil
}

func retrySettings(config *iof.Config) (int, time.Duration, time.Duration) {
	retryMax := constants.DefaultRetryMax
	if config.RetryMax > 0 {
		retryMax = config.RetryMax
	}

	waitMin := constants.DefaultRetryWaitMin
	if config.RetryWaitMin > 0 {
		waitMin = config.RetryWaitMin
	}

	waitMax := constants.DefaultRetryWaitMax
	if config.RetryWaitMax > 0 {
		waitMax = config.RetryWaitMax
	}

	return retryMax, waitMin, waitMax
}

// normalizeBaseURL trims a trailing slash and defaults to https when no
// scheme is given.
func normalizeBaseURL(baseURL string) string {
	normalized := strings.TrimSuffix(baseURL, "/")
	if !strings.Contains(normalized, "://") {
		normalized = "https://" + normalized
	}

	return normalized
}

func (c *Client) Contracts() iof.ContractsClient         { return c.contracts }
func (c *Client) Jurisdictions() iof.JurisdictionsClient { return c.jurisdictions }
func (c *Client) KYC() iof.KYCClient                     { return c.kyc }
func (c *Client) AML() iof.AMLClient                     { return c.aml }
func (c *Client) Developer() iof.DeveloperClient         { return c.developer }
func (c *Client) Partners() iof.PartnersClient           { return c.partners }
func (c *Client) Disputes() iof.DisputesClient           { return c.disputes }
func (c *Client) Zakat() iof.ZakatClient                 { return c.zakat }
func (c *Client) Treasury() iof.TreasuryClient           { return c.treasury }
func (c *Client) Risk() iof.RiskClient                   { return c.risk }
func (c *Client) Webhooks() iof.WebhooksClient           { return c.webhooks }
func (c *Client) Events() iof.EventsClient               { return c.events }
func (c *Client) Search() iof.SearchClient               { return c.search }
func (c *Client) Observability() iof.ObservabilityClient { return c.observability }

func (c *Client) Cases() iof.CasesClient                   { return c.cases }
func (c *Client) Consent() iof.ConsentClient               { return c.consent }
func (c *Client) AccessConsents() iof.AccessConsentsClient { return c.accessConsents }
func (c *Client) Compliance() iof.ComplianceClient         { return c.compliance }
func (c *Client) Governance() iof.GovernanceClient         { return c.governance }
func (c *Client) Reconciliation() iof.ReconciliationClient { return c.reconciliation }
func (c *Client) Routing() iof.RoutingClient               { return c.routing }
func (c *Client) Messages() iof.MessagesClient             { return c.messages }
func (c *Client) Clearing() iof.ClearingClient             { return c.clearing }
func (c *Client) Portfolios() iof.PortfoliosClient         { return c.portfolios }
func (c *Client) Reporting() iof.ReportingClient           { return c.reporting }
func (c *Client) Analytics() iof.AnalyticsClient           { return c.analytics }
func (c *Client) Legal() iof.LegalClient                   { return c.legal }
func (c *Client) Underwriting() iof.UnderwritingClient     { return c.underwriting }
func (c *Client) Notifications() iof.NotificationsClient   { return c.notifications }

package iof

import (
	"context"
	"time"
)

// Client is the top-level interface for the IOF API. Each accessor returns
// the sub-client for one resource group.
type Client interface {
	Contracts() ContractsClient
	Jurisdictions() JurisdictionsClient
	KYC() KYCClient
	AML() AMLClient
	Developer() DeveloperClient
	Partners() PartnersClient
	Disputes() DisputesClient
	Zakat() ZakatClient
	Treasury() TreasuryClient
	Risk() RiskClient
	Webhooks() WebhooksClient
	Events() EventsClient
	Search() SearchClient
	Observability() ObservabilityClient
	Cases() CasesClient
	Consent() ConsentClient
	AccessConsents() AccessConsentsClient
	Compliance() ComplianceClient
	Governance() GovernanceClient
	Reconciliation() ReconciliationClient
	Routing() RoutingClient
	Messages() MessagesClient
	Clearing() ClearingClient
	Portfolios() PortfoliosClient
	Reporting() ReportingClient
	Analytics() AnalyticsClient
	Legal() LegalClient
	Underwriting() UnderwritingClient
	Notifications() NotificationsClient
}

// Config holds client configuration. It is copied at construction and never
// mutated afterwards.
type Config struct {
	// BaseURL of the IOF API. Required. A missing scheme defaults to https
	// and a trailing slash is trimmed.
	BaseURL string

	// APIKey authenticates via the X-Api-Key header. Mutually exclusive
	// with AccessToken.
	APIKey string

	// AccessToken authenticates via an Authorization bearer header.
	// Mutually exclusive with APIKey.
	AccessToken string

	// TenantID, when set, is sent as X-Tenant-Id on every request.
	TenantID string

	// Timeout for a single HTTP request. Defaults to 30s.
	Timeout time.Duration

	// RetryMax is the number of retries after the initial attempt.
	// Defaults to 3.
	RetryMax int

	// RetryWaitMin is the initial backoff. Defaults to 1s.
	RetryWaitMin time.Duration

	// RetryWaitMax caps the backoff. Defaults to 30s.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives client logs. Optional.
	Logger Logger

	// Debug enables request/response logging.
	Debug bool

	// Interceptors, when set, run on every request and response the
	// transport makes.
	Interceptors *InterceptorChain
}

// Logger is the leveled logging interface the client emits to.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// ContractsClient manages financing contracts.
type ContractsClient interface {
	List(ctx context.Context, opts *ContractListOptions) (*ListResponse[Contract], error)
	Get(ctx context.Context, contractID string) (*Contract, error)
	Create(ctx context.Context, req *CreateContractRequest) (*Contract, error)
	Update(ctx context.Context, contractID string, req *UpdateContractRequest) (*Contract, error)
	Execute(ctx context.Context, contractID string) (*Contract, error)
	Terminate(ctx context.Context, contractID, reason string) (*Contract, error)
	Validate(ctx context.Context, req *CreateContractRequest) (*ValidationResult, error)
	GetHistory(ctx context.Context, contractID string, opts *ListOptions) (*ListResponse[ContractEvent], error)
	GetDocuments(ctx context.Context, contractID string) ([]Document, error)
}

// JurisdictionsClient exposes jurisdiction reference data.
type JurisdictionsClient interface {
	List(ctx context.Context) ([]Jurisdiction, error)
	Get(ctx context.Context, jurisdictionID string) (*Jurisdiction, error)
	GetConfig(ctx context.Context, jurisdictionID string) (*JurisdictionConfig, error)
	GetRules(ctx context.Context, jurisdictionID string) ([]JurisdictionRule, error)
}

// KYCClient manages customer identity records.
type KYCClient interface {
	ListCustomers(ctx context.Context, opts *CustomerListOptions) (*ListResponse[Customer], error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req *UpdateCustomerRequest) (*Customer, error)
	VerifyCustomer(ctx context.Context, customerID string) (*Customer, error)
	ScreenCustomer(ctx context.Context, customerID string) (*ScreeningResult, error)
	GetCustomerDocuments(ctx context.Context, customerID string) ([]Document, error)
}

// AMLClient manages monitoring rules, screenings, alerts and cases.
type AMLClient interface {
	ListRules(ctx context.Context, opts *EnabledListOptions) (*ListResponse[AMLRule], error)
	GetRule(ctx context.Context, ruleID string) (*AMLRule, error)
	CreateRule(ctx context.Context, req *CreateAMLRuleRequest) (*AMLRule, error)
	UpdateRule(ctx context.Context, ruleID string, req *UpdateAMLRuleRequest) (*AMLRule, error)
	DeleteRule(ctx context.Context, ruleID string) error

	ListScreenings(ctx context.Context, opts *StatusListOptions) (*ListResponse[AMLScreening], error)
	GetScreening(ctx context.Context, screeningID string) (*AMLScreening, error)
	CreateScreening(ctx context.Context, req *CreateAMLScreeningRequest) (*AMLScreening, error)

	ListAlerts(ctx context.Context, opts *AlertListOptions) (*ListResponse[AMLAlert], error)
	GetAlert(ctx context.Context, alertID string) (*AMLAlert, error)
	CreateAlert(ctx context.Context, req *CreateAMLAlertRequest) (*AMLAlert, error)
	UpdateAlert(ctx context.Context, alertID string, req *UpdateAMLAlertRequest) (*AMLAlert, error)

	ListCases(ctx context.Context, opts *CaseListOptions) (*ListResponse[AMLCase], error)
	GetCase(ctx context.Context, caseID string) (*AMLCase, error)
	CreateCase(ctx context.Context, req *CreateAMLCaseRequest) (*AMLCase, error)
	UpdateCase(ctx context.Context, caseID string, req *UpdateAMLCaseRequest) (*AMLCase, error)
	CloseCase(ctx context.Context, caseID, resolution string) (*AMLCase, error)
}

// DeveloperClient manages client apps, API keys and developer webhooks.
type DeveloperClient interface {
	ListClients(ctx context.Context, opts *ListOptions) (*ListResponse[OAuthClient], error)
	GetClient(ctx context.Context, clientID string) (*OAuthClient, error)
	CreateClient(ctx context.Context, req *CreateOAuthClientRequest) (*OAuthClient, error)
	UpdateClient(ctx context.Context, clientID string, req *UpdateOAuthClientRequest) (*OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string) error
	RotateClientSecret(ctx context.Context, clientID string) (*OAuthClient, error)

	ListAPIKeys(ctx context.Context, opts *ListOptions) (*ListResponse[APIKey], error)
	GetAPIKey(ctx context.Context, keyID string) (*APIKey, error)
	CreateAPIKey(ctx context.Context, req *CreateAPIKeyRequest) (*APIKey, error)
	DeleteAPIKey(ctx context.Context, keyID string) error
	RotateAPIKey(ctx context.Context, keyID string) (*APIKey, error)

	ListWebhooks(ctx context.Context, opts *ListOptions) (*ListResponse[Webhook], error)
	CreateWebhook(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error)

	GetUsageMetrics(ctx context.Context, opts *DateRangeOptions) (*UsageMetrics, error)
}

// PartnersClient manages distribution partners and programs.
type PartnersClient interface {
	List(ctx context.Context, opts *PartnerListOptions) (*ListResponse[Partner], error)
	Get(ctx context.Context, partnerID string) (*Partner, error)
	Create(ctx context.Context, req *CreatePartnerRequest) (*Partner, error)
	Update(ctx context.Context, partnerID string, req *UpdatePartnerRequest) (*Partner, error)

	ListPrograms(ctx context.Context, opts *StatusListOptions) (*ListResponse[Program], error)
	GetProgram(ctx context.Context, programID string) (*Program, error)
	CreateProgram(ctx context.Context, req *CreateProgramRequest) (*Program, error)
	UpdateProgram(ctx context.Context, programID string, req *UpdateProgramRequest) (*Program, error)

	GetRevenueReport(ctx context.Context, partnerID string, opts *DateRangeOptions) (*RevenueReport, error)
	GetCommissionReport(ctx context.Context, partnerID string) (*CommissionReport, error)
}

// DisputesClient manages disputes and collection cases.
type DisputesClient interface {
	List(ctx context.Context, opts *DisputeListOptions) (*ListResponse[Dispute], error)
	Get(ctx context.Context, disputeID string) (*Dispute, error)
	Create(ctx context.Context, req *CreateDisputeRequest) (*Dispute, error)
	Update(ctx context.Context, disputeID string, req *UpdateDisputeRequest) (*Dispute, error)
	Resolve(ctx context.Context, disputeID, resolution string) (*Dispute, error)
	Escalate(ctx context.Context, disputeID, reason string) (*Dispute, error)

	ListCollections(ctx context.Context, opts *StatusListOptions) (*ListResponse[CollectionCase], error)
	GetCollection(ctx context.Context, caseID string) (*CollectionCase, error)
	CreateCollection(ctx context.Context, req *CreateCollectionCaseRequest) (*CollectionCase, error)
}

// ZakatClient manages zakat calculations, payments and purification.
type ZakatClient interface {
	ListCalculations(ctx context.Context, opts *ZakatCalculationListOptions) (*ListResponse[ZakatCalculation], error)
	GetCalculation(ctx context.Context, calculationID string) (*ZakatCalculation, error)
	CreateCalculation(ctx context.Context, req *CreateZakatCalculationRequest) (*ZakatCalculation, error)
	Calculate(ctx context.Context, accountID string, year int) (*ZakatCalculation, error)

	ListPayments(ctx context.Context, opts *StatusListOptions) (*ListResponse[ZakatPayment], error)
	GetPayment(ctx context.Context, paymentID string) (*ZakatPayment, error)
	CreatePayment(ctx context.Context, req *CreateZakatPaymentRequest) (*ZakatPayment, error)

	CalculatePurification(ctx context.Context, accountID string, year int) (*PurificationResult, error)
	GetNisabRates(ctx context.Context, currency string) (*NisabRates, error)
}

// TreasuryClient exposes positions, liquidity and transfers.
type TreasuryClient interface {
	ListPositions(ctx context.Context, currency string, opts *ListOptions) (*ListResponse[TreasuryPosition], error)
	GetPosition(ctx context.Context, positionID string) (*TreasuryPosition, error)
	GetPositionByAccount(ctx context.Context, accountID, currency string) (*TreasuryPosition, error)

	GetLiquidityForecast(ctx context.Context, accountID string, days int) (*LiquidityForecast, error)
	GetCashFlow(ctx context.Context, accountID string, opts *DateRangeOptions) (*CashFlowReport, error)

	ListTransfers(ctx context.Context, opts *StatusListOptions) (*ListResponse[TreasuryTransfer], error)
	CreateTransfer(ctx context.Context, req *CreateTreasuryTransferRequest) (*TreasuryTransfer, error)
}

// RiskClient manages limits, exposure and assessments.
type RiskClient interface {
	ListLimits(ctx context.Context, opts *RiskLimitListOptions) (*ListResponse[RiskLimit], error)
	GetLimit(ctx context.Context, limitID string) (*RiskLimit, error)
	CreateLimit(ctx context.Context, req *CreateRiskLimitRequest) (*RiskLimit, error)
	UpdateLimit(ctx context.Context, limitID string, req *UpdateRiskLimitRequest) (*RiskLimit, error)
	CheckLimit(ctx context.Context, limitID string, amount float64) (*LimitCheckResult, error)

	GetExposureSummary(ctx context.Context, entityID, currency string) (*ExposureSummary, error)
	GetConcentrationRisk(ctx context.Context) (*ConcentrationRisk, error)

	ListAssessments(ctx context.Context, opts *ListOptions) (*ListResponse[RiskAssessment], error)
	CreateAssessment(ctx context.Context, req *CreateRiskAssessmentRequest) (*RiskAssessment, error)
}

// WebhooksClient manages webhook endpoints and their deliveries.
type WebhooksClient interface {
	List(ctx context.Context, opts *EnabledListOptions) (*ListResponse[Webhook], error)
	Get(ctx context.Context, webhookID string) (*Webhook, error)
	Create(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error)
	Update(ctx context.Context, webhookID string, req *UpdateWebhookRequest) (*Webhook, error)
	Delete(ctx context.Context, webhookID string) error
	Enable(ctx context.Context, webhookID string) (*Webhook, error)
	Disable(ctx context.Context, webhookID string) (*Webhook, error)
	Test(ctx context.Context, webhookID string) (*WebhookTestResult, error)

	ListDeliveries(ctx context.Context, webhookID string, opts *StatusListOptions) (*ListResponse[WebhookDelivery], error)
	GetDelivery(ctx context.Context, webhookID, deliveryID string) (*WebhookDelivery, error)
	RetryDelivery(ctx context.Context, webhookID, deliveryID string) (*WebhookDelivery, error)

	ListEventTypes(ctx context.Context) ([]EventType, error)
}

// EventsClient exposes the event log and subscriptions.
type EventsClient interface {
	List(ctx context.Context, opts *EventListOptions) (*ListResponse[Event], error)
	Get(ctx context.Context, eventID string) (*Event, error)
	Publish(ctx context.Context, req *PublishEventRequest) (*Event, error)

	ListEventTypes(ctx context.Context) ([]EventType, error)
	GetEventSchema(ctx context.Context, eventType string) (*EventSchema, error)

	ListSubscriptions(ctx context.Context, opts *ListOptions) (*ListResponse[EventSubscription], error)
	CreateSubscription(ctx context.Context, req *CreateEventSubscriptionRequest) (*EventSubscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

// SearchClient queries the platform search indexes.
type SearchClient interface {
	Search(ctx context.Context, opts *SearchOptions) (*SearchResult, error)
	SearchContracts(ctx context.Context, query string, limit int) (*SearchResult, error)
	SearchParties(ctx context.Context, query string, limit int) (*SearchResult, error)
	SearchCases(ctx context.Context, query string, limit int) (*SearchResult, error)
	Suggest(ctx context.Context, query, index string) ([]string, error)
	ListIndexes(ctx context.Context) ([]string, error)
	GetIndexStats(ctx context.Context, index string) (*IndexStats, error)
	Reindex(ctx context.Context, index string) (*ReindexResult, error)
}

// ObservabilityClient exposes SLOs, audit logs, compliance monitoring and
// exports.
type ObservabilityClient interface {
	ListSLOs(ctx context.Context, opts *StatusListOptions) (*ListResponse[SLOMetric], error)
	GetSLO(ctx context.Context, sloID string) (*SLOMetric, error)
	GetSLOSummary(ctx context.Context) (*SLOSummary, error)

	ListAuditLogs(ctx context.Context, opts *AuditLogListOptions) (*ListResponse[AuditLog], error)
	GetAuditLog(ctx context.Context, logID string) (*AuditLog, error)
	ExportAuditLogs(ctx context.Context, opts *DateRangeOptions, format string) (*DataExport, error)

	ListMonitoringRecords(ctx context.Context, opts *MonitoringListOptions) (*ListResponse[ShariahMonitoringRecord], error)
	GetMonitoringRecord(ctx context.Context, recordID string) (*ShariahMonitoringRecord, error)
	RunCheck(ctx context.Context, contractID, checkType string) (*ShariahMonitoringRecord, error)

	ListExports(ctx context.Context, opts *StatusListOptions) (*ListResponse[DataExport], error)
	GetExport(ctx context.Context, exportID string) (*DataExport, error)
	CreateExport(ctx context.Context, req *CreateDataExportRequest) (*DataExport, error)
	DownloadExport(ctx context.Context, exportID string) ([]byte, error)

	GetHealth(ctx context.Context) (*HealthStatus, error)
	GetMetrics(ctx context.Context, opts *DateRangeOptions) (*PlatformMetrics, error)
}

// CasesClient manages operational cases.
type CasesClient interface {
	List(ctx context.Context, opts *CaseListOptions) (*ListResponse[Case], error)
	Get(ctx context.Context, caseID string) (*Case, error)
	Create(ctx context.Context, req *CreateCaseRequest) (*Case, error)
	Update(ctx context.Context, caseID string, req *UpdateCaseRequest) (*Case, error)
	Assign(ctx context.Context, caseID, assigneeID string) (*Case, error)
	Close(ctx context.Context, caseID, resolution string) (*Case, error)
	AddComment(ctx context.Context, caseID, comment string) (*CaseComment, error)
	GetHistory(ctx context.Context, caseID string, opts *ListOptions) (*ListResponse[CaseEvent], error)
}

// ConsentClient manages privacy consent records and data subject requests.
type ConsentClient interface {
	ListRecords(ctx context.Context, opts *StatusListOptions) (*ListResponse[Consent], error)
	GetRecord(ctx context.Context, consentID string) (*Consent, error)
	CreateRecord(ctx context.Context, req *CreateConsentRequest) (*Consent, error)
	WithdrawRecord(ctx context.Context, consentID string) (*Consent, error)

	ListDataSubjectRequests(ctx context.Context, opts *DataSubjectRequestListOptions) (*ListResponse[DataSubjectRequest], error)
	GetDataSubjectRequest(ctx context.Context, requestID string) (*DataSubjectRequest, error)
	CreateDataSubjectRequest(ctx context.Context, req *CreateDataSubjectRequest) (*DataSubjectRequest, error)
	FulfillDataSubjectRequest(ctx context.Context, requestID string) (*DataSubjectRequest, error)
}

// AccessConsentsClient manages open-banking access consents.
type AccessConsentsClient interface {
	List(ctx context.Context, opts *ConsentListOptions) (*ListResponse[Consent], error)
	Get(ctx context.Context, consentID string) (*Consent, error)
	Create(ctx context.Context, req *CreateConsentRequest) (*Consent, error)
	Revoke(ctx context.Context, consentID string) (*Consent, error)
	Renew(ctx context.Context, consentID string) (*Consent, error)
}

// ComplianceClient manages regulatory checks, rules and reports.
type ComplianceClient interface {
	ListChecks(ctx context.Context, opts *ComplianceCheckListOptions) (*ListResponse[ComplianceCheck], error)
	GetCheck(ctx context.Context, checkID string) (*ComplianceCheck, error)
	CreateCheck(ctx context.Context, req *CreateComplianceCheckRequest) (*ComplianceCheck, error)
	RunCheck(ctx context.Context, checkID string) (*ComplianceCheck, error)

	ListRules(ctx context.Context, opts *ComplianceRuleListOptions) (*ListResponse[ComplianceRule], error)
	GetRule(ctx context.Context, ruleID string) (*ComplianceRule, error)
	CreateRule(ctx context.Context, req *CreateComplianceRuleRequest) (*ComplianceRule, error)
	UpdateRule(ctx context.Context, ruleID string, req *UpdateComplianceRuleRequest) (*ComplianceRule, error)

	GenerateReport(ctx context.Context, req *GenerateComplianceReportRequest) (*ComplianceReport, error)
	GetStatus(ctx context.Context, entityID, entityType string) (*ComplianceStatus, error)
}

// GovernanceClient manages governance boards, members, meetings and
// resolutions.
type GovernanceClient interface {
	ListBoards(ctx context.Context, opts *TypeListOptions) (*ListResponse[GovernanceBoard], error)
	GetBoard(ctx context.Context, boardID string) (*GovernanceBoard, error)
	CreateBoard(ctx context.Context, req *CreateGovernanceBoardRequest) (*GovernanceBoard, error)
	UpdateBoard(ctx context.Context, boardID string, req *UpdateGovernanceBoardRequest) (*GovernanceBoard, error)

	ListMembers(ctx context.Context, boardID string) ([]BoardMember, error)
	AddMember(ctx context.Context, boardID string, req *AddBoardMemberRequest) (*BoardMember, error)
	RemoveMember(ctx context.Context, boardID, memberID string) error

	ListMeetings(ctx context.Context, boardID string, opts *ListOptions) (*ListResponse[BoardMeeting], error)
	GetMeeting(ctx context.Context, boardID, meetingID string) (*BoardMeeting, error)
	CreateMeeting(ctx context.Context, boardID string, req *CreateBoardMeetingRequest) (*BoardMeeting, error)

	ListResolutions(ctx context.Context, boardID string, opts *ListOptions) (*ListResponse[BoardResolution], error)
	CreateResolution(ctx context.Context, boardID string, req *CreateBoardResolutionRequest) (*BoardResolution, error)
}

// ReconciliationClient manages matching jobs and their exceptions.
type ReconciliationClient interface {
	ListJobs(ctx context.Context, opts *StatusListOptions) (*ListResponse[ReconciliationJob], error)
	GetJob(ctx context.Context, jobID string) (*ReconciliationJob, error)
	CreateJob(ctx context.Context, req *CreateReconciliationJobRequest) (*ReconciliationJob, error)
	StartJob(ctx context.Context, jobID string) (*ReconciliationJob, error)
	CancelJob(ctx context.Context, jobID string) (*ReconciliationJob, error)

	ListExceptions(ctx context.Context, opts *ExceptionListOptions) (*ListResponse[ReconciliationException], error)
	GetException(ctx context.Context, exceptionID string) (*ReconciliationException, error)
	ResolveException(ctx context.Context, exceptionID, resolution string) (*ReconciliationException, error)
	DismissException(ctx context.Context, exceptionID, reason string) (*ReconciliationException, error)

	Match(ctx context.Context, sourceID, targetID string) (*MatchResult, error)
}

// RoutingClient manages payment routing rules.
type RoutingClient interface {
	ListRules(ctx context.Context, opts *EnabledListOptions) (*ListResponse[RoutingRule], error)
	GetRule(ctx context.Context, ruleID string) (*RoutingRule, error)
	CreateRule(ctx context.Context, req *CreateRoutingRuleRequest) (*RoutingRule, error)
	UpdateRule(ctx context.Context, ruleID string, req *UpdateRoutingRuleRequest) (*RoutingRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
	EnableRule(ctx context.Context, ruleID string) (*RoutingRule, error)
	DisableRule(ctx context.Context, ruleID string) (*RoutingRule, error)
	TestRule(ctx context.Context, ruleID string, payload map[string]interface{}) (*RoutingDecision, error)

	Evaluate(ctx context.Context, payload map[string]interface{}) (*RoutingDecision, error)
}

// MessagesClient manages ISO 20022 financial messages.
type MessagesClient interface {
	List(ctx context.Context, opts *MessageListOptions) (*ListResponse[Message], error)
	Get(ctx context.Context, messageID string) (*Message, error)
	Create(ctx context.Context, req *CreateMessageRequest) (*Message, error)
	Parse(ctx context.Context, raw string) (*ParsedMessage, error)
	Validate(ctx context.Context, req *CreateMessageRequest) (*ValidationResult, error)
	GetStatus(ctx context.Context, messageID string) (*MessageStatus, error)
}

// ClearingClient manages clearing batches and settlement.
type ClearingClient interface {
	ListBatches(ctx context.Context, opts *StatusListOptions) (*ListResponse[ClearingBatch], error)
	GetBatch(ctx context.Context, batchID string) (*ClearingBatch, error)
	CreateBatch(ctx context.Context, req *CreateClearingBatchRequest) (*ClearingBatch, error)
	ProcessBatch(ctx context.Context, batchID string) (*ClearingBatch, error)
	SettleBatch(ctx context.Context, batchID string) (*ClearingBatch, error)

	ListTransactions(ctx context.Context, opts *ClearingTransactionListOptions) (*ListResponse[ClearingTransaction], error)
	GetTransaction(ctx context.Context, transactionID string) (*ClearingTransaction, error)

	CalculateNetting(ctx context.Context, participantIDs []string) (*NettingResult, error)
	GetSettlementPositions(ctx context.Context, batchID string) ([]SettlementPosition, error)
}

// PortfoliosClient manages investment portfolios.
type PortfoliosClient interface {
	List(ctx context.Context, opts *TypeListOptions) (*ListResponse[Portfolio], error)
	Get(ctx context.Context, portfolioID string) (*Portfolio, error)
	Create(ctx context.Context, req *CreatePortfolioRequest) (*Portfolio, error)
	Update(ctx context.Context, portfolioID string, req *UpdatePortfolioRequest) (*Portfolio, error)

	ListHoldings(ctx context.Context, portfolioID string) ([]Holding, error)
	AddHolding(ctx context.Context, portfolioID string, req *AddHoldingRequest) (*Holding, error)

	GetPerformance(ctx context.Context, portfolioID string, opts *DateRangeOptions) (*PortfolioPerformance, error)
	GetMandate(ctx context.Context, portfolioID string) (*InvestmentMandate, error)
	SetMandate(ctx context.Context, portfolioID string, mandate *InvestmentMandate) (*InvestmentMandate, error)
	CheckCompliance(ctx context.Context, portfolioID string) (*MandateCompliance, error)
}

// ReportingClient manages reports, templates, dashboards and schedules.
type ReportingClient interface {
	ListReports(ctx context.Context, opts *ReportListOptions) (*ListResponse[Report], error)
	GetReport(ctx context.Context, reportID string) (*Report, error)
	GenerateReport(ctx context.Context, req *GenerateReportRequest) (*Report, error)
	DownloadReport(ctx context.Context, reportID string) ([]byte, error)

	ListTemplates(ctx context.Context) ([]ReportTemplate, error)
	GetTemplate(ctx context.Context, templateID string) (*ReportTemplate, error)

	ListDashboards(ctx context.Context, opts *ListOptions) (*ListResponse[Dashboard], error)
	GetDashboard(ctx context.Context, dashboardID string) (*Dashboard, error)
	GetDashboardData(ctx context.Context, dashboardID string, opts *DateRangeOptions) (*DashboardData, error)

	ListScheduled(ctx context.Context, opts *ListOptions) (*ListResponse[ScheduledReport], error)
	CreateScheduled(ctx context.Context, req *CreateScheduledReportRequest) (*ScheduledReport, error)
	DeleteScheduled(ctx context.Context, scheduledID string) error
}

// AnalyticsClient queries the platform analytics views.
type AnalyticsClient interface {
	GetContractsOverview(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetContractsExposure(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetShariahFlags(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetShariahHeatmap(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetReconciliationExceptions(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetUsageMetrics(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetUsageByRail(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	GetBillingAggregates(ctx context.Context, opts *AnalyticsOptions) (AnalyticsReport, error)
	Query(ctx context.Context, viewName string, filters map[string]interface{}) (AnalyticsReport, error)
}

// LegalClient manages legal documents and templates.
type LegalClient interface {
	ListDocuments(ctx context.Context, opts *LegalDocumentListOptions) (*ListResponse[LegalDocument], error)
	GetDocument(ctx context.Context, documentID string) (*LegalDocument, error)
	CreateDocument(ctx context.Context, req *CreateLegalDocumentRequest) (*LegalDocument, error)
	UpdateDocument(ctx context.Context, documentID string, req *UpdateLegalDocumentRequest) (*LegalDocument, error)
	SignDocument(ctx context.Context, documentID string, req *SignLegalDocumentRequest) (*LegalDocument, error)
	GetSigners(ctx context.Context, documentID string) ([]Signer, error)

	ListTemplates(ctx context.Context, opts *TypeListOptions) (*ListResponse[LegalTemplate], error)
	GetTemplate(ctx context.Context, templateID string) (*LegalTemplate, error)
	GenerateFromTemplate(ctx context.Context, templateID string, variables map[string]interface{}) (*LegalDocument, error)
}

// UnderwritingClient manages financing applications and decisions.
type UnderwritingClient interface {
	ListApplications(ctx context.Context, opts *StatusListOptions) (*ListResponse[UnderwritingApplication], error)
	GetApplication(ctx context.Context, applicationID string) (*UnderwritingApplication, error)
	CreateApplication(ctx context.Context, req *CreateUnderwritingApplicationRequest) (*UnderwritingApplication, error)
	SubmitApplication(ctx context.Context, applicationID string) (*UnderwritingApplication, error)
	DecideApplication(ctx context.Context, applicationID string, req *DecideApplicationRequest) (*UnderwritingDecision, error)
	ScoreApplication(ctx context.Context, applicationID string) (*RiskScore, error)

	ListDecisions(ctx context.Context, opts *DecisionListOptions) (*ListResponse[UnderwritingDecision], error)
	GetDecision(ctx context.Context, decisionID string) (*UnderwritingDecision, error)

	GetCreditReport(ctx context.Context, customerID string) (*CreditReport, error)
}

// NotificationsClient sends notifications and manages templates and
// preferences.
type NotificationsClient interface {
	List(ctx context.Context, opts *NotificationListOptions) (*ListResponse[Notification], error)
	Get(ctx context.Context, notificationID string) (*Notification, error)
	Send(ctx context.Context, req *SendNotificationRequest) (*Notification, error)
	SendEmail(ctx context.Context, req *SendEmailRequest) (*Notification, error)
	SendSMS(ctx context.Context, req *SendSMSRequest) (*Notification, error)
	SendPush(ctx context.Context, req *SendPushRequest) (*Notification, error)

	ListTemplates(ctx context.Context, opts *NotificationListOptions) (*ListResponse[NotificationTemplate], error)
	GetTemplate(ctx context.Context, templateID string) (*NotificationTemplate, error)
	SendFromTemplate(ctx context.Context, templateID string, req *SendFromTemplateRequest) (*Notification, error)

	GetPreferences(ctx context.Context, userID string) (*NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, prefs *NotificationPreferences) (*NotificationPreferences, error)
}

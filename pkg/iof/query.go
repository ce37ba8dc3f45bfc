package iof

import (
	"net/url"
	"strconv"
)

// ListOptions are the pagination parameters shared by every listing.
type ListOptions struct {
	Page  int
	Limit int
}

// ToValues converts the options to query parameters. Zero values are omitted.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setInt(values, "page", o.Page)
	setInt(values, "limit", o.Limit)

	return values
}

// WithPage returns a copy of the options positioned at the given page.
func (o *ListOptions) WithPage(page int) *ListOptions {
	opts := ListOptions{}
	if o != nil {
		opts = *o
	}

	opts.Page = page

	return &opts
}

// ContractListOptions filter contract listings.
type ContractListOptions struct {
	ListOptions

	Status   string
	Type     string
	Currency string
}

func (o *ContractListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)
	setString(values, "currency", o.Currency)

	return values
}

// CustomerListOptions filter customer listings.
type CustomerListOptions struct {
	ListOptions

	Status string
	Type   string
}

func (o *CustomerListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)

	return values
}

// AlertListOptions filter alert listings.
type AlertListOptions struct {
	ListOptions

	Status   string
	Severity string
}

func (o *AlertListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "severity", o.Severity)

	return values
}

// CaseListOptions filter investigation case listings.
type CaseListOptions struct {
	ListOptions

	Status   string
	Type     string
	Priority string
}

func (o *CaseListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)
	setString(values, "priority", o.Priority)

	return values
}

// StatusListOptions filter listings by a single status value.
type StatusListOptions struct {
	ListOptions

	Status string
}

func (o *StatusListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)

	return values
}

// EnabledListOptions filter listings by an enabled flag.
type EnabledListOptions struct {
	ListOptions

	Enabled *bool
}

func (o *EnabledListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	if o.Enabled != nil {
		values.Set("enabled", strconv.FormatBool(*o.Enabled))
	}

	return values
}

// PartnerListOptions filter partner listings.
type PartnerListOptions struct {
	ListOptions

	Status string
	Type   string
}

func (o *PartnerListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)

	return values
}

// DisputeListOptions filter dispute listings.
type DisputeListOptions struct {
	ListOptions

	Status string
	Type   string
}

func (o *DisputeListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)

	return values
}

// ZakatCalculationListOptions filter zakat calculation listings.
type ZakatCalculationListOptions struct {
	ListOptions

	Year   int
	Status string
}

func (o *ZakatCalculationListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setInt(values, "year", o.Year)
	setString(values, "status", o.Status)

	return values
}

// RiskLimitListOptions filter risk limit listings.
type RiskLimitListOptions struct {
	ListOptions

	Type   string
	Status string
}

func (o *RiskLimitListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "status", o.Status)

	return values
}

// EventListOptions filter event listings.
type EventListOptions struct {
	ListOptions

	Type      string
	Source    string
	StartDate string
	EndDate   string
}

func (o *EventListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "source", o.Source)
	setString(values, "start_date", o.StartDate)
	setString(values, "end_date", o.EndDate)

	return values
}

// AuditLogListOptions filter audit log listings.
type AuditLogListOptions struct {
	ListOptions

	EventType    string
	ResourceType string
	ActorID      string
	StartDate    string
	EndDate      string
}

func (o *AuditLogListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "event_type", o.EventType)
	setString(values, "resource_type", o.ResourceType)
	setString(values, "actor_id", o.ActorID)
	setString(values, "start_date", o.StartDate)
	setString(values, "end_date", o.EndDate)

	return values
}

// MonitoringListOptions filter Shariah monitoring listings.
type MonitoringListOptions struct {
	ListOptions

	Status    string
	CheckType string
}

func (o *MonitoringListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "check_type", o.CheckType)

	return values
}

// DateRangeOptions bound report queries by date.
type DateRangeOptions struct {
	StartDate string
	EndDate   string
}

func (o *DateRangeOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setString(values, "start_date", o.StartDate)
	setString(values, "end_date", o.EndDate)

	return values
}

// SearchOptions parametrize a search query.
type SearchOptions struct {
	Query   string
	Index   string
	Limit   int
	Offset  int
	Filters map[string]string
}

func (o *SearchOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setString(values, "q", o.Query)
	setString(values, "index", o.Index)
	setInt(values, "limit", o.Limit)
	setInt(values, "offset", o.Offset)

	for key, value := range o.Filters {
		setString(values, key, value)
	}

	return values
}

// TypeListOptions filter listings by a single type value.
type TypeListOptions struct {
	ListOptions

	Type string
}

func (o *TypeListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)

	return values
}

// ConsentListOptions filter access consent listings.
type ConsentListOptions struct {
	ListOptions

	Status string
	Type   string
}

func (o *ConsentListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)

	return values
}

// DataSubjectRequestListOptions filter data subject request listings.
type DataSubjectRequestListOptions struct {
	ListOptions

	Type   string
	Status string
}

func (o *DataSubjectRequestListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "status", o.Status)

	return values
}

// ComplianceCheckListOptions filter compliance check listings.
type ComplianceCheckListOptions struct {
	ListOptions

	Type   string
	Status string
}

func (o *ComplianceCheckListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "status", o.Status)

	return values
}

// ComplianceRuleListOptions filter compliance rule listings.
type ComplianceRuleListOptions struct {
	ListOptions

	Type    string
	Enabled *bool
}

func (o *ComplianceRuleListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	if o.Enabled != nil {
		values.Set("enabled", strconv.FormatBool(*o.Enabled))
	}

	return values
}

// ExceptionListOptions filter reconciliation exception listings.
type ExceptionListOptions struct {
	ListOptions

	Status string
	Type   string
}

func (o *ExceptionListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "status", o.Status)
	setString(values, "type", o.Type)

	return values
}

// MessageListOptions filter financial message listings.
type MessageListOptions struct {
	ListOptions

	Type      string
	Direction string
	Status    string
}

func (o *MessageListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "direction", o.Direction)
	setString(values, "status", o.Status)

	return values
}

// ClearingTransactionListOptions filter clearing transaction listings.
type ClearingTransactionListOptions struct {
	ListOptions

	BatchID string
	Status  string
}

func (o *ClearingTransactionListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "batch_id", o.BatchID)
	setString(values, "status", o.Status)

	return values
}

// ReportListOptions filter report listings.
type ReportListOptions struct {
	ListOptions

	Type   string
	Status string
}

func (o *ReportListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "status", o.Status)

	return values
}

// LegalDocumentListOptions filter legal document listings.
type LegalDocumentListOptions struct {
	ListOptions

	Type   string
	Status string
}

func (o *LegalDocumentListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "type", o.Type)
	setString(values, "status", o.Status)

	return values
}

// DecisionListOptions filter underwriting decision listings.
type DecisionListOptions struct {
	ListOptions

	Decision string
}

func (o *DecisionListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "decision", o.Decision)

	return values
}

// NotificationListOptions filter notification listings.
type NotificationListOptions struct {
	ListOptions

	Channel string
	Status  string
}

func (o *NotificationListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	setString(values, "channel", o.Channel)
	setString(values, "status", o.Status)

	return values
}

// AnalyticsOptions bound and filter an analytics view.
type AnalyticsOptions struct {
	FromDate       string
	ToDate         string
	BankID         string
	JurisdictionID string
	ContractType   string
	FlagType       string
	Status         string
	RailName       string
	GroupBy        string
	SKUID          string
}

func (o *AnalyticsOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setString(values, "from_date", o.FromDate)
	setString(values, "to_date", o.ToDate)
	setString(values, "bank_id", o.BankID)
	setString(values, "jurisdiction_id", o.JurisdictionID)
	setString(values, "contract_type", o.ContractType)
	setString(values, "flag_type", o.FlagType)
	setString(values, "status", o.Status)
	setString(values, "rail_name", o.RailName)
	setString(values, "group_by", o.GroupBy)
	setString(values, "sku_id", o.SKUID)

	return values
}

func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setInt(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}

package iof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iofinance-io/iof-client/pkg/iof"
)

func TestListOptionsToValues(t *testing.T) {
	t.Parallel()

	opts := &iof.ListOptions{Page: 3, Limit: 25}
	values := opts.ToValues()
	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "25", values.Get("limit"))
}

func TestListOptionsOmitsZeroValues(t *testing.T) {
	t.Parallel()

	values := (&iof.ListOptions{}).ToValues()
	assert.Empty(t, values)
}

func TestListOptionsNilReceiver(t *testing.T) {
	t.Parallel()

	var opts *iof.ListOptions

	assert.Empty(t, opts.ToValues())
}

func TestListOptionsWithPage(t *testing.T) {
	t.Parallel()

	opts := &iof.ListOptions{Page: 1, Limit: 50}
	next := opts.WithPage(2)

	assert.Equal(t, 2, next.Page)
	assert.Equal(t, 50, next.Limit)
	// the original is untouched
	assert.Equal(t, 1, opts.Page)
}

func TestListOptionsWithPageNilReceiver(t *testing.T) {
	t.Parallel()

	var opts *iof.ListOptions

	next := opts.WithPage(4)
	assert.Equal(t, 4, next.Page)
	assert.Zero(t, next.Limit)
}

func TestContractListOptionsToValues(t *testing.T) {
	t.Parallel()

	opts := &iof.ContractListOptions{
		ListOptions: iof.ListOptions{Page: 2, Limit: 10},
		Status:      "active",
		Type:        "murabaha",
		Currency:    "USD",
	}

	values := opts.ToValues()
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "active", values.Get("status"))
	assert.Equal(t, "murabaha", values.Get("type"))
	assert.Equal(t, "USD", values.Get("currency"))
}

func TestContractListOptionsOmitsEmptyFilters(t *testing.T) {
	t.Parallel()

	values := (&iof.ContractListOptions{Status: "draft"}).ToValues()
	assert.Equal(t, "draft", values.Get("status"))
	assert.False(t, values.Has("type"))
	assert.False(t, values.Has("currency"))
	assert.False(t, values.Has("page"))
}

func TestEnabledListOptionsToValues(t *testing.T) {
	t.Parallel()

	enabled := false
	values := (&iof.EnabledListOptions{Enabled: &enabled}).ToValues()
	assert.Equal(t, "false", values.Get("enabled"))

	assert.False(t, (&iof.EnabledListOptions{}).ToValues().Has("enabled"))
}

func TestZakatCalculationListOptionsToValues(t *testing.T) {
	t.Parallel()

	values := (&iof.ZakatCalculationListOptions{Year: 2026, Status: "paid"}).ToValues()
	assert.Equal(t, "2026", values.Get("year"))
	assert.Equal(t, "paid", values.Get("status"))
}

func TestAuditLogListOptionsToValues(t *testing.T) {
	t.Parallel()

	opts := &iof.AuditLogListOptions{
		EventType:    "contract.executed",
		ResourceType: "contract",
		ActorID:      "user-1",
		StartDate:    "2026-01-01",
		EndDate:      "2026-06-30",
	}

	values := opts.ToValues()
	assert.Equal(t, "contract.executed", values.Get("event_type"))
	assert.Equal(t, "contract", values.Get("resource_type"))
	assert.Equal(t, "user-1", values.Get("actor_id"))
	assert.Equal(t, "2026-01-01", values.Get("start_date"))
	assert.Equal(t, "2026-06-30", values.Get("end_date"))
}

func TestSearchOptionsToValues(t *testing.T) {
	t.Parallel()

	opts := &iof.SearchOptions{
		Query:   "murabaha",
		Index:   "contracts",
		Limit:   10,
		Offset:  20,
		Filters: map[string]string{"jurisdiction": "AE"},
	}

	values := opts.ToValues()
	assert.Equal(t, "murabaha", values.Get("q"))
	assert.Equal(t, "contracts", values.Get("index"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "20", values.Get("offset"))
	assert.Equal(t, "AE", values.Get("jurisdiction"))
}

func TestDateRangeOptionsNilReceiver(t *testing.T) {
	t.Parallel()

	var opts *iof.DateRangeOptions

	assert.Empty(t, opts.ToValues())
}

func TestListResponseHasNextPage(t *testing.T) {
	t.Parallel()

	resp := &iof.ListResponse[string]{
		Pagination: iof.PaginationInfo{Page: 1, Pages: 3},
	}
	assert.True(t, resp.HasNextPage())
	assert.Equal(t, 2, resp.NextPage())

	last := &iof.ListResponse[string]{
		Pagination: iof.PaginationInfo{Page: 3, Pages: 3},
	}
	assert.False(t, last.HasNextPage())
}

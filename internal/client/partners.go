package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// PartnersClient implements iof.PartnersClient.
type PartnersClient struct {
	http *internalhttp.Client
}

func (c *PartnersClient) List(ctx context.Context, opts *iof.PartnerListOptions) (*iof.ListResponse[iof.Partner], error) {
	resp, err := c.http.Get(ctx, apiPath("/partners"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing partners: %w", err)
	}

	var result iof.ListResponse[iof.Partner]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *PartnersClient) Get(ctx context.Context, partnerID string) (*iof.Partner, error) {
	resp, err := c.http.Get(ctx, apiPath("/partners/%s", partnerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting partner %s: %w", partnerID, err)
	}

	var partner iof.Partner
	if err := decodeInto(resp, &partner); err != nil {
		return nil, err
	}

	return &partner, nil
}

func (c *PartnersClient) Create(ctx context.Context, req *iof.CreatePartnerRequest) (*iof.Partner, error) {
	resp, err := c.http.Post(ctx, apiPath("/partners"), req)
	if err != nil {
		return nil, fmt.Errorf("creating partner: %w", err)
	}

	var partner iof.Partner
	if err := decodeInto(resp, &partner); err != nil {
		return nil, err
	}

	return &partner, nil
}

func (c *PartnersClient) Update(ctx context.Context, partnerID string, req *iof.UpdatePartnerRequest) (*iof.Partner, error) {
	resp, err := c.http.Patch(ctx, apiPath("/partners/%s", partnerID), req)
	if err != nil {
		return nil, fmt.Errorf("updating partner %s: %w", partnerID, err)
	}

	var partner iof.Partner
	if err := decodeInto(resp, &partner); err != nil {
		return nil, err
	}

	return &partner, nil
}

func (c *PartnersClient) ListPrograms(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.Program], error) {
	resp, err := c.http.Get(ctx, apiPath("/partners/programs"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing partner programs: %w", err)
	}

	var result iof.ListResponse[iof.Program]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *PartnersClient) GetProgram(ctx context.Context, programID string) (*iof.Program, error) {
	resp, err := c.http.Get(ctx, apiPath("/partners/programs/%s", programID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting partner program %s: %w", programID, err)
	}

	var program iof.Program
	if err := decodeInto(resp, &program); err != nil {
		return nil, err
	}

	return &program, nil
}

func (c *PartnersClient) CreateProgram(ctx context.Context, req *iof.CreateProgramRequest) (*iof.Program, error) {
	resp, err := c.http.Post(ctx, apiPath("/partners/programs"), req)
	if err != nil {
		return nil, fmt.Errorf("creating partner program: %w", err)
	}

	var program iof.Program
	if err := decodeInto(resp, &program); err != nil {
		return nil, err
	}

	return &program, nil
}

func (c *PartnersClient) UpdateProgram(ctx context.Context, programID string, req *iof.UpdateProgramRequest) (*iof.Program, error) {
	resp, err := c.http.Patch(ctx, apiPath("/partners/programs/%s", programID), req)
	if err != nil {
		return nil, fmt.Errorf("updating partner program %s: %w", programID, err)
	}

	var program iof.Program
	if err := decodeInto(resp, &program); err != nil {
		return nil, err
	}

	return &program, nil
}

func (c *PartnersClient) GetRevenueReport(ctx context.Context, partnerID string, opts *iof.DateRangeOptions) (*iof.RevenueReport, error) {
	resp, err := c.http.Get(ctx, apiPath("/partners/%s/revenue", partnerID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting revenue report for partner %s: %w", partnerID, err)
	}

	var report iof.RevenueReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *PartnersClient) GetCommissionReport(ctx context.Context, partnerID string) (*iof.CommissionReport, error) {
	resp, err := c.http.Get(ctx, apiPath("/partners/%s/commissions", partnerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting commission report for partner %s: %w", partnerID, err)
	}

	var report iof.CommissionReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

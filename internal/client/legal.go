package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// LegalClient implements iof.LegalClient.
type LegalClient struct {
	http *internalhttp.Client
}

func (c *LegalClient) ListDocuments(ctx context.Context, opts *iof.LegalDocumentListOptions) (*iof.ListResponse[iof.LegalDocument], error) {
	resp, err := c.http.Get(ctx, apiPath("/legal/documents"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing legal documents: %w", err)
	}

	var result iof.ListResponse[iof.LegalDocument]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *LegalClient) GetDocument(ctx context.Context, documentID string) (*iof.LegalDocument, error) {
	resp, err := c.http.Get(ctx, apiPath("/legal/documents/%s", documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting legal document %s: %w", documentID, err)
	}

	var document iof.LegalDocument
	if err := decodeInto(resp, &document); err != nil {
		return nil, err
	}

	return &document, nil
}

func (c *LegalClient) CreateDocument(ctx context.Context, req *iof.CreateLegalDocumentRequest) (*iof.LegalDocument, error) {
	resp, err := c.http.Post(ctx, apiPath("/legal/documents"), req)
	if err != nil {
		return nil, fmt.Errorf("creating legal document: %w", err)
	}

	var document iof.LegalDocument
	if err := decodeInto(resp, &document); err != nil {
		return nil, err
	}

	return &document, nil
}

func (c *LegalClient) UpdateDocument(ctx context.Context, documentID string, req *iof.UpdateLegalDocumentRequest) (*iof.LegalDocument, error) {
	resp, err := c.http.Patch(ctx, apiPath("/legal/documents/%s", documentID), req)
	if err != nil {
		return nil, fmt.Errorf("updating legal document %s: %w", documentID, err)
	}

	var document iof.LegalDocument
	if err := decodeInto(resp, &document); err != nil {
		return nil, err
	}

	return &document, nil
}

func (c *LegalClient) SignDocument(ctx context.Context, documentID string, req *iof.SignLegalDocumentRequest) (*iof.LegalDocument, error) {
	resp, err := c.http.Post(ctx, apiPath("/legal/documents/%s/sign", documentID), req)
	if err != nil {
		return nil, fmt.Errorf("signing legal document %s: %w", documentID, err)
	}

	var document iof.LegalDocument
	if err := decodeInto(resp, &document); err != nil {
		return nil, err
	}

	return &document, nil
}

func (c *LegalClient) GetSigners(ctx context.Context, documentID string) ([]iof.Signer, error) {
	resp, err := c.http.Get(ctx, apiPath("/legal/documents/%s/signers", documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting signers of legal document %s: %w", documentID, err)
	}

	var signers []iof.Signer
	if err := decodeInto(resp, &signers); err != nil {
		return nil, err
	}

	return signers, nil
}

func (c *LegalClient) ListTemplates(ctx context.Context, opts *iof.TypeListOptions) (*iof.ListResponse[iof.LegalTemplate], error) {
	resp, err := c.http.Get(ctx, apiPath("/legal/templates"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing legal templates: %w", err)
	}

	var result iof.ListResponse[iof.LegalTemplate]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *LegalClient) GetTemplate(ctx context.Context, templateID string) (*iof.LegalTemplate, error) {
	resp, err := c.http.Get(ctx, apiPath("/legal/templates/%s", templateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting legal template %s: %w", templateID, err)
	}

	var template iof.LegalTemplate
	if err := decodeInto(resp, &template); err != nil {
		return nil, err
	}

	return &template, nil
}

// GenerateFromTemplate renders a template into a new document.
func (c *LegalClient) GenerateFromTemplate(ctx context.Context, templateID string, variables map[string]interface{}) (*iof.LegalDocument, error) {
	body := map[string]interface{}{"variables": variables}

	resp, err := c.http.Post(ctx, apiPath("/legal/templates/%s/generate", templateID), body)
	if err != nil {
		return nil, fmt.Errorf("generating document from template %s: %w", templateID, err)
	}

	var document iof.LegalDocument
	if err := decodeInto(resp, &document); err != nil {
		return nil, err
	}

	return &document, nil
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// ValidateVAT submits a VAT number for validation.
func (c *Client) ValidateVAT(ctx context.Context, vatNumber string) (*ValidationResponse, error) {
	var result ValidationResponse
	req := ValidateVATRequest{VATNumber: vatNumber}
	if err := c.Do(ctx, "POST", "/v1/validate-vat", req, &result); err != nil {
		return nil, err
	}
	if result.VATNumber == "" {
		result.VATNumber = vatNumber
	}
	return &result, nil
}

// Calculate submits a calculation request.
func (c *Client) Calculate(ctx context.Context, req CalculationRequest) (*CalculationResponse, error) {
	var result CalculationResponse
	if err := c.Do(ctx, "POST", "/v1/calculate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Rates fetches all rate entries for a country. The service returns either
// a raw JSON array or a {"rates": [...]} wrapper; both are accepted and
// entry order is preserved.
func (c *Client) Rates(ctx context.Context, countryCode string) ([]RateEntryPayload, error) {
	path := fmt.Sprintf("/v1/rates/%s", url.PathEscape(countryCode))

	var raw json.RawMessage
	if err := c.Do(ctx, "GET", path, nil, &raw); err != nil {
		return nil, err
	}

	var entries []RateEntryPayload
	if err := json.Unmarshal(raw, &entries); err != nil {
		var wrapper struct {
			Rates *[]RateEntryPayload `json:"rates"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, &DecodeError{Err: err}
		}
		if wrapper.Rates == nil {
			return nil, &DecodeError{Err: errors.New(`missing required field "rates"`)}
		}
		entries = *wrapper.Rates
	}

	for i := range entries {
		if err := entries[i].validate(); err != nil {
			return nil, &DecodeError{Err: err}
		}
	}

	return entries, nil
}

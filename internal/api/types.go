package api

import "errors"

// ValidateVATRequest represents the POST /v1/validate-vat request.
type ValidateVATRequest struct {
	VATNumber string `json:"vat_number"`
}

// ValidationResponse represents the POST /v1/validate-vat response. Every
// field may be absent from the body; vat_number is backfilled from the
// submitted number when the service does not echo it.
type ValidationResponse struct {
	VATNumber   string                 `json:"vat_number"`
	Valid       bool                   `json:"valid"`
	CountryCode string                 `json:"country_code,omitempty"`
	Name        string                 `json:"name,omitempty"`
	Address     string                 `json:"address,omitempty"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
}

// PartyPayload identifies one side of a supply.
type PartyPayload struct {
	CountryCode string `json:"country_code"`
	VATNumber   string `json:"vat_number,omitempty"`
}

// CalculationRequest represents the POST /v1/calculate request. The basic
// form carries country_code/rate_type/supply_date; the extended form
// carries amount, basis, the supplier/customer pair and classification
// fields. Zero-valued fields are left off the wire.
type CalculationRequest struct {
	CountryCode  string        `json:"country_code,omitempty"`
	RateType     string        `json:"rate_type,omitempty"`
	SupplyDate   string        `json:"supply_date,omitempty"`
	Amount       float64       `json:"amount,omitempty"`
	Basis        string        `json:"basis,omitempty"`
	Supplier     *PartyPayload `json:"supplier,omitempty"`
	Customer     *PartyPayload `json:"customer,omitempty"`
	SupplyType   string        `json:"supply_type,omitempty"`
	B2X          string        `json:"b2x,omitempty"`
	CategoryHint string        `json:"category_hint,omitempty"`
}

// CalculationResponse represents the POST /v1/calculate response. The
// service reports the applied rate under "rate_percent"; older deployments
// used "applied_rate", so both keys are accepted.
type CalculationResponse struct {
	CountryCode    string        `json:"country_code"`
	RatePercent    *float64      `json:"rate_percent"`
	AppliedRate    *float64      `json:"applied_rate"`
	Net            float64       `json:"net"`
	VAT            float64       `json:"vat"`
	Gross          float64       `json:"gross"`
	Basis          string        `json:"basis,omitempty"`
	SupplyType     string        `json:"supply_type,omitempty"`
	B2X            string        `json:"b2x,omitempty"`
	Mechanism      string        `json:"mechanism,omitempty"`
	Messages       []string      `json:"messages,omitempty"`
	VATCheckStatus string        `json:"vat_check_status,omitempty"`
	Supplier       *PartyPayload `json:"supplier,omitempty"`
	Customer       *PartyPayload `json:"customer,omitempty"`
}

func (r *CalculationResponse) validate() error {
	if r.CountryCode == "" {
		return errors.New(`missing required field "country_code"`)
	}
	if r.RatePercent == nil && r.AppliedRate == nil {
		return errors.New(`missing required field "rate_percent"`)
	}
	return nil
}

// Rate returns the applied rate, whichever key carried it.
func (r *CalculationResponse) Rate() float64 {
	if r.RatePercent != nil {
		return *r.RatePercent
	}
	if r.AppliedRate != nil {
		return *r.AppliedRate
	}
	return 0
}

// RateEntryPayload represents one entry of the GET /v1/rates/{cc} response.
type RateEntryPayload struct {
	RateType    string  `json:"rate_type"`
	RatePercent float64 `json:"rate_percent"`
	CountryCode string  `json:"country_code,omitempty"`
}

func (r *RateEntryPayload) validate() error {
	if r.RateType == "" {
		return errors.New(`missing required field "rate_type"`)
	}
	return nil
}

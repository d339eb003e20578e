package vatify

import "github.com/vatify/client-go/internal/api"

// RateType classifies a VAT rate.
type RateType string

// Rate types accepted by the Vatify service.
const (
	RateStandard     RateType = "standard"
	RateReduced      RateType = "reduced"
	RateSuperReduced RateType = "super_reduced"
	RateParking      RateType = "parking"
	RateZero         RateType = "zero"
)

// Basis declares whether an amount is net or gross.
type Basis string

// Calculation bases.
const (
	BasisNet   Basis = "net"
	BasisGross Basis = "gross"
)

// SupplyType classifies what is being supplied.
type SupplyType string

// Supply types.
const (
	SupplyGoods    SupplyType = "goods"
	SupplyServices SupplyType = "services"
)

// B2X classifies the transaction parties.
type B2X string

// Transaction classifications.
const (
	B2C B2X = "B2C"
	B2B B2X = "B2B"
)

// ValidationResult is the outcome of a VAT number validation.
type ValidationResult struct {
	VATNumber   string                 `json:"vat_number"`
	Valid       bool                   `json:"valid"`
	CountryCode string                 `json:"country_code,omitempty"`
	Name        string                 `json:"name,omitempty"`
	Address     string                 `json:"address,omitempty"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
}

// Party identifies one side of a supply by country and, optionally, its
// VAT number (used for B2B/VIES checks).
type Party struct {
	CountryCode string `json:"country_code"`
	VATNumber   string `json:"vat_number,omitempty"`
}

// CalculationParams carries the inputs of a Calculate call. Two documented
// forms are accepted: the basic form sets CountryCode, RateType and
// SupplyDate; the extended form sets Amount, Basis, Supplier, Customer,
// SupplyType, B2X and optionally CategoryHint. At least one of CountryCode
// or the Supplier/Customer pair must be present.
type CalculationParams struct {
	CountryCode  string
	RateType     RateType
	SupplyDate   string // ISO-8601 calendar date; validated by the service
	Amount       float64
	Basis        Basis
	Supplier     *Party
	Customer     *Party
	SupplyType   SupplyType
	B2X          B2X
	CategoryHint string // e.g. "ebooks", "hospitality", "food"
}

// CalculationResult is the outcome of a VAT calculation.
type CalculationResult struct {
	CountryCode    string     `json:"country_code"`
	RatePercent    float64    `json:"rate_percent"`
	Net            float64    `json:"net"`
	VAT            float64    `json:"vat"`
	Gross          float64    `json:"gross"`
	Basis          Basis      `json:"basis,omitempty"`
	SupplyType     SupplyType `json:"supply_type,omitempty"`
	B2X            B2X        `json:"b2x,omitempty"`
	Mechanism      string     `json:"mechanism,omitempty"`
	Messages       []string   `json:"messages,omitempty"`
	VATCheckStatus string     `json:"vat_check_status,omitempty"`
	Supplier       *Party     `json:"supplier,omitempty"`
	Customer       *Party     `json:"customer,omitempty"`
}

// RateEntry is one VAT rate of a country.
type RateEntry struct {
	RateType    RateType `json:"rate_type"`
	RatePercent float64  `json:"rate_percent"`
	CountryCode string   `json:"country_code,omitempty"`
}

func newValidationResult(resp *api.ValidationResponse) *ValidationResult {
	return &ValidationResult{
		VATNumber:   resp.VATNumber,
		Valid:       resp.Valid,
		CountryCode: resp.CountryCode,
		Name:        resp.Name,
		Address:     resp.Address,
		Meta:        resp.Meta,
	}
}

func newCalculationResult(resp *api.CalculationResponse) *CalculationResult {
	return &CalculationResult{
		CountryCode:    resp.CountryCode,
		RatePercent:    resp.Rate(),
		Net:            resp.Net,
		VAT:            resp.VAT,
		Gross:          resp.Gross,
		Basis:          Basis(resp.Basis),
		SupplyType:     SupplyType(resp.SupplyType),
		B2X:            B2X(resp.B2X),
		Mechanism:      resp.Mechanism,
		Messages:       resp.Messages,
		VATCheckStatus: resp.VATCheckStatus,
		Supplier:       newParty(resp.Supplier),
		Customer:       newParty(resp.Customer),
	}
}

func newParty(p *api.PartyPayload) *Party {
	if p == nil {
		return nil
	}
	return &Party{CountryCode: p.CountryCode, VATNumber: p.VATNumber}
}

func newRateEntries(payloads []api.RateEntryPayload) []RateEntry {
	entries := make([]RateEntry, len(payloads))
	for i, p := range payloads {
		entries[i] = RateEntry{
			RateType:    RateType(p.RateType),
			RatePercent: p.RatePercent,
			CountryCode: p.CountryCode,
		}
	}
	return entries
}

func (p CalculationParams) request() api.CalculationRequest {
	req := api.CalculationRequest{
		CountryCode:  p.CountryCode,
		RateType:     string(p.RateType),
		SupplyDate:   p.SupplyDate,
		Amount:       p.Amount,
		Basis:        string(p.Basis),
		SupplyType:   string(p.SupplyType),
		B2X:          string(p.B2X),
		CategoryHint: p.CategoryHint,
	}
	if p.Supplier != nil {
		req.Supplier = &api.PartyPayload{CountryCode: p.Supplier.CountryCode, VATNumber: p.Supplier.VATNumber}
	}
	if p.Customer != nil {
		req.Customer = &api.PartyPayload{CountryCode: p.Customer.CountryCode, VATNumber: p.Customer.VATNumber}
	}
	return req
}

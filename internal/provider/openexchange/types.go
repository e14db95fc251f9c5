package openexchange

import (
	"encoding/json"

	"fx-data/internal/provider"
)

// RatesResponse is the Open Exchange Rates JSON body for both the historical
// and latest endpoints.
type RatesResponse struct {
	Disclaimer string             `json:"disclaimer,omitempty"`
	License    string             `json:"license,omitempty"`
	Timestamp  int64              `json:"timestamp"`
	Base       string             `json:"base"`
	Rates      map[string]float64 `json:"rates"`
}

// ToPayload converts the wire shape into the provider-agnostic payload.
func (r RatesResponse) ToPayload() *provider.RatesPayload {
	return &provider.RatesPayload{
		Base:      r.Base,
		Timestamp: r.Timestamp,
		Rates:     r.Rates,
	}
}

// decodePayload parses one response body. A body that does not decode into
// the expected shape, or carries no rates mapping at all, counts as malformed.
func decodePayload(body []byte) (*provider.RatesPayload, error) {
	var resp RatesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Rates == nil {
		return nil, errNoRates
	}
	return resp.ToPayload(), nil
}

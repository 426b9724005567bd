package models

import "encoding/json"

// LegacyAccountsResponse is the payload of the legacy accounts scope.
type LegacyAccountsResponse struct {
	Accounts []json.RawMessage `json:"accounts"`
}

// LegacyBillsResponse is the payload of the legacy bills scope. Bills come
// grouped per account.
type LegacyBillsResponse struct {
	Bills []BillGroup `json:"bills"`
}

// BillGroup is the set of bills of one account.
type BillGroup struct {
	Bills []Bill `json:"bills"`
}

// Bill is a single invoice.
type Bill struct {
	BillNumber string `json:"billnumber,omitempty"`
	BillDate   string `json:"billdate,omitempty"`
	Paid       bool   `json:"paid"`
	BillAmount Amount `json:"billamount"`
}

// Amount is a currency amount as reported by the billing API.
type Amount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// LegacyProductHoldingResponse is the payload of the customerproductholding
// scope.
type LegacyProductHoldingResponse struct {
	CustomerProductHolding []ProductListing `json:"customerproductholding"`
}

// LegacyTVResponse is the combined payload of the digitaltvdetails and
// digitaltvunbilledusage scopes.
type LegacyTVResponse struct {
	DigitalTVDetails []DigitalTVDetails `json:"digitaltvdetails"`

	// DigitalTVUnbilledUsage entries carry dynamic per-service keys
	// (e.g. "rentalusage", "theme_usage"); each usage value is an object
	// with a comma-decimal "total" field. Kept raw and scanned by key.
	DigitalTVUnbilledUsage []map[string]json.RawMessage `json:"digitaltvunbilledusage"`
}

// DigitalTVDetails describes one digital TV subscription.
type DigitalTVDetails struct {
	Devices []TVDevice `json:"devices"`
}

// TVDevice is a set-top box or decoder attached to a TV subscription.
type TVDevice struct {
	SerialNumber string `json:"serialnumber"`
	Model        string `json:"model,omitempty"`
	Type         string `json:"type,omitempty"`
}

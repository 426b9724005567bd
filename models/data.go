package models

import "encoding/json"

// Data is the snapshot assembled by a full fetch. It is rebuilt from
// scratch on every fetch, so a second fetch overwrites rather than merges
// with the first. The zero value means no fetch has completed yet.
type Data struct {
	// TelenetSystem mirrors the bss_system of the logged-in user.
	TelenetSystem string `json:"telenet_system,omitempty"`

	// UserDetails is the user record captured at login time.
	UserDetails UserDetails `json:"userdetails"`

	// ContactDetails and Account carry the raw legacy payloads; their
	// schema is owned by Telenet and passed through untouched.
	ContactDetails json.RawMessage `json:"contactdetails,omitempty"`
	Account        json.RawMessage `json:"account,omitempty"`

	// Products is keyed by the product's business identifier.
	Products map[string]Product `json:"products"`

	// Devices is keyed by router name, hardware name, or serial number
	// depending on the device kind.
	Devices map[string]Device `json:"devices"`

	// Bills holds open-amount summaries keyed by category
	// ("dtv", "invoices").
	Bills map[string]BillSummary `json:"bills"`
}

// NewData returns an empty snapshot with all maps initialised.
func NewData() Data {
	return Data{
		Products: map[string]Product{},
		Devices:  map[string]Device{},
		Bills:    map[string]BillSummary{},
	}
}

// Product is a single entry in [Data.Products]. For legacy internet
// products the usage summary is flattened into the entry; Netcracker
// products carry their specs instead.
type Product struct {
	*InternetUsage

	Specs *ProductSpecs `json:"specs,omitempty"`
}

// InternetUsage is the computed usage summary for a legacy internet line.
// Volumes are in GB rounded to one decimal.
type InternetUsage struct {
	LastUpdated           string    `json:"last_updated"`
	PeriodStart           string    `json:"periodstart"`
	PeriodEnd             string    `json:"periodend"`
	IncludedVolume        float64   `json:"included_volume"`
	PeakUsage             float64   `json:"peak_usage"`
	WifreeUsage           float64   `json:"wifree_usage"`
	OffPeakUsage          float64   `json:"offpeak_usage"`
	TotalUsageWithOffPeak float64   `json:"total_usage_with_offpeak"`
	Squeezed              bool      `json:"squeezed"`
	PeriodUsedPercentage  float64   `json:"period_used_percentage"`
	UsagePercentage       float64   `json:"usage_pct"`
	PeriodLengthDays      int       `json:"period_length_days"`
	DailyPeak             []float64 `json:"daily_peak"`
	DailyOffPeak          []float64 `json:"daily_off_peak"`
	DailyDate             []string  `json:"daily_date"`
}

// Device is a single entry in [Data.Devices]: a modem, a wifi modem, or a
// digital TV box. Fields that do not apply to the device kind are empty.
type Device struct {
	// Type labels the device kind, e.g. "Modem", "Wifi modem", "Digibox".
	Type string `json:"type"`

	InternetLineIdentifier string `json:"internetlineidentifier,omitempty"`
	CableRouterName        string `json:"cableroutername,omitempty"`
	Hardware               string `json:"hardware,omitempty"`
	MacAddress             string `json:"macaddress,omitempty"`
	SerialNumber           string `json:"serialnumber,omitempty"`
	Model                  string `json:"model,omitempty"`

	// Settings holds the wireless settings as reported by the API.
	Settings []WirelessSettings `json:"settings,omitempty"`

	// Passphrase is a WIFI:S:<ssid>;T:WPA;P:<passphrase>;; string suitable
	// for rendering as a wifi QR code. Only set for wifi modems that
	// report a passphrase.
	Passphrase string `json:"passphrase,omitempty"`
}

// WirelessSettings is the per-band wireless configuration of a wifi modem.
type WirelessSettings struct {
	SSID       string `json:"ssid"`
	Passphrase string `json:"passphrase,omitempty"`
}

// BillSummary is a single entry in [Data.Bills]: the open amount for a
// billing category together with the raw payload it was computed from.
type BillSummary struct {
	// Total is the summed open amount for usage-based categories.
	Total *float64 `json:"total,omitempty"`

	// Unpaid is the summed amount of unpaid invoices.
	Unpaid *float64 `json:"unpaid,omitempty"`

	// Unit is the currency of Total/Unpaid.
	Unit string `json:"unit"`

	// Data is the source payload the summary was derived from.
	Data any `json:"data,omitempty"`
}

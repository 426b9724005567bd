package models

// Wire types for the legacy internetusage/modemdetails/modems response.
// Volumes on the wire are in kB; timestamps use the 2006-01-02T15:04:05.0-0700
// layout.

// LegacyInternetResponse is the combined payload of the legacy
// internetusage, modemdetails and modems scopes.
type LegacyInternetResponse struct {
	InternetUsage []LegacyInternetUsage `json:"internetusage"`
	ModemDetails  []WireModem           `json:"modemdetails"`
	Modems        []WireModem           `json:"modems"`
}

// LegacyInternetUsage is the per-line usage record of the legacy API.
type LegacyInternetUsage struct {
	BusinessIdentifier string        `json:"businessidentifier"`
	LastUpdated        string        `json:"lastupdated"`
	AvailablePeriods   []UsagePeriod `json:"availableperiods"`
}

// UsagePeriod groups the usage records of one billing period.
type UsagePeriod struct {
	Usages []PeriodUsage `json:"usages"`
}

// PeriodUsage is a single billing-period usage record.
type PeriodUsage struct {
	PeriodStart    string         `json:"periodstart"`
	PeriodEnd      string         `json:"periodend"`
	IncludedVolume float64        `json:"includedvolume"`
	ExtendedVolume ExtendedVolume `json:"extendedvolume"`
	TotalUsage     TotalUsage     `json:"totalusage"`
	Squeezed       bool           `json:"squeezed"`
}

// ExtendedVolume is extra volume purchased on top of the included volume.
type ExtendedVolume struct {
	Volume float64 `json:"volume"`
}

// TotalUsage aggregates the period's traffic per category, in kB.
type TotalUsage struct {
	Peak        float64      `json:"peak"`
	OffPeak     float64      `json:"offpeak"`
	Wifree      float64      `json:"wifree"`
	DailyUsages []DailyUsage `json:"dailyusages"`
}

// DailyUsage is one day of traffic. Peak is a pointer because days without
// metered traffic omit the peak/offpeak pair entirely.
type DailyUsage struct {
	Date    string   `json:"date"`
	Peak    *float64 `json:"peak,omitempty"`
	OffPeak float64  `json:"offpeak,omitempty"`
}

// WireModem is a modem record as reported by the legacy API, covering both
// the modemdetails and the modems scope shapes.
type WireModem struct {
	InternetLineIdentifier string             `json:"internetlineidentifier"`
	CableRouterName        string             `json:"cableroutername,omitempty"`
	Hardware               string             `json:"hardware,omitempty"`
	MacAddress             string             `json:"macaddress,omitempty"`
	Model                  string             `json:"model,omitempty"`
	Settings               []WirelessSettings `json:"settings,omitempty"`
}

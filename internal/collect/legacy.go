package collect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sbogaerts/telenet-go/internal/adapter"
	"github.com/sbogaerts/telenet-go/models"
)

// collectLegacy gathers everything a TELENET_LEGACY account exposes:
// contact details, accounts, open invoices, and the per-product details
// reached through the customerproductholding walk.
func (c *Collector) collectLegacy(ctx context.Context, data *models.Data) error {
	raw, err := c.legacyScopes(ctx, "contactdetails")
	if err != nil {
		return err
	}
	if raw != nil {
		data.ContactDetails = raw
	}

	raw, err = c.legacyScopes(ctx, "accounts")
	if err != nil {
		return err
	}
	if raw != nil {
		var accounts models.LegacyAccountsResponse
		if err = json.Unmarshal(raw, &accounts); err != nil {
			return fmt.Errorf("decode accounts: %w", err)
		}
		for _, account := range accounts.Accounts {
			data.Account = account
		}
	}

	if err = c.legacyBills(ctx, data); err != nil {
		return err
	}

	raw, err = c.legacyScopes(ctx, "customerproductholding")
	if err != nil {
		return err
	}
	if raw != nil {
		var holding models.LegacyProductHoldingResponse
		if err = json.Unmarshal(raw, &holding); err != nil {
			return fmt.Errorf("decode customerproductholding: %w", err)
		}
		for _, product := range holding.CustomerProductHolding {
			if err = c.walkProduct(ctx, data, models.BSSTelenetLegacy, product, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Collector) legacyBills(ctx context.Context, data *models.Data) error {
	raw, err := c.legacyScopes(ctx, "bills")
	if err != nil || raw == nil {
		return err
	}

	var resp models.LegacyBillsResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode bills: %w", err)
	}

	var unpaid float64
	var open []models.Bill
	for _, group := range resp.Bills {
		for _, bill := range group.Bills {
			if !bill.Paid {
				unpaid += bill.BillAmount.Amount
				open = append(open, bill)
			}
		}
	}

	data.Bills["invoices"] = models.BillSummary{
		Unpaid: &unpaid,
		Unit:   "EURO",
		Data:   open,
	}
	return nil
}

// legacyInternet stores the computed usage summary of the internet line
// and the modems attached to it.
func (c *Collector) legacyInternet(ctx context.Context, data *models.Data, specs *models.ProductSpecs) error {
	raw, err := c.legacyScopes(ctx, "internetusage,modemdetails,modems")
	if err != nil || raw == nil {
		return err
	}

	var resp models.LegacyInternetResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode internetusage: %w", err)
	}

	var businessID string
	for _, line := range resp.InternetUsage {
		businessID = line.BusinessIdentifier
		usage, ok := firstUsage(line)
		if !ok {
			continue
		}

		summary := c.usageSummary(line, usage, specs)
		data.Products[businessID] = models.Product{InternetUsage: summary}
	}

	for _, modem := range resp.ModemDetails {
		if modem.InternetLineIdentifier != businessID {
			continue
		}
		data.Devices[modem.CableRouterName] = deviceFromModem(modem, "Modem")
	}

	for _, modem := range resp.Modems {
		if modem.InternetLineIdentifier != businessID {
			continue
		}
		device := deviceFromModem(modem, "Wifi modem")
		if len(modem.Settings) > 0 && modem.Settings[0].Passphrase != "" {
			device.Passphrase = wifiQR(modem.Settings[0].SSID, modem.Settings[0].Passphrase)
		}
		data.Devices[modem.Hardware] = device
	}

	return nil
}

func firstUsage(line models.LegacyInternetUsage) (models.PeriodUsage, bool) {
	if len(line.AvailablePeriods) == 0 || len(line.AvailablePeriods[0].Usages) == 0 {
		return models.PeriodUsage{}, false
	}
	return line.AvailablePeriods[0].Usages[0], true
}

func (c *Collector) usageSummary(line models.LegacyInternetUsage, usage models.PeriodUsage, specs *models.ProductSpecs) *models.InternetUsage {
	total := usage.TotalUsage

	// The included volume comes from the product spec when the spec caps
	// the service category; otherwise from the usage record itself.
	var includedVolume float64
	switch {
	case specs != nil && specs.IncludedVolume != nil:
		includedVolume, _ = specs.IncludedVolume.Value.Float64()
	case usage.IncludedVolume > 0:
		includedVolume = kbToGB(usage.IncludedVolume + usage.ExtendedVolume.Volume)
	}

	var usagePct float64
	if includedVolume > 0 {
		usagePct = round1(100 * kbToGB(total.OffPeak+total.Wifree) / includedVolume)
	}

	summary := &models.InternetUsage{
		LastUpdated:           line.LastUpdated,
		PeriodStart:           usage.PeriodStart,
		PeriodEnd:             usage.PeriodEnd,
		IncludedVolume:        includedVolume,
		PeakUsage:             kbToGB(total.Peak),
		WifreeUsage:           kbToGB(total.Wifree),
		OffPeakUsage:          kbToGB(total.OffPeak),
		TotalUsageWithOffPeak: kbToGB(total.Peak + total.OffPeak),
		Squeezed:              usage.Squeezed,
		UsagePercentage:       usagePct,
	}

	if start, err := parsePeriodTime(usage.PeriodStart); err == nil {
		if end, err := parsePeriodTime(usage.PeriodEnd); err == nil {
			length := end.Sub(start)
			summary.PeriodLengthDays = int(length.Hours() / 24)
			if length > 0 {
				usedPct := round1(100 * c.now().Sub(start).Seconds() / length.Seconds())
				if usedPct > 100 {
					usedPct = 100
				}
				summary.PeriodUsedPercentage = usedPct
			}
		}
	}

	for _, day := range total.DailyUsages {
		if day.Peak != nil {
			summary.DailyPeak = append(summary.DailyPeak, kbToGB(*day.Peak))
			summary.DailyOffPeak = append(summary.DailyOffPeak, kbToGB(day.OffPeak))
		}
		summary.DailyDate = append(summary.DailyDate, day.Date)
	}

	return summary
}

// legacyTV stores the TV boxes and the open unbilled amount.
func (c *Collector) legacyTV(ctx context.Context, data *models.Data) error {
	raw, err := c.legacyScopes(ctx, "digitaltvdetails,digitaltvunbilledusage")
	if err != nil || raw == nil {
		return err
	}

	var resp models.LegacyTVResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode digitaltvdetails: %w", err)
	}

	for _, details := range resp.DigitalTVDetails {
		for _, device := range details.Devices {
			data.Devices[device.SerialNumber] = models.Device{
				Type:         "Digibox",
				SerialNumber: device.SerialNumber,
				Model:        device.Model,
			}
		}
	}

	var openAmount float64
	var last map[string]json.RawMessage
	for _, entry := range resp.DigitalTVUnbilledUsage {
		last = entry
		for key, value := range entry {
			if !strings.Contains(key, "usage") {
				continue
			}
			var usage struct {
				Total string `json:"total"`
			}
			if err = json.Unmarshal(value, &usage); err != nil || usage.Total == "" {
				continue
			}
			amount, err := strToFloat(usage.Total)
			if err != nil {
				c.log.Warn().Str("key", key).Str("total", usage.Total).Msg("unparsable unbilled usage total")
				continue
			}
			openAmount += amount
		}
	}

	data.Bills["dtv"] = models.BillSummary{
		Total: &openAmount,
		Unit:  "EURO",
		Data:  last,
	}
	return nil
}

// deviceFromModem converts a wire modem record into a device entry. The
// installation address the API reports is deliberately not carried over.
func deviceFromModem(modem models.WireModem, kind string) models.Device {
	return models.Device{
		Type:                   kind,
		InternetLineIdentifier: modem.InternetLineIdentifier,
		CableRouterName:        modem.CableRouterName,
		Hardware:               modem.Hardware,
		MacAddress:             modem.MacAddress,
		Model:                  modem.Model,
		Settings:               modem.Settings,
	}
}

// legacyScopes queries the legacy endpoint and turns refused scopes into a
// skip (nil payload) instead of an error; the account simply does not have
// that service.
func (c *Collector) legacyScopes(ctx context.Context, scopes string) (json.RawMessage, error) {
	raw, err := c.api.LegacyService(ctx, scopes)
	if err != nil {
		if errors.Is(err, adapter.ErrScopeNotGranted) {
			c.log.Warn().Str("scopes", scopes).Msg("service not available in session scopes")
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

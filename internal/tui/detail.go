package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sbogaerts/telenet-go/models"
)

type detailModel struct {
	key     string
	product models.Product
	devices map[string]models.Device
	status  string
}

func (m detailModel) View() string {
	var b strings.Builder

	title := m.key
	if m.product.Specs != nil && m.product.Specs.Name != "" {
		title = m.product.Specs.Name
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if usage := m.product.InternetUsage; usage != nil {
		b.WriteString(renderUsage(usage))
	} else if m.product.Specs != nil {
		b.WriteString(renderSpecs(m.product.Specs))
	} else {
		b.WriteString("  no details available\n")
	}

	if wifi := m.wifiDevices(); len(wifi) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Devices"))
		b.WriteString("\n")
		for _, name := range wifi {
			device := m.devices[name]
			b.WriteString(fmt.Sprintf("  %-20s %s", name, device.Type))
			if len(device.Settings) > 0 {
				b.WriteString("  ssid " + device.Settings[0].SSID)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("w copy wifi · esc back · q quit"))

	return b.String()
}

// wifiDevices returns the device names sorted, wifi modems first.
func (m detailModel) wifiDevices() []string {
	names := make([]string, 0, len(m.devices))
	for name := range m.devices {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := m.devices[names[i]], m.devices[names[j]]
		if (a.Passphrase != "") != (b.Passphrase != "") {
			return a.Passphrase != ""
		}
		return names[i] < names[j]
	})
	return names
}

func renderUsage(usage *models.InternetUsage) string {
	var b strings.Builder

	b.WriteString("  " + usageBar(usage.UsagePercentage) + "\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"included", formatGB(usage.IncludedVolume)},
		{"peak", formatGB(usage.PeakUsage)},
		{"off-peak", formatGB(usage.OffPeakUsage)},
		{"wifree", formatGB(usage.WifreeUsage)},
		{"total incl. off-peak", formatGB(usage.TotalUsageWithOffPeak)},
		{"period", fmt.Sprintf("%s → %s (%d days, %.1f%% elapsed)",
			usage.PeriodStart, usage.PeriodEnd, usage.PeriodLengthDays, usage.PeriodUsedPercentage)},
		{"last updated", valueOrDash(usage.LastUpdated)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", labelStyle.Render(row.label), row.value))
	}

	if usage.Squeezed {
		b.WriteString("\n  " + warnStyle.Render("volume exceeded, speed is reduced") + "\n")
	}

	if n := len(usage.DailyDate); n > 0 {
		b.WriteString("\n  " + labelStyle.Render("recent days") + "\n")
		start := n - 7
		if start < 0 {
			start = 0
		}
		for i := start; i < n; i++ {
			line := fmt.Sprintf("  %s  peak %s", usage.DailyDate[i], formatGB(dailyAt(usage.DailyPeak, i)))
			line += fmt.Sprintf("  off-peak %s", formatGB(dailyAt(usage.DailyOffPeak, i)))
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func renderSpecs(specs *models.ProductSpecs) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-12s %s\n", labelStyle.Render("type"), valueOrDash(specs.ProductType)))
	if specs.IncludedVolume != nil {
		b.WriteString(fmt.Sprintf("  %-12s %s %s\n", labelStyle.Render("volume"),
			specs.IncludedVolume.Value.String(), specs.IncludedVolume.Unit))
	}
	if len(specs.Price) > 0 {
		b.WriteString(fmt.Sprintf("  %-12s %s (%s)\n", labelStyle.Render("price"),
			string(specs.Price), specs.PriceType))
	}
	return b.String()
}

func dailyAt(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sbogaerts/telenet-go/models"
)

type overviewModel struct {
	data   models.Data
	keys   []string // sorted product identifiers
	idx    int
	status string
}

func newOverviewModel() overviewModel {
	return overviewModel{}
}

func (m *overviewModel) setData(data models.Data) {
	m.data = data
	m.keys = make([]string, 0, len(data.Products))
	for k := range data.Products {
		m.keys = append(m.keys, k)
	}
	sort.Strings(m.keys)
	if m.idx >= len(m.keys) {
		m.idx = len(m.keys) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m overviewModel) current() (string, models.Product, bool) {
	if m.idx < 0 || m.idx >= len(m.keys) {
		return "", models.Product{}, false
	}
	key := m.keys[m.idx]
	return key, m.data.Products[key], true
}

func (m overviewModel) View() string {
	var b strings.Builder

	details := m.data.UserDetails
	b.WriteString(titleStyle.Render(fmt.Sprintf("Mijn Telenet — %s %s", details.FirstName, details.LastName)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("customer %s", valueOrDash(details.CustomerNumber))))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if len(m.keys) == 0 {
		b.WriteString("  no products\n")
	}
	for i, key := range m.keys {
		product := m.data.Products[key]
		line := m.productLine(key, product)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if bills := m.billsLine(); bills != "" {
		b.WriteString("\n")
		b.WriteString(bills)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select · enter details · r refresh · w copy wifi · q quit"))

	return b.String()
}

func (m overviewModel) productLine(key string, product models.Product) string {
	name := key
	if product.Specs != nil && product.Specs.Name != "" {
		name = product.Specs.Name
	}
	name = fitText(name, 32)

	if product.InternetUsage != nil {
		used := usageBar(product.UsagePercentage)
		if product.Squeezed {
			used += " " + warnStyle.Render("squeezed")
		}
		return fmt.Sprintf("%-34s %s", name, used)
	}
	if product.Specs != nil {
		return fmt.Sprintf("%-34s %s", name, labelStyle.Render(product.Specs.ProductType))
	}
	return name
}

func (m overviewModel) billsLine() string {
	parts := make([]string, 0, len(m.data.Bills))
	for _, category := range []string{"invoices", "dtv"} {
		summary, ok := m.data.Bills[category]
		if !ok {
			continue
		}
		switch {
		case summary.Unpaid != nil:
			parts = append(parts, fmt.Sprintf("%s open: %.2f %s", category, *summary.Unpaid, summary.Unit))
		case summary.Total != nil:
			parts = append(parts, fmt.Sprintf("%s usage: %.2f %s", category, *summary.Total, summary.Unit))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return labelStyle.Render(strings.Join(parts, "   "))
}

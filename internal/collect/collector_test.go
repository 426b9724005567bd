package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sbogaerts/telenet-go/internal/adapter"
	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/internal/mock"
	"github.com/sbogaerts/telenet-go/models"
)

func newTestCollector(t *testing.T, ctrl *gomock.Controller) (*Collector, *mock.MockOCAPI) {
	t.Helper()
	api := mock.NewMockOCAPI(ctrl)
	c := New(api, "nl", logger.Nop())
	return c, api
}

func legacyDetails() models.UserDetails {
	return models.UserDetails{
		CustomerNumber: "123456789",
		FirstName:      "Jan",
		LastName:       "Peeters",
		BSSSystem:      models.BSSTelenetLegacy,
	}
}

const internetSpecBody = `{
	"product": {
		"producttype": "INTERNET",
		"priceType": "RECURRING",
		"characteristics": {
			"service_category_limit": {"value": 750, "unit": "GB"},
			"salespricevatincl": {"amount": 61.0}
		},
		"localizedcontent": [
			{"locale": "nl", "name": "Internet Fiber"},
			{"locale": "fr", "name": "Internet Fibre"}
		]
	}
}`

const internetUsageBody = `{
	"internetusage": [{
		"businessidentifier": "x429890",
		"lastupdated": "2023-06-02T06:00:00.0+0200",
		"availableperiods": [{
			"usages": [{
				"periodstart": "2023-05-18T00:00:00.0+0200",
				"periodend": "2023-06-17T00:00:00.0+0200",
				"squeezed": false,
				"totalusage": {
					"peak": 104857600,
					"offpeak": 209715200,
					"wifree": 52428800,
					"dailyusages": [
						{"date": "2023-05-18", "peak": 524288, "offpeak": 1048576},
						{"date": "2023-05-19"}
					]
				}
			}]
		}]
	}],
	"modemdetails": [{
		"internetlineidentifier": "x429890",
		"cableroutername": "Router-1",
		"macaddress": "68:02:B8:77:A1:F2"
	}],
	"modems": [{
		"internetlineidentifier": "x429890",
		"hardware": "HW-1",
		"settings": [{"ssid": "TelenetWifi", "passphrase": "ab:cd"}]
	}]
}`

const tvBody = `{
	"digitaltvdetails": [{
		"devices": [{"serialnumber": "SN-1", "model": "DC-500"}]
	}],
	"digitaltvunbilledusage": [{
		"rentalusage": {"total": "12,50"},
		"themeusage": {"total": "2,50"},
		"details": {"irrelevant": true}
	}]
}`

const billsBody = `{
	"bills": [{
		"bills": [
			{"paid": true, "billamount": {"amount": 10}},
			{"paid": false, "billamount": {"amount": 55.5}}
		]
	}]
}`

// ── legacy accounts ─────────────────────────────────────────────────────────

func TestCollect_Legacy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, api := newTestCollector(t, ctrl)
	// fifteen days into a thirty-day period
	c.now = func() time.Time {
		return time.Date(2023, 6, 2, 0, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	}
	ctx := context.Background()

	api.EXPECT().LegacyService(ctx, "contactdetails").
		Return(json.RawMessage(`{"contactdetails": {"email": "jan@example.be"}}`), nil)
	api.EXPECT().LegacyService(ctx, "accounts").
		Return(json.RawMessage(`{"accounts": [{"accountnumber": "A-1"}]}`), nil)
	api.EXPECT().LegacyService(ctx, "bills").
		Return(json.RawMessage(billsBody), nil)
	api.EXPECT().LegacyService(ctx, "customerproductholding").
		Return(json.RawMessage(`{"customerproductholding": [
			{"identifier": "x429890", "label": "internet.fiber", "specurl": "https://api.example.be/specs/internet-fiber"},
			{"identifier": "tv1", "label": "tv.all", "specurl": "https://api.example.be/specs/tv-all"}
		]}`), nil)
	api.EXPECT().Fetch(ctx, "https://api.example.be/specs/internet-fiber").
		Return(json.RawMessage(internetSpecBody), nil)
	api.EXPECT().Fetch(ctx, "https://api.example.be/specs/tv-all").
		Return(json.RawMessage(`{"product": {"producttype": "DTV", "characteristics": {}, "localizedcontent": []}}`), nil)
	api.EXPECT().LegacyService(ctx, "internetusage,modemdetails,modems").
		Return(json.RawMessage(internetUsageBody), nil)
	api.EXPECT().LegacyService(ctx, "digitaltvdetails,digitaltvunbilledusage").
		Return(json.RawMessage(tvBody), nil)

	data, err := c.Collect(ctx, legacyDetails())

	require.NoError(t, err)
	assert.Equal(t, models.BSSTelenetLegacy, data.TelenetSystem)
	assert.Equal(t, "Jan", data.UserDetails.FirstName)
	assert.JSONEq(t, `{"contactdetails": {"email": "jan@example.be"}}`, string(data.ContactDetails))
	assert.JSONEq(t, `{"accountnumber": "A-1"}`, string(data.Account))

	// internet line summary
	product, ok := data.Products["x429890"]
	require.True(t, ok)
	require.NotNil(t, product.InternetUsage)
	usage := product.InternetUsage
	assert.InDelta(t, 750, usage.IncludedVolume, 1e-9)
	assert.InDelta(t, 100, usage.PeakUsage, 1e-9)
	assert.InDelta(t, 200, usage.OffPeakUsage, 1e-9)
	assert.InDelta(t, 50, usage.WifreeUsage, 1e-9)
	assert.InDelta(t, 300, usage.TotalUsageWithOffPeak, 1e-9)
	assert.InDelta(t, 33.3, usage.UsagePercentage, 1e-9)
	assert.Equal(t, 30, usage.PeriodLengthDays)
	assert.InDelta(t, 50, usage.PeriodUsedPercentage, 1e-9)
	assert.Equal(t, []float64{0.5}, usage.DailyPeak)
	assert.Equal(t, []float64{1}, usage.DailyOffPeak)
	assert.Equal(t, []string{"2023-05-18", "2023-05-19"}, usage.DailyDate)

	// devices
	router, ok := data.Devices["Router-1"]
	require.True(t, ok)
	assert.Equal(t, "Modem", router.Type)
	assert.Equal(t, "68:02:B8:77:A1:F2", router.MacAddress)

	wifi, ok := data.Devices["HW-1"]
	require.True(t, ok)
	assert.Equal(t, "Wifi modem", wifi.Type)
	assert.Equal(t, `WIFI:S:TelenetWifi;T:WPA;P:ab\:cd;;`, wifi.Passphrase)

	box, ok := data.Devices["SN-1"]
	require.True(t, ok)
	assert.Equal(t, "Digibox", box.Type)
	assert.Equal(t, "DC-500", box.Model)

	// bills
	invoices, ok := data.Bills["invoices"]
	require.True(t, ok)
	require.NotNil(t, invoices.Unpaid)
	assert.InDelta(t, 55.5, *invoices.Unpaid, 1e-9)
	assert.Equal(t, "EURO", invoices.Unit)

	dtv, ok := data.Bills["dtv"]
	require.True(t, ok)
	require.NotNil(t, dtv.Total)
	assert.InDelta(t, 15, *dtv.Total, 1e-9)
}

func TestCollect_Legacy_SkipsRefusedScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, api := newTestCollector(t, ctrl)
	ctx := context.Background()

	refused := fmt.Errorf("%w: contactdetails", adapter.ErrScopeNotGranted)
	api.EXPECT().LegacyService(ctx, gomock.Any()).Return(nil, refused).Times(4)

	data, err := c.Collect(ctx, legacyDetails())

	require.NoError(t, err)
	assert.Empty(t, data.Products)
	assert.Empty(t, data.Devices)
	assert.Empty(t, data.Bills)
}

func TestCollect_Legacy_TransportErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, api := newTestCollector(t, ctrl)
	ctx := context.Background()

	api.EXPECT().LegacyService(ctx, "contactdetails").
		Return(nil, fmt.Errorf("%w: http 500", adapter.ErrService))

	_, err := c.Collect(ctx, legacyDetails())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrService)
}

// ── netcracker accounts ─────────────────────────────────────────────────────

func TestCollect_Netcracker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, api := newTestCollector(t, ctrl)
	ctx := context.Background()

	wantParams := url.Values{}
	wantParams.Set("status", "ACTIVE,ACTIVATION_IN_PROGRESS")

	api.EXPECT().Service(ctx, "product", "products", 1, wantParams).
		Return(json.RawMessage(`[
			{
				"identifier": "bundle1",
				"productType": "bundle",
				"specurl": "https://api.example.be/specs/wigo",
				"children": [
					{"identifier": "net1", "productType": "internet", "specurl": "https://api.example.be/specs/internet-fiber"}
				]
			},
			{"identifier": "mob1", "productType": "mobile", "specurl": "https://api.example.be/specs/internet-fiber"}
		]`), nil)

	api.EXPECT().Fetch(ctx, "https://api.example.be/specs/wigo").
		Return(json.RawMessage(`{"product": {"producttype": "BUNDLE", "priceType": "RECURRING", "characteristics": {"salespricevatincl": {"amount": 99.0}}, "localizedcontent": [{"locale": "nl", "name": "Wigo"}]}}`), nil)

	// shared spec document fetched exactly once despite two products using it
	api.EXPECT().Fetch(ctx, "https://api.example.be/specs/internet-fiber").
		Return(json.RawMessage(internetSpecBody), nil).
		Times(1)

	data, err := c.Collect(ctx, models.UserDetails{
		CustomerNumber: "987654321",
		BSSSystem:      models.BSSNetcracker,
	})

	require.NoError(t, err)
	require.Len(t, data.Products, 3)

	bundle := data.Products["bundle1"]
	require.NotNil(t, bundle.Specs)
	assert.Equal(t, "Wigo", bundle.Specs.Name)
	assert.JSONEq(t, `{"amount": 99.0}`, string(bundle.Specs.Price))

	// bundle child carries no price of its own
	child := data.Products["net1"]
	require.NotNil(t, child.Specs)
	assert.Empty(t, child.Specs.Price)
	assert.Empty(t, child.Specs.PriceType)
	assert.Equal(t, "Internet Fiber", child.Specs.Name)

	standalone := data.Products["mob1"]
	require.NotNil(t, standalone.Specs)
	assert.JSONEq(t, `{"amount": 61.0}`, string(standalone.Specs.Price))
	require.NotNil(t, standalone.Specs.IncludedVolume)
	assert.Equal(t, json.Number("750"), standalone.Specs.IncludedVolume.Value)
}

func TestCollect_UnknownBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _ := newTestCollector(t, ctrl)

	data, err := c.Collect(context.Background(), models.UserDetails{
		CustomerNumber: "1",
		BSSSystem:      "SOMETHING_ELSE",
	})

	require.NoError(t, err)
	assert.Equal(t, "SOMETHING_ELSE", data.TelenetSystem)
	assert.Empty(t, data.Products)
}

// ── usage summary edge cases ────────────────────────────────────────────────

func TestUsageSummary_PeriodElapsedCappedAt100(t *testing.T) {
	c := New(nil, "nl", logger.Nop())
	// well past the 2023-05-18 → 2023-06-17 billing period
	c.now = func() time.Time {
		return time.Date(2023, 8, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	}

	usage := models.PeriodUsage{
		PeriodStart:    "2023-05-18T00:00:00.0+0200",
		PeriodEnd:      "2023-06-17T00:00:00.0+0200",
		IncludedVolume: 786432000, // 750 GB in kB
		TotalUsage:     models.TotalUsage{OffPeak: 209715200, Wifree: 52428800},
	}

	summary := c.usageSummary(models.LegacyInternetUsage{}, usage, nil)

	assert.Equal(t, 30, summary.PeriodLengthDays)
	assert.Equal(t, 100.0, summary.PeriodUsedPercentage)
}

func TestUsageSummary_UnknownIncludedVolume(t *testing.T) {
	c := New(nil, "nl", logger.Nop())
	c.now = func() time.Time {
		return time.Date(2023, 6, 2, 6, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	}

	// no spec cap and the usage record reports no included volume either
	usage := models.PeriodUsage{
		PeriodStart: "2023-05-18T00:00:00.0+0200",
		PeriodEnd:   "2023-06-17T00:00:00.0+0200",
		TotalUsage:  models.TotalUsage{Peak: 104857600, OffPeak: 209715200, Wifree: 52428800},
	}

	summary := c.usageSummary(models.LegacyInternetUsage{}, usage, nil)

	assert.Zero(t, summary.IncludedVolume)
	assert.Zero(t, summary.UsagePercentage)
	assert.Equal(t, 300.0, summary.TotalUsageWithOffPeak)

	// an unguarded division would leave Inf here and break marshalling
	_, err := json.Marshal(summary)
	require.NoError(t, err)
}

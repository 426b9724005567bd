// SPDX-License-Identifier: Apache-2.0

// Package collect assembles a [models.Data] snapshot from the Telenet API.
//
// A Collector walks the customer's products and queries usage, devices and
// billing through the [adapter.OCAPI] surface. Which endpoints serve the
// data depends on the billing backend the account lives on: TELENET_LEGACY
// accounts use the scope-based legacy endpoint, NETCRACKER accounts the
// per-service endpoints.
package collect

import (
	"context"
	"strings"
	"time"

	"github.com/sbogaerts/telenet-go/internal/adapter"
	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/models"
)

// Collector builds data snapshots over an authenticated session. It caches
// product spec documents for the lifetime of the collector, so bundles
// sharing a spec are fetched once.
//
// A Collector is single-owner, like the session it wraps.
type Collector struct {
	api      adapter.OCAPI
	language string

	specs map[string]models.ProductSpecResponse
	now   func() time.Time

	log *logger.Logger
}

// New constructs a Collector querying api, resolving localized product
// names for language.
func New(api adapter.OCAPI, language string, log *logger.Logger) *Collector {
	if log == nil {
		log = logger.Nop()
	}
	return &Collector{
		api:      api,
		language: language,
		specs:    map[string]models.ProductSpecResponse{},
		now:      time.Now,
		log:      log.GetChildLogger("collect"),
	}
}

// Collect builds a fresh snapshot for the given user. The snapshot always
// starts empty; nothing of a previous collection survives.
func (c *Collector) Collect(ctx context.Context, details models.UserDetails) (models.Data, error) {
	data := models.NewData()
	data.TelenetSystem = details.BSSSystem
	data.UserDetails = details

	switch details.BSSSystem {
	case models.BSSTelenetLegacy:
		if err := c.collectLegacy(ctx, &data); err != nil {
			return models.Data{}, err
		}
	case models.BSSNetcracker:
		if err := c.collectNetcracker(ctx, &data); err != nil {
			return models.Data{}, err
		}
	default:
		c.log.Warn().Str("bss_system", details.BSSSystem).Msg("unknown billing backend, returning bare snapshot")
	}

	return data, nil
}

// walkProduct handles one product listing, recursing into bundle children
// first. For legacy accounts the product label prefix selects the detail
// collector; Netcracker products are stored with their condensed specs.
func (c *Collector) walkProduct(ctx context.Context, data *models.Data, bss string, product models.ProductListing, isChild bool) error {
	if product.ProductType == "bundle" && len(product.Children) > 0 {
		for _, child := range product.Children {
			if err := c.walkProduct(ctx, data, bss, child, true); err != nil {
				return err
			}
		}
	}

	specs, err := c.productSpecs(ctx, product.SpecURL, isChild)
	if err != nil {
		return err
	}

	c.log.Debug().
		Str("identifier", product.Identifier).
		Str("product_type", product.ProductType).
		Str("label", product.Label).
		Msg("product")

	if bss == models.BSSTelenetLegacy {
		switch kind, _, _ := strings.Cut(product.Label, "."); kind {
		case "internet":
			return c.legacyInternet(ctx, data, specs)
		case "tv":
			return c.legacyTV(ctx, data)
		}
		return nil
	}

	data.Products[product.Identifier] = models.Product{Specs: specs}
	return nil
}

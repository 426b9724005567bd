package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"

	"github.com/sbogaerts/telenet-go/models"
)

// collectNetcracker walks the active products of a NETCRACKER account and
// stores each with its condensed spec.
func (c *Collector) collectNetcracker(ctx context.Context, data *models.Data) error {
	params := url.Values{}
	params.Set("status", "ACTIVE,ACTIVATION_IN_PROGRESS")

	raw, err := c.api.Service(ctx, "product", "products", 1, params)
	if err != nil {
		return err
	}

	var products []models.ProductListing
	if err = json.Unmarshal(raw, &products); err != nil {
		return fmt.Errorf("decode products: %w", err)
	}

	for _, product := range products {
		if err = c.walkProduct(ctx, data, models.BSSNetcracker, product, false); err != nil {
			return err
		}
	}

	return nil
}

// productSpecs fetches and condenses the spec document behind specURL.
// Documents are cached per product identifier (the last path segment of
// the spec URL), so bundle members sharing a spec cost one request.
//
// Child products of a bundle carry no price of their own; their price
// fields are left empty.
func (c *Collector) productSpecs(ctx context.Context, specURL string, isChild bool) (*models.ProductSpecs, error) {
	if specURL == "" {
		return nil, nil
	}

	parsed, err := url.Parse(specURL)
	if err != nil {
		return nil, fmt.Errorf("parse specurl %q: %w", specURL, err)
	}
	product := path.Base(parsed.Path)

	specResp, ok := c.specs[product]
	if !ok {
		raw, err := c.api.Fetch(ctx, specURL)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(raw, &specResp); err != nil {
			return nil, fmt.Errorf("decode product spec %s: %w", product, err)
		}
		c.specs[product] = specResp
	}

	spec := specResp.Product
	specs := &models.ProductSpecs{
		IncludedVolume: spec.Characteristics.ServiceCategoryLimit,
		ProductType:    spec.ProductType,
	}
	if !isChild {
		specs.Price = spec.Characteristics.SalesPriceVATIncl
		specs.PriceType = spec.PriceType
	}
	for _, content := range spec.LocalizedContent {
		if content.Locale == c.language {
			specs.Name = content.Name
		}
	}

	return specs, nil
}

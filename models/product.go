package models

import "encoding/json"

// ProductListing is one element of a product list, as returned both by the
// Netcracker product-service and by the legacy customerproductholding scope.
type ProductListing struct {
	Identifier            string           `json:"identifier"`
	ProductType           string           `json:"productType,omitempty"`
	Label                 string           `json:"label,omitempty"`
	SpecURL               string           `json:"specurl,omitempty"`
	CustomerProductID     string           `json:"customerproductid,omitempty"`
	AccountNumber         string           `json:"accountnumber,omitempty"`
	RateClassDescription  string           `json:"rateclassdescription,omitempty"`
	Children              []ProductListing `json:"children,omitempty"`
}

// ProductSpecResponse is the payload served by a product's specurl.
type ProductSpecResponse struct {
	Product ProductSpec `json:"product"`
}

// ProductSpec is the raw product specification.
type ProductSpec struct {
	ProductType      string                 `json:"producttype"`
	PriceType        string                 `json:"priceType,omitempty"`
	Characteristics  ProductCharacteristics `json:"characteristics"`
	LocalizedContent []LocalizedContent     `json:"localizedcontent"`
}

// ProductCharacteristics holds the spec characteristics the client reads.
// Both members are optional on the wire.
type ProductCharacteristics struct {
	ServiceCategoryLimit *ServiceCategoryLimit `json:"service_category_limit,omitempty"`
	SalesPriceVATIncl    json.RawMessage       `json:"salespricevatincl,omitempty"`
}

// ServiceCategoryLimit is the included volume of a capped subscription.
type ServiceCategoryLimit struct {
	Value json.Number `json:"value"`
	Unit  string      `json:"unit,omitempty"`
}

// LocalizedContent is a translated product description.
type LocalizedContent struct {
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

// ProductSpecs is the condensed specification stored on a product entry,
// reduced from [ProductSpec] for the client's language.
type ProductSpecs struct {
	IncludedVolume *ServiceCategoryLimit `json:"included_volume,omitempty"`
	ProductType    string                `json:"producttype"`
	Price          json.RawMessage       `json:"price,omitempty"`
	PriceType      string                `json:"priceType,omitempty"`
	Name           string                `json:"name,omitempty"`
}

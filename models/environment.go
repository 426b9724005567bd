package models

// Environment describes the set of Telenet endpoints a client talks to.
// All fields are base URLs without a trailing slash, except Referer and
// XAltReferer which are sent verbatim as browser-mimicking headers.
type Environment struct {
	// OCAPI is the root of the customer API.
	OCAPI string `json:"ocapi"`

	// OCAPIPublic serves the legacy (TELENET_LEGACY) service endpoint,
	// queried as GET {OCAPIPublic}/?p=<scope,scope,...>.
	OCAPIPublic string `json:"ocapi_public"`

	// OCAPIPublicAPI serves the Netcracker service endpoints, queried as
	// GET {OCAPIPublicAPI}/<service>-service/v<version>/<method>.
	OCAPIPublicAPI string `json:"ocapi_public_api"`

	// OCAPIOAuth hosts the authenticated user endpoints, most notably
	// GET {OCAPIOAuth}/userdetails.
	OCAPIOAuth string `json:"ocapi_oauth"`

	// OpenID is the base of the OpenID Connect provider used for the
	// interactive login handshake.
	OpenID string `json:"openid"`

	// Referer is sent as the Referer header on every request.
	Referer string `json:"referer"`

	// XAltReferer is sent as the x-alt-referer header on every request.
	XAltReferer string `json:"x_alt_referer"`
}

// DefaultEnvironment returns the production Telenet environment.
func DefaultEnvironment() Environment {
	return Environment{
		OCAPI:          "https://api.prd.telenet.be/ocapi",
		OCAPIPublic:    "https://api.prd.telenet.be/ocapi/public",
		OCAPIPublicAPI: "https://api.prd.telenet.be/ocapi/public/api",
		OCAPIOAuth:     "https://api.prd.telenet.be/ocapi/oauth",
		OpenID:         "https://login.prd.telenet.be/openid",
		Referer:        "https://www2.telenet.be/residential/nl/mijn-telenet",
		XAltReferer:    "https://www2.telenet.be/",
	}
}

// DefaultLanguage is used when no (or an unknown) language is configured.
const DefaultLanguage = "en"

// Languages lists the response languages supported by the Telenet API.
var Languages = []string{"en", "nl", "fr"}

// ValidLanguage reports whether lang is one of the supported language codes.
func ValidLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

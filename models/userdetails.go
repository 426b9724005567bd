package models

// Billing backends a customer account can live on.
const (
	BSSTelenetLegacy = "TELENET_LEGACY"
	BSSNetcracker    = "NETCRACKER"
)

// UserDetails is the authenticated user record returned by the
// {ocapi_oauth}/userdetails endpoint after a successful login.
type UserDetails struct {
	// CustomerNumber is the Telenet customer identifier. Its presence is
	// the signal that the login handshake actually succeeded; the endpoint
	// answers 200 with a partial body for half-established sessions.
	CustomerNumber string `json:"customer_number"`

	// FirstName and LastName identify the account holder.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// BSSSystem selects the billing backend this customer lives on and
	// therefore which API surface serves their data. Known values are
	// "TELENET_LEGACY" and "NETCRACKER".
	BSSSystem string `json:"bss_system,omitempty"`

	// Scopes lists the legacy services this session may query. The session
	// keeps them separately; they are stripped from the stored user details.
	Scopes []string `json:"scopes,omitempty"`
}

// Package auth defines the verified identity claim produced by an external
// identity provider. Verification itself lives in adapter/provider.
package auth

// Claim is the verified {subject, email, name} tuple for a request. It is
// the only identity input the rest of the system trusts; how the token was
// verified is the provider adapter's concern.
type Claim struct {
	Subject string
	Email   string
	Name    string
}

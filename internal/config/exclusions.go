package config

// DefaultExcludeDomains returns a curated list of domains that should never
// appear in reports or prompts sent to an LLM. These cover banking, password
// managers, authentication providers, and other sensitive services.
func DefaultExcludeDomains() []string {
	return []string{
		// Banking & Financial
		"chase.com",
		"bankofamerica.com",
		"wellsfargo.com",
		"fidelity.com",
		"vanguard.com",
		"paypal.com",
		"venmo.com",

		// Password Managers
		"1password.com",
		"lastpass.com",
		"bitwarden.com",
		"dashlane.com",

		// Authentication & Identity
		"accounts.google.com",
		"login.microsoftonline.com",
		"auth0.com",
		"okta.com",

		// Healthcare & Government
		"mychart.com",
		"healthcare.gov",
		"irs.gov",
		"ssa.gov",
	}
}

package configs

// GoogleAds configures the Google Ads REST metrics source. Per-account
// OAuth2 credentials and developer tokens live on the ad account records.
type GoogleAds struct {
	BaseURL    string `env:"BASE_URL" envDefault:"https://googleads.googleapis.com"`
	APIVersion string `env:"API_VERSION" envDefault:"v17"`
	// TokenURL overrides the Google OAuth2 token endpoint.
	TokenURL string `env:"TOKEN_URL"`
	// LoginCustomerID is sent as login-customer-id when accounts are
	// accessed through a manager account.
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	// FixtureFile replaces the live API with a YAML file of raw rows.
	FixtureFile string `env:"FIXTURE_FILE"`
}

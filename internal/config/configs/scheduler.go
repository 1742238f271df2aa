package configs

// Scheduler configures the daily aggregation job. Spec is a standard
// five-field cron expression evaluated in UTC.
type Scheduler struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Spec    string `env:"SPEC" envDefault:"0 3 * * *"`
}

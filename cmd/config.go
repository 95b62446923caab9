package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AutopilotAutostart        bool
	AutopilotIntervalMinutes  int
	EscalationCooldownMinutes int
	PriceUpperBoundEUR        float64
	PriceLowerBoundEUR        float64
	SyncLocalOnStartup        bool
	SyncLocalEachRun          bool
}

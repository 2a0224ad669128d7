package config

import "time"

type Currency struct {
	APIKey        string        `env:"CURRENCY_API_KEY" json:"-"`
	FreeURL       string        `env:"CURRENCY_API_URL" envDefault:"https://free.currconv.com/api/v7/convert"`
	PremiumURL    string        `env:"CURRENCY_API_PREMIUM_URL" envDefault:"https://api.currconv.com/api/v8/convert"`
	BackupURL     string        `env:"CURRENCY_BACKUP_API_URL" envDefault:"https://api.exchangerate-api.com/v4/latest"`
	HTTPTimeout   time.Duration `env:"CURRENCY_HTTP_TIMEOUT" envDefault:"10s"`
	RetryAttempts uint          `env:"CURRENCY_RETRY_ATTEMPTS" envDefault:"2"`
	RateTTL       time.Duration `env:"CURRENCY_RATE_TTL" envDefault:"5m"`
}

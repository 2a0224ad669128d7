package config

// Redis is optional: without REDIS_ADDRESS rates are cached in process and
// the refresh worker does not run.
type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNECTIONS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNECTIONS" envDefault:"5"`
	KeyPrefix          string `env:"REDIS_KEY_PREFIX" envDefault:"numconv:"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}

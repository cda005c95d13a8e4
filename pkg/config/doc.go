// Package config loads configuration structs from environment variables.
//
// It reads an optional .env file once per process, then parses `env` struct
// tags. Unlike a service-wide config registry, nothing is cached per type:
// the client is constructed once and owns its configuration afterwards.
//
//	type Config struct {
//		APIKey  string        `env:"PAYKIT_API_KEY,required"`
//		Timeout time.Duration `env:"PAYKIT_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle
//	}
package config

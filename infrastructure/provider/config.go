package provider

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL string        `envconfig:"PROVIDER_BASE_URL" default:"http://localhost:8088"`
	Timeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
	// PROVIDER_DEBUG dumps every request and response
	Debug bool `envconfig:"PROVIDER_DEBUG" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

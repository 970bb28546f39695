package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Largest snapshot document the viewer accepts, in bytes.
	MaxSnapshotBytes int64 `env:"MAX_SNAPSHOT_BYTES" envDefault:"1048576"`

	// Observer used when a request does not name one.
	DefaultUserID string `env:"DEFAULT_USER_ID"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}

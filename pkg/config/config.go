package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"file"`
	DataDir        string `envconfig:"DATA_DIR" default:"./data"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword  string `envconfig:"REDIS_PASSWORD" default:""`
	MongoURI       string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase  string `envconfig:"MONGO_DATABASE" default:"storefront"`
	// InstantSimulation zeroes the gateway and auth delays, for local poking.
	InstantSimulation bool `envconfig:"INSTANT_SIMULATION" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

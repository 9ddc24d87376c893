package internal

import (
	"fmt"

	"presence-lab/domain/presence"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel     string `env:"LOG_LEVEL,default=INFO"`
	SnapshotPath string `env:"SNAPSHOT_PATH"`
	CaseMapping  string `env:"CASEMAPPING,default=rfc1459"`
	Colours      bool   `env:"COLOURS,default=true"`
}

// LoadConfig reads the environment, a .env file in the working directory
// being loaded first when present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func (c Config) Mapping() (presence.CaseMapping, error) {
	return presence.ParseCaseMapping(c.CaseMapping)
}

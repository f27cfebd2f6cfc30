package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	SMTP     SMTP
	Bot      Bot
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"farm-to-table"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Bot configures the optional ops alert bot. When the token is empty
// delivery failures are only logged.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

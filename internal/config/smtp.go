package config

import "time"

type SMTP struct {
	Host            string        `env:"SMTP_HOST,notEmpty"`
	Port            string        `env:"SMTP_PORT" envDefault:"465"`
	Username        string        `env:"SMTP_USERNAME,notEmpty"`
	Password        string        `env:"SMTP_PASSWORD,notEmpty" json:"-"`
	From            string        `env:"SMTP_FROM"`
	DeliveryTimeout time.Duration `env:"SMTP_DELIVERY_TIMEOUT" envDefault:"10s"`
}

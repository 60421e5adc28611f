package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT"`
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`

	// RunAddress собирается из Port
	RunAddress string `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.Port, "p", cfg.Port, "порт HTTP-сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.Float64Var(&cfg.RateLimitRPS, "rate-rps", cfg.RateLimitRPS, "лимит запросов в секунду на IP для /create-user и /login")
	flag.IntVar(&cfg.RateLimitBurst, "rate-burst", cfg.RateLimitBurst, "burst лимитера")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// порт: только число, иначе откат на 3000
	portRe := regexp.MustCompile(`^\d{1,5}$`)
	if !portRe.MatchString(cfg.Port) {
		cfg.Port = "3000"
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 5
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 10
	}

	cfg.RunAddress = ":" + cfg.Port

	return cfg
}

package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server      Server
	Analytics   Analytics
	TelegramBot TelegramBot
	Scheduler   Scheduler
}

type Server struct {
	Addr        string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	// Leagues offered by the dashboard filter, as id:name pairs.
	Leagues map[string]string `envconfig:"LEAGUES" default:"39:Premier League,71:Brasileirão Série A,140:La Liga"`
}

type Analytics struct {
	BaseURL         string        `envconfig:"ANALYTICS_BASE_URL" required:"true"`
	Timeout         time.Duration `envconfig:"ANALYTICS_TIMEOUT" default:"10s"`
	PredictionDelay time.Duration `envconfig:"PREDICTION_DELAY" default:"1s"`
	AlertTTL        time.Duration `envconfig:"ALERT_TTL" default:"5s"`
	// ViewTTL is how long an untouched page, chat or job view is kept.
	ViewTTL time.Duration `envconfig:"VIEW_TTL" default:"30m"`
}

// TelegramBot is optional; the bot is not started when Token is empty.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type Scheduler struct {
	Enabled         bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Location        string        `envconfig:"SCHEDULER_LOCATION" default:"America/Sao_Paulo"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"0"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

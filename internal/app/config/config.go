package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	InternalToken   string `envconfig:"INTERNAL_TOKEN" required:"true"`
	CORSAllowOrigin string `envconfig:"CORS_ALLOW_ORIGIN" default:"*"`

	Locale         string `envconfig:"LOCALE" default:"pt-BR"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"R$"`

	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

func MustLoad() Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)
	return cfg
}

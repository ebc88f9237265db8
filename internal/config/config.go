package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Gemini   Gemini   `mapstructure:",squash"`
	Stripe   Stripe   `mapstructure:",squash"`
	Resend   Resend   `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	URL      string `mapstructure:"app_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Gemini struct {
	APIKey      string        `mapstructure:"gemini_api_key"`
	Model       string        `mapstructure:"gemini_model"`
	Temperature float32       `mapstructure:"gemini_temperature"`
	Timeout     time.Duration `mapstructure:"gemini_timeout"`
}

type Stripe struct {
	SecretKey          string `mapstructure:"stripe_secret_key"`
	WebhookSecret      string `mapstructure:"stripe_webhook_secret"`
	PriceStarterMonth  string `mapstructure:"stripe_price_starter_monthly"`
	PriceStarterAnnual string `mapstructure:"stripe_price_starter_annual"`
	PriceProMonth      string `mapstructure:"stripe_price_pro_monthly"`
	PriceProAnnual     string `mapstructure:"stripe_price_pro_annual"`
}

type Resend struct {
	APIKey string `mapstructure:"resend_api_key"`
	From   string `mapstructure:"resend_from"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_URL", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cashpulse?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.4)
	viper.SetDefault("GEMINI_TIMEOUT", "25s")

	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_PRICE_STARTER_MONTHLY", "")
	viper.SetDefault("STRIPE_PRICE_STARTER_ANNUAL", "")
	viper.SetDefault("STRIPE_PRICE_PRO_MONTHLY", "")
	viper.SetDefault("STRIPE_PRICE_PRO_ANNUAL", "")

	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("RESEND_FROM", "CashPulse <hello@cashpulse.app>")

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	// .env is optional: deployed environments inject variables directly
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment only: ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.App.URL = strings.TrimRight(config.App.URL, "/")
	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not read working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: loaded .env from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using process environment")
}

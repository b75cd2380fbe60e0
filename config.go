package eamvu

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Per-environment base URLs. Development points at the Android emulator's
// host loopback alias (10.0.2.2 reaches the host machine's localhost).
var environmentBaseURLs = map[string]string{
	"development": "http://10.0.2.2:5000",
	"staging":     "https://ilos-staging.vercel.app",
	"production":  "https://ilos-backend.vercel.app",
}

// Config is static for the process lifetime; there is no hot reload or
// remote config fetch.
type Config struct {
	Environment  string `mapstructure:"ENVIRONMENT"`
	APIBaseURL   string `mapstructure:"API_BASE_URL"`
	APITimeoutMS int    `mapstructure:"API_TIMEOUT_MS"`
	Debug        bool   `mapstructure:"DEBUG"`
}

func LoadConfig() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("API_BASE_URL", "")
	viper.SetDefault("API_TIMEOUT_MS", 30000)
	viper.SetDefault("DEBUG", true)

	// A missing .env is fine; environment variables and defaults still apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	c := Config{}
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}

	if c.APIBaseURL == "" {
		c.APIBaseURL = environmentBaseURLs[c.Environment]
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = environmentBaseURLs["development"]
	}

	return c, nil
}

func (c Config) Timeout() time.Duration {
	if c.APITimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.APITimeoutMS) * time.Millisecond
}

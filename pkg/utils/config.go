package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Payment PaymentConfig
	Session SessionConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type PaymentConfig struct {
	KeyID          string
	CallbackPort   string
	ScriptWaitSecs int
	PollIntervalMS int
}

type SessionConfig struct {
	TokenPath   string
	TokenSecret string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "homestay-client")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CHECKOUT_CALLBACK_PORT", "7319")
	viper.SetDefault("CHECKOUT_WAIT_SECONDS", 30)
	viper.SetDefault("CHECKOUT_POLL_INTERVAL_MS", 100)
	viper.SetDefault("TOKEN_PATH", ".homestay/token")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("API_TIMEOUT_SECONDS"),
		},
		Payment: PaymentConfig{
			KeyID:          viper.GetString("RAZORPAY_KEY_ID"),
			CallbackPort:   viper.GetString("CHECKOUT_CALLBACK_PORT"),
			ScriptWaitSecs: viper.GetInt("CHECKOUT_WAIT_SECONDS"),
			PollIntervalMS: viper.GetInt("CHECKOUT_POLL_INTERVAL_MS"),
		},
		Session: SessionConfig{
			TokenPath:   viper.GetString("TOKEN_PATH"),
			TokenSecret: viper.GetString("TOKEN_SECRET"),
		},
	}

	return config, nil
}

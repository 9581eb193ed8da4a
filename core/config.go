package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds all runtime configuration for the client.
	Config struct {
		Debug        bool
		TestMode     bool
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		AppName      string
		RollbarToken string

		API      APIConfig
		Realtime RealtimeConfig
		Features FeatureFlags
	}

	APIConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	// RealtimeConfig configures the push-notification channel.
	// Host and Key are required; Port defaults to 8080.
	RealtimeConfig struct {
		Broadcaster string
		Key         string
		Host        string
		Port        int
		TLS         bool
	}

	// FeatureFlags toggles optional wiring steps at bootstrap.
	FeatureFlags struct {
		EnableRealtime bool
		EnableSpinner  bool
		EnableColor    bool
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Siakad")
	conf.SetDefault("build", "dev")
	conf.SetDefault("apiBaseUrl", "http://localhost:8000/api")
	conf.SetDefault("apiTimeout", 30*time.Second)
	conf.SetDefault("realtimeBroadcaster", "pusher")
	conf.SetDefault("realtimePort", 8080)
	conf.SetDefault("realtimeTls", false)
	conf.SetDefault("enableRealtime", false)
	conf.SetDefault("enableSpinner", true)
	conf.SetDefault("enableColor", true)

	env := os.Getenv("ENV")
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     testMode,
		Env:          env,
		Build:        conf.GetString("build"),
		AppName:      conf.GetString("appName"),
		RollbarToken: conf.GetString("rollbarToken"),
		API: APIConfig{
			BaseURL: strings.TrimRight(conf.GetString("apiBaseUrl"), "/"),
			Timeout: conf.GetDuration("apiTimeout"),
		},
		Realtime: RealtimeConfig{
			Broadcaster: conf.GetString("realtimeBroadcaster"),
			Key:         conf.GetString("realtimeKey"),
			Host:        conf.GetString("realtimeHost"),
			Port:        conf.GetInt("realtimePort"),
			TLS:         conf.GetBool("realtimeTls"),
		},
		Features: FeatureFlags{
			EnableRealtime: conf.GetBool("enableRealtime"),
			EnableSpinner:  conf.GetBool("enableSpinner"),
			EnableColor:    conf.GetBool("enableColor"),
		},
	}
}

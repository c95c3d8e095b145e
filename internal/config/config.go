package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is the server runtime configuration: defaults, overridden by an
// optional shipline.yaml next to the binary, overridden by SHIPLINE_* env.
type Config struct {
	Port        string
	SavePath    string
	LogLevel    string
	BalancePath string
}

func setDefaults() {
	viper.SetDefault("port", "4000")
	viper.SetDefault("savePath", "data/savegame.json")
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("balancePath", "")
}

// Load reads the configuration. A missing config file is fine; defaults and
// environment cover everything.
func Load() (Config, error) {
	setDefaults()

	viper.SetConfigName("shipline")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("shipline")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return Config{
		Port:        viper.GetString("port"),
		SavePath:    viper.GetString("savePath"),
		LogLevel:    viper.GetString("logLevel"),
		BalancePath: viper.GetString("balancePath"),
	}, nil
}

// ZerologLevel maps the configured level string onto zerolog's levels,
// defaulting to info.
func ZerologLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

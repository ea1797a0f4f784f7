package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the runtime settings for every mode of the binary.
type Config struct {
	ServerAddr  string `mapstructure:"SERVER_ADDR"`
	BoardSize   int    `mapstructure:"BOARD_SIZE"`
	SearchDepth int    `mapstructure:"SEARCH_DEPTH"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	MatchGames  int    `mapstructure:"MATCH_GAMES"`
	ResultsDir  string `mapstructure:"RESULTS_DIR"`
}

// Setup loads configuration from the given file (optional) with
// environment variables taking precedence over file values and defaults
// filling the rest.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("BOARD_SIZE", 7)
	v.SetDefault("SEARCH_DEPTH", 6)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MATCH_GAMES", 10)
	v.SetDefault("RESULTS_DIR", "results")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	Debug             bool
	MaxNodeExecutions int
	GenerationDelay   time.Duration
	RunTimeout        time.Duration
}

// loadConfig resolves CLI configuration from, in increasing precedence:
// defaults, an optional config file, NODECANVAS_* environment variables,
// and flags.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()

	v.SetDefault("debug", false)
	v.SetDefault("max_node_executions", 1000)
	v.SetDefault("generation_delay", "50ms")
	v.SetDefault("run_timeout", "60s")

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return Config{}, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".nodecanvas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("NODECANVAS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && configPath != "" {
			return Config{}, err
		}
	}

	config := Config{
		Debug:             v.GetBool("debug"),
		MaxNodeExecutions: v.GetInt("max_node_executions"),
		GenerationDelay:   v.GetDuration("generation_delay"),
		RunTimeout:        v.GetDuration("run_timeout"),
	}

	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		config.Debug = true
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	return config, nil
}

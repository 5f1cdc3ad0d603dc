package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the miner.
// Values are read by viper from a config file or environment variables.
type Config struct {
	// SlackAPIToken authenticates the search and identity calls. Required.
	SlackAPIToken string `mapstructure:"SLACK_API_TOKEN"`

	// OpenAIAPIToken enables the AI-assisted writer. When empty, the
	// deterministic rule-based writer is used instead.
	OpenAIAPIToken string `mapstructure:"OPEN_AI_API_TOKEN"`

	// Channel is the default channel to mine.
	Channel string `mapstructure:"CHANNEL"`

	// GoldReaction is the emoji marking hand-picked messages.
	GoldReaction string `mapstructure:"GOLD_REACTION"`

	// AuthorsFile points to the YAML author directory. Optional; without
	// it every author link falls back to the placeholder.
	AuthorsFile string `mapstructure:"AUTHORS_FILE"`

	// ArchivePath is the BadgerDB directory for packed batches. Empty
	// disables archiving.
	ArchivePath string `mapstructure:"ARCHIVE_PATH"`

	// DigestAuthor fills the front-matter author key of the digest.
	DigestAuthor string `mapstructure:"DIGEST_AUTHOR"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults double as key registrations so AutomaticEnv picks the
	// values up even without a config file.
	viper.SetDefault("SLACK_API_TOKEN", "")
	viper.SetDefault("OPEN_AI_API_TOKEN", "")
	viper.SetDefault("CHANNEL", "dev")
	viper.SetDefault("GOLD_REACTION", "rupee-gold")
	viper.SetDefault("AUTHORS_FILE", "")
	viper.SetDefault("ARCHIVE_PATH", "")
	viper.SetDefault("DIGEST_AUTHOR", "")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; environment variables still apply.
	}

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if config.SlackAPIToken == "" {
		return Config{}, fmt.Errorf("SLACK_API_TOKEN is not set")
	}

	return config, nil
}

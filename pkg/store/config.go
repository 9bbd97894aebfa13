package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Configuration keys understood by the config file, EMOJISEL_* environment
// variables and the command line flags bound onto them.
const (
	KeyPath          = "path"
	KeyTheme         = "theme"
	KeyCategory      = "category"
	KeyTabs          = "tabs"
	KeySearch        = "search"
	KeyHistory       = "history"
	KeyTitles        = "titles"
	KeyColumns       = "columns"
	KeyPlaceholder   = "placeholder"
	KeyLocale        = "locale"
	KeyStrictHistory = "strict_history"
)

type Config interface {
	BasePath() string
	ConfigFile() string
}

// LoadConfig reads the .emojisel config file, if any, from EMOJISEL_CONFIG_PATH,
// the working directory or the home directory and returns the resolved store
// location.
func LoadConfig() (Config, error) {
	viper.SetDefault(KeyPath, "~/.emojisel.db")
	viper.SetDefault(KeyTheme, "#007AFF")
	viper.SetDefault(KeyCategory, "all")
	viper.SetDefault(KeyTabs, true)
	viper.SetDefault(KeySearch, true)
	viper.SetDefault(KeyHistory, false)
	viper.SetDefault(KeyTitles, true)
	viper.SetDefault(KeyColumns, 6)
	viper.SetDefault(KeyPlaceholder, "Search...")
	viper.SetDefault(KeyLocale, "en-US")
	viper.SetDefault(KeyStrictHistory, false)

	viper.SetConfigName(".emojisel") // .yaml is implicit
	viper.SetEnvPrefix("EMOJISEL")
	viper.AutomaticEnv()

	if override := os.Getenv("EMOJISEL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path, File: viper.ConfigFileUsed()}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) ConfigFile() string {
	return f.File
}

// StaticConfig is a Config with a fixed base path.
type StaticConfig string

func (s StaticConfig) BasePath() string {
	return string(s)
}

func (s StaticConfig) ConfigFile() string {
	return ""
}

package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultTranslateURL is the translation endpoint used when none is configured.
const DefaultTranslateURL = "https://ftapi.pythonanywhere.com/translate"

// Settings is the resolved questnote configuration.
type Settings struct {
	Path             string
	WeekStart        string
	TranslateURL     string
	TranslateTimeout time.Duration
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// DefaultSettings is the configuration used when nothing is set.
func DefaultSettings() *Settings {
	path, err := homedir.Expand("~/.questnote.db")
	if err != nil {
		path = ".questnote.db"
	}
	return &Settings{
		Path:             path,
		WeekStart:        "sunday",
		TranslateURL:     DefaultTranslateURL,
		TranslateTimeout: 30 * time.Second,
	}
}

// LoadConfig reads .questnote from $QUESTNOTE_CONFIG_PATH or the working
// directory, layered under QUESTNOTE_* environment variables.
func LoadConfig() (*Settings, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (*Settings, error) {
	v.SetDefault("path", "~/.questnote.db")
	v.SetDefault("week_start", "sunday")
	v.SetDefault("translate.url", DefaultTranslateURL)
	v.SetDefault("translate.timeout", 30*time.Second)
	v.SetConfigName(".questnote") // .yaml is implicit
	v.SetEnvPrefix("QUESTNOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("QUESTNOTE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &Settings{
		Path:             path,
		WeekStart:        v.GetString("week_start"),
		TranslateURL:     v.GetString("translate.url"),
		TranslateTimeout: v.GetDuration("translate.timeout"),
	}, nil
}

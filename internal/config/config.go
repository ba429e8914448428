package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DATABROWSER_API_BASE_URL.
const EnvPrefix = "DATABROWSER"

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
	Log LogConfig
}

// APIConfig describes the remote endpoint.
type APIConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	StrictStatus bool          `mapstructure:"strict_status"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type UIConfig struct {
	Theme   string `mapstructure:"theme"`
	NoColor bool   `mapstructure:"no_color"`
}

// LogConfig selects the diagnostic channel. An empty File picks a default
// per mode (see logging.New).
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://jsonplaceholder.typicode.com")
	v.SetDefault("api.strict_status", false)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads configuration from defaults, the optional TOML file and the
// environment. path overrides the file location; otherwise $DATABROWSER_CONFIG
// and then ~/.config/databrowser/config.toml are tried.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "databrowser"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default file is fine; a missing or broken explicit one is not.
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

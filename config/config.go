// Package config loads the ambient settings for the non-core
// collaborators (the pitaya remote component, its logger, the LUT cache
// directory). The decompose core itself is config-free.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config mirrors matchbase.Config's style: a flat struct with yaml tags,
// loaded through a dedicated *viper.Viper instance.
type Config struct {
	ServerID    string `yaml:"server_id" mapstructure:"server_id"`
	ListenAddr  string `yaml:"listen_addr" mapstructure:"listen_addr"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	LutCacheDir string `yaml:"lut_cache_dir" mapstructure:"lut_cache_dir"`
	LutPrewarm  bool   `yaml:"lut_prewarm" mapstructure:"lut_prewarm"`
}

// Loader wraps the viper instance, analogous to matchbase.Match holding
// its own Viper field rather than relying on viper's package-level
// globals.
type Loader struct {
	Viper *viper.Viper
}

// NewLoader creates a Loader and reads file into it.
func NewLoader(file string) (*Loader, error) {
	l := &Loader{Viper: viper.New()}
	if err := l.initConfig(file); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loader) initConfig(file string) error {
	l.Viper.SetConfigType("yaml")
	l.Viper.SetConfigFile(file)
	return l.Viper.ReadInConfig()
}

// Load reads file and unmarshals it into a Config, applying defaults
// for anything the file omits.
func Load(file string) (Config, error) {
	l, err := NewLoader(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := l.Viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default returns the settings used when no config file is supplied; Load
// starts from these and overrides whatever the file sets.
func Default() Config {
	return Config{
		ServerID:    "decompose-1",
		ListenAddr:  ":3250",
		LogLevel:    "info",
		LutCacheDir: "./lutcache",
		LutPrewarm:  true,
	}
}

package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	configName = ".build-templates"
	configType = "yaml"
	envPrefix  = "BUILDTEMPLATES"
)

// Config holds the settings shared by the test suites in this module.
type Config struct {
	Verbose int  `mapstructure:"verbose"`
	NoColor bool `mapstructure:"no-color"`
}

// Load reads the optional .build-templates.yaml in the working directory and
// BUILDTEMPLATES_* environment variables. The file is never created.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	return LoadFrom(v)
}

// LoadFrom applies defaults and environment bindings to v and decodes it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("verbose", 0)
	v.SetDefault("no-color", false)

	// a key like no-color binds to BUILDTEMPLATES_NO_COLOR
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	return &cfg, nil
}

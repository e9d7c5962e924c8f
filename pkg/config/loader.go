package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config package should avoid importing any other base58 packages in order to
// prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.base58/"

	// name for the config file. Does not include extension.
	configFileName = "base58"
)

var r *Registry

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	General generalConfiguration
	Logger  loggerConfiguration
}

// Load makes an attempt to read and unmarshal any configs from env and the
// base58 config file.
//
// It uses the following precedence order. Each item takes precedence over the
// item below it:
//  - env
//  - config
//  - default
//
// The configuration file can be in form of TOML, JSON, YAML, HCL or Java
// properties config files
func Load(confFile string) error {
	r = new(Registry)

	return r.init(confFile)
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

func (r *Registry) init(confFile string) error {
	viper.Reset()

	// Make an attempt to find base58.toml/base58.json/base58.yaml in any of
	// the provided paths below
	viper.SetConfigName(configFileName)

	// search paths
	viper.AddConfigPath(searchPath1)
	viper.AddConfigPath(searchPath2)

	// confFile from the command line takes precedence over the search paths
	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)
	}

	defineDefaults()
	defineENV()

	if err := viper.ReadInConfig(); err != nil {
		// The tool must be able to run without any config file around. Only
		// an explicitly requested file is mandatory.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("Error reading config file: %s", err)
		}
	}

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := viper.Unmarshal(r); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	r.UsedConfigFile = viper.ConfigFileUsed()

	return nil
}

func defineDefaults() {
	viper.SetDefault("general.alphabet", "bitcoin")
	viper.SetDefault("logger.level", "warn")
	viper.SetDefault("logger.format", "text")
	viper.SetDefault("logger.output", "stderr")
}

// define a set of environment variables as bindings to config file settings
func defineENV() {
	// Bind config key general.alphabet to ENV var BASE58_GENERAL_ALPHABET
	if err := viper.BindEnv("general.alphabet", "BASE58_GENERAL_ALPHABET"); err != nil {
		fmt.Printf("defineENV %v", err)
	}

	if err := viper.BindEnv("logger.level", "BASE58_LOGGER_LEVEL"); err != nil {
		fmt.Printf("defineENV %v", err)
	}
}

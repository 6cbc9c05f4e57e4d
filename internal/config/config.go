package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yuuki/foldergen/internal/logging"
)

const (
	envPrefix         = "FOLDERGEN"
	defaultConfigName = "foldergen"
	defaultFolderName = "my_temp_python_folder"
	defaultLogLevel   = logging.DefaultLevel
)

// Config holds configuration for the generator
type Config struct {
	BaseDir    string `yaml:"base_dir"`
	FolderName string `yaml:"folder_name"`
	LogLevel   string `yaml:"log_level"`
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"base-dir":  "base_dir",
	"folder":    "folder_name",
	"log-level": "log_level",
}

// SetupFlags registers the configuration flags on flagSet
func SetupFlags(flagSet *pflag.FlagSet) {
	flagSet.String("config", "", "Path to configuration file")
	flagSet.String("base-dir", "", "Directory to create the folder in (default: current directory)")
	flagSet.String("folder", defaultFolderName, "Name of the folder to create")
	flagSet.String("log-level", defaultLogLevel, "Log level: debug|info|warn|error")
	flagSet.Bool("create-config", false, "Create a default configuration file and exit")
	flagSet.String("config-output", defaultConfigName+".yaml", "Path where to write the default configuration")
}

// Load reads configuration from defaults, an optional config file, the
// environment and flags, in increasing order of precedence
func Load(fsys afero.Fs, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fsys)

	// Set defaults
	v.SetDefault("base_dir", "")
	v.SetDefault("folder_name", defaultFolderName)
	v.SetDefault("log_level", defaultLogLevel)

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configPath := ""
	if flagSet != nil {
		configPath, _ = flagSet.GetString("config")
	}

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.foldergen")
		v.AddConfigPath("/etc/foldergen")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file is found, but other errors should be handled
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flagSet != nil {
		for name, key := range flagKeys {
			f := flagSet.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		BaseDir:    v.GetString("base_dir"),
		FolderName: v.GetString("folder_name"),
		LogLevel:   v.GetString("log_level"),
	}
	if cfg.FolderName == "" {
		cfg.FolderName = defaultFolderName
	}

	return cfg, nil
}

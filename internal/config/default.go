package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const defaultHeader = "# foldergen configuration\n# base_dir: leave empty to use the current directory\n# log_level: debug, info, warn, error\n"

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		BaseDir:    "",
		FolderName: defaultFolderName,
		LogLevel:   defaultLogLevel,
	}
}

// WriteDefault writes a default configuration file to path
func WriteDefault(fsys afero.Fs, path string) error {
	body, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("error encoding default config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	if err := afero.WriteFile(fsys, path, append([]byte(defaultHeader), body...), 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

package codebase

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dhamidi/cmakels/cmake"
	"gopkg.in/yaml.v3"
)

// ConfigFilename is the name of the per-project configuration file.
const ConfigFilename = ".cmakels.yaml"

// ModulesDirEnv overrides modules_dir from the configuration file.
const ModulesDirEnv = "CMAKE_MODULES_DIR"

const (
	SubdirectoriesAll        = "all"
	SubdirectoriesCMakeLists = "cmakelists"
)

// Config is the project configuration.
type Config struct {
	// ModulesDir is the CMake modules directory, e.g. /usr/share/cmake/Modules.
	ModulesDir string `yaml:"modules_dir,omitempty"`

	// Subdirectories is "all" or "cmakelists".
	Subdirectories string `yaml:"subdirectories,omitempty"`

	// WatchInterval is how often included files are polled for changes.
	WatchInterval time.Duration `yaml:"watch_interval,omitempty"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Subdirectories: SubdirectoriesAll,
		WatchInterval:  time.Second,
	}
}

// Options converts the configuration into engine options.
func (c *Config) Options() cmake.Options {
	return cmake.Options{
		ModulesDir:        c.ModulesDir,
		RequireCMakeLists: c.Subdirectories == SubdirectoriesCMakeLists,
	}
}

// ApplyEnv lets the environment override the file.
func (c *Config) ApplyEnv() {
	if dir := os.Getenv(ModulesDirEnv); dir != "" {
		c.ModulesDir = dir
	}
}

// LoadConfigFrom looks for ConfigFilename in startDir and its parents. When
// none exists the defaults are returned with an empty path.
func LoadConfigFrom(startDir string) (*Config, string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	currentDir := absDir
	for {
		configPath := filepath.Join(currentDir, ConfigFilename)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFile(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return DefaultConfig(), "", nil
		}
		currentDir = parentDir
	}
}

// LoadConfigFile reads one configuration file. Unset fields keep their
// defaults and a relative modules_dir is taken relative to the file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	switch config.Subdirectories {
	case SubdirectoriesAll, SubdirectoriesCMakeLists:
	default:
		return nil, fmt.Errorf("%s: subdirectories must be %q or %q, got %q",
			path, SubdirectoriesAll, SubdirectoriesCMakeLists, config.Subdirectories)
	}
	if config.WatchInterval <= 0 {
		return nil, fmt.Errorf("%s: watch_interval must be positive", path)
	}
	if config.ModulesDir != "" && !filepath.IsAbs(config.ModulesDir) {
		config.ModulesDir = filepath.Join(filepath.Dir(path), config.ModulesDir)
	}
	return config, nil
}

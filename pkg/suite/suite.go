// Package suite loads a .check-riak.yaml file naming the checks to run
// and the flag defaults to run them with.
package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// FileName is the suite file searched for when none is given.
const FileName = ".check-riak.yaml"

// Defaults override the global flag defaults for every check in the suite.
type Defaults struct {
	Host    string        `mapstructure:"host"`
	Port    int           `mapstructure:"port"`
	Node    string        `mapstructure:"node"`
	Admin   string        `mapstructure:"admin"`
	Riak    string        `mapstructure:"riak"`
	DataDir string        `mapstructure:"data_dir"`
	Service string        `mapstructure:"service"`
	Timeout time.Duration `mapstructure:"timeout"`
	Warn    string        `mapstructure:"warn"`
	Crit    string        `mapstructure:"crit"`
}

// Config is a parsed suite file.
type Config struct {
	Checks   []string `mapstructure:"checks"`
	Defaults Defaults `mapstructure:"defaults"`
}

// FindFile locates the suite file: an explicit path wins, otherwise the
// search walks up from startDir, stopping at a repository root or the
// home directory.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("suite file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		suitePath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(suitePath); err == nil {
			return suitePath, nil
		}

		if currentDir == homeDir {
			break
		}
		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(FileName + " not found")
}

// Load reads and parses a suite file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse suite file: %w", err)
	}
	if len(cfg.Checks) == 0 {
		return nil, fmt.Errorf("suite file %s lists no checks", path)
	}
	return &cfg, nil
}

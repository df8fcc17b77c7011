// internal/config/file.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const configFileName = "hashgo.toml"

// Defaults holds values read from an optional hashgo.toml (or HASHGO_*
// environment variables). They fill in anything the command line leaves
// unset; explicit flags always win.
type Defaults struct {
	Algorithm    string `mapstructure:"algorithm"`
	Encoding     string `mapstructure:"encoding"`
	SingleThread bool   `mapstructure:"single_thread"`
	NoProgress   bool   `mapstructure:"no_progress"`
}

// ErrNoConfigFile is returned by LocateConfig when no hashgo.toml exists
// anywhere on the path from the start directory to the filesystem root.
var ErrNoConfigFile = errors.New("hashgo.toml not found")

// LocateConfig searches from the start directory upward for a
// hashgo.toml file and returns the absolute path of the first match.
func LocateConfig(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	start, _ = filepath.Abs(start)

	dir := start
	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return "", ErrNoConfigFile
}

// LoadDefaults reads hashgo.toml (searching from startDir upward) and
// applies HASHGO_* environment overrides. A missing file is not an
// error: env-only defaults are still honored.
func LoadDefaults(startDir string) (*Defaults, error) {
	v := viper.New()
	v.SetEnvPrefix("HASHGO")
	v.AutomaticEnv()
	// Bind explicitly so AutomaticEnv works without a config file present.
	for _, key := range []string{"algorithm", "encoding", "single_thread", "no_progress"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path, err := LocateConfig(startDir); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, ErrNoConfigFile) {
		return nil, err
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &d, nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig holds general runtime options.
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Workdir  string `yaml:"workdir"`
	Location string `yaml:"location"`
}

// LogConfig controls zap logger behaviour.
type LogConfig struct {
	Mode       string `yaml:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// StorageConfig points at the local key-value store file.
type StorageConfig struct {
	Path string `yaml:"path"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system"`
	Logger  LogConfig     `yaml:"logger"`
	Storage StorageConfig `yaml:"storage"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "srburger",
			Workdir:  "/var/srburger",
			Location: "America/Mexico_City",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/srburger/backoffice.log",
		},
		Storage: StorageConfig{
			Path: "/var/srburger/backoffice.db",
		},
	}
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, "read config %s", cfile)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", cfile)
		}
	}
	setEnvValue("SRBURGER_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("SRBURGER_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvValue("SRBURGER_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvValue("SRBURGER_LOGGER_FILENAME", &cfg.Logger.Filename)
	setEnvBoolValue("SRBURGER_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("SRBURGER_STORAGE_PATH", &cfg.Storage.Path)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(cfg.System.Workdir, "backoffice.db")
	}
	return cfg, nil
}

func setEnvValue(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok {
		*val = v
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToBool(v)
	}
}

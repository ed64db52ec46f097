package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	configDirENV      = "CONFIG_DIR"
	configFilePathENV = "CONFIG_FILE"

	defaultConfigDir  = "configs"
	defaultConfigFile = "values_local.yaml"
)

// Config ...
type Config struct {
	Service struct {
		Host         string `yaml:"host"`
		PublicPort   int    `yaml:"public_port"`
		AdminPort    int    `yaml:"admin_port"`
		MaxBodyBytes int64  `yaml:"max_body_bytes"` // лимит тела POST /generate-signal
		GinMode      string `yaml:"gin_mode"`       // debug|release|test
	} `yaml:"service"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	Tracing struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
	} `yaml:"tracing"`
}

// Default: то, с чем сервис стартует без файла и переменных окружения.
func Default() *Config {
	cfg := &Config{}
	cfg.Service.Host = "0.0.0.0"
	cfg.Service.PublicPort = 8000
	cfg.Service.AdminPort = 8081
	cfg.Service.MaxBodyBytes = 1 << 20
	cfg.Service.GinMode = "release"
	cfg.Log.Level = "info"
	cfg.Tracing.Host = "localhost"
	cfg.Tracing.Port = 6831
	return cfg
}

// NewConfig: дефолты -> yaml-файл (если есть) -> переменные окружения (.env тоже).
func NewConfig() (*Config, error) {
	// .env необязателен, но битый файл это ошибка конфигурации
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	config := Default()

	path := filepath.Join(getenvDefault(configDirENV, defaultConfigDir), getenvDefault(configFilePathENV, defaultConfigFile))
	if err := decodeFile(path, config); err != nil {
		return nil, err
	}

	applyEnv(config, newEnvReader())

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return config, nil
}

func decodeFile(path string, config *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// без файла живём на дефолтах и env
			return nil
		}
		return errors.Wrapf(err, "failed to open config file %s", path)
	}

	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(config); err != nil && err != io.EOF {
		return errors.Wrapf(err, "failed to decode config file %s", path)
	}
	return nil
}

func newEnvReader() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// applyEnv: SERVICE_PUBLIC_PORT перекрывает service.public_port и т.д.
func applyEnv(config *Config, v *viper.Viper) {
	if v.IsSet("service.host") {
		config.Service.Host = v.GetString("service.host")
	}
	if v.IsSet("service.public_port") {
		config.Service.PublicPort = v.GetInt("service.public_port")
	}
	if v.IsSet("service.admin_port") {
		config.Service.AdminPort = v.GetInt("service.admin_port")
	}
	if v.IsSet("service.max_body_bytes") {
		config.Service.MaxBodyBytes = v.GetInt64("service.max_body_bytes")
	}
	if v.IsSet("gin_mode") {
		config.Service.GinMode = v.GetString("gin_mode")
	}
	if v.IsSet("log.level") {
		config.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.development") {
		config.Log.Development = v.GetBool("log.development")
	}
	if v.IsSet("tracing.enabled") {
		config.Tracing.Enabled = v.GetBool("tracing.enabled")
	}
	if v.IsSet("tracing.host") {
		config.Tracing.Host = v.GetString("tracing.host")
	}
	if v.IsSet("tracing.port") {
		config.Tracing.Port = v.GetInt("tracing.port")
	}
}

func (c *Config) Validate() error {
	if !validPort(c.Service.PublicPort) {
		return errors.Errorf("service.public_port out of range: %d", c.Service.PublicPort)
	}
	if !validPort(c.Service.AdminPort) {
		return errors.Errorf("service.admin_port out of range: %d", c.Service.AdminPort)
	}
	if c.Service.PublicPort == c.Service.AdminPort {
		return errors.Errorf("service.public_port and service.admin_port must differ, both are %d", c.Service.PublicPort)
	}
	if c.Service.MaxBodyBytes <= 0 {
		return errors.Errorf("service.max_body_bytes must be positive, got %d", c.Service.MaxBodyBytes)
	}
	if c.Tracing.Enabled && !validPort(c.Tracing.Port) {
		return errors.Errorf("tracing.port out of range: %d", c.Tracing.Port)
	}
	return nil
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

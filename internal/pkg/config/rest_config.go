package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST gateway needs.
type RestConfig struct {
	Port        string   `mapstructure:"port"`
	Environment string   `mapstructure:"environment"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Auth     AuthSettings     `mapstructure:"auth"`
	HDFS     HDFSSettings     `mapstructure:"hdfs"`
	MLflow   MLflowSettings   `mapstructure:"mlflow"`
	Airflow  AirflowSettings  `mapstructure:"airflow"`
	Docker   DockerSettings   `mapstructure:"docker"`
}

// InitializeRestConfig reads the YAML configuration at the given path,
// applies CG_-prefixed environment variable overrides and validates the
// result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("CG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every settings section.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port must be set")
	}

	sections := []interface{ Validate() error }{
		&c.Logger,
		&c.Database,
		&c.Auth,
		&c.HDFS,
		&c.MLflow,
		&c.Airflow,
		&c.Docker,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("environment", "development")
	v.SetDefault("cors_origins", []string{"*"})

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("hdfs.user", "hadoop")
	v.SetDefault("hdfs.timeout", 30*time.Second)
	v.SetDefault("mlflow.timeout", 30*time.Second)
	v.SetDefault("airflow.timeout", 30*time.Second)
	v.SetDefault("docker.timeout", 10*time.Second)

	v.SetDefault("auth.api_key_header", DefaultAPIKeyHeader)
	v.SetDefault("auth.jwt_expiry", 24*time.Hour)
	v.SetDefault("auth.key_cache_ttl", 5*time.Minute)
}

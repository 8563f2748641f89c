package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Backend name constants used for metrics labels and log fields
const (
	BackendHDFS    = "hdfs"
	BackendMLflow  = "mlflow"
	BackendAirflow = "airflow"
	BackendDocker  = "docker"
)

// HDFSSettings holds connection settings for the WebHDFS endpoint of the
// storage cluster's namenode.
type HDFSSettings struct {
	NamenodeURL string        `mapstructure:"namenode_url" validate:"required,url"`
	User        string        `mapstructure:"user" validate:"required"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in HDFSSettings are valid
func (s *HDFSSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for HDFSSettings: %w", err)
	}
	return nil
}

// MLflowSettings holds connection settings for the model-tracking service.
type MLflowSettings struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in MLflowSettings are valid
func (s *MLflowSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MLflowSettings: %w", err)
	}
	return nil
}

// AirflowSettings holds connection settings for the workflow orchestrator.
type AirflowSettings struct {
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Username string        `mapstructure:"username" validate:"required"`
	Password string        `mapstructure:"password" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in AirflowSettings are valid
func (s *AirflowSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AirflowSettings: %w", err)
	}
	return nil
}

// DockerSettings holds connection settings for the Docker Engine API endpoint
// that manages the cluster containers.
type DockerSettings struct {
	APIURL  string        `mapstructure:"api_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in DockerSettings are valid
func (s *DockerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DockerSettings: %w", err)
	}
	return nil
}

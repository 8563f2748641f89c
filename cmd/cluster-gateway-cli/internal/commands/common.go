package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jack0rich/BigdataServer/internal/pkg/config"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

const commandTimeout = 60 * time.Second

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// The CLI reads backend endpoints from the same CG_-prefixed environment
// variables the gateway's viper configuration responds to.

func hdfsSettingsFromEnv() *config.HDFSSettings {
	return &config.HDFSSettings{
		NamenodeURL: envOr("CG_HDFS_NAMENODE_URL", "http://localhost:9870"),
		User:        envOr("CG_HDFS_USER", "hadoop"),
		Timeout:     30 * time.Second,
	}
}

func mlflowSettingsFromEnv() *config.MLflowSettings {
	return &config.MLflowSettings{
		BaseURL: envOr("CG_MLFLOW_BASE_URL", "http://localhost:5000"),
		Token:   os.Getenv("CG_MLFLOW_TOKEN"),
		Timeout: 30 * time.Second,
	}
}

func airflowSettingsFromEnv() *config.AirflowSettings {
	return &config.AirflowSettings{
		BaseURL:  envOr("CG_AIRFLOW_BASE_URL", "http://localhost:8080"),
		Username: envOr("CG_AIRFLOW_USERNAME", "airflow"),
		Password: envOr("CG_AIRFLOW_PASSWORD", "airflow"),
		Timeout:  30 * time.Second,
	}
}

func databaseSettingsFromEnv() (*config.DatabaseSettings, error) {
	settings := &config.DatabaseSettings{
		Type: envOr("CG_DATABASE_TYPE", config.PostgresDbType),
		DSN:  os.Getenv("CG_DATABASE_DSN"),
		Name: os.Getenv("CG_DATABASE_NAME"),
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("database settings incomplete, set CG_DATABASE_DSN and CG_DATABASE_NAME: %w", err)
	}
	return settings, nil
}

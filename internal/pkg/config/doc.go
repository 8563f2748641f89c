// Package config provides functionality for loading and managing application configuration.
//
// Settings are loaded from a YAML file with environment variable overrides,
// validated, and made accessible throughout the application. Each backend the
// gateway fronts (HDFS, MLflow, Airflow, Docker) owns a dedicated settings
// struct so its connector can be configured and validated in isolation.
package config

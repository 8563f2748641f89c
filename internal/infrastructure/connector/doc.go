// Package connector contains the wire-level clients the gateway relays
// requests through: WebHDFS for the storage cluster, the MLflow and Airflow
// REST APIs, and the Docker Engine API for container management.
package connector

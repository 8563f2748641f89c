package airflow

import "errors"

// Sentinel errors mapped to gateway response codes by the REST layer.
var (
	// ErrDAGNotFound indicates the DAG or DAG run does not exist.
	ErrDAGNotFound = errors.New("dag not found")

	// ErrDAGAlreadyRunning indicates a trigger collided with an active run.
	ErrDAGAlreadyRunning = errors.New("dag is already running")

	// ErrUnauthorized indicates the configured orchestrator credentials were rejected.
	ErrUnauthorized = errors.New("airflow credentials rejected")
)

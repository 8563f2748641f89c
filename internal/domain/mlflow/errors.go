package mlflow

import "errors"

// Sentinel errors mapped to gateway response codes by the REST layer.
var (
	// ErrNotFound indicates the experiment, model or version does not exist.
	ErrNotFound = errors.New("mlflow resource not found")

	// ErrUnauthorized indicates the configured tracking token was rejected.
	ErrUnauthorized = errors.New("mlflow credentials rejected")
)

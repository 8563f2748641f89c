// Package mlflow defines the entities and contracts for relaying requests to
// the model-tracking service.
package mlflow

import "context"

// TrackingService defines the gateway-facing model-tracking operations.
type TrackingService interface {
	// CreateExperiment creates a new experiment with optional tags.
	CreateExperiment(ctx context.Context, name string, tags map[string]string) (*Experiment, error)

	// GetExperiment fetches an experiment by its tracking-service ID.
	GetExperiment(ctx context.Context, experimentID string) (*Experiment, error)

	// RegisterModel registers the model artifact of a finished run under the
	// given registered-model name.
	RegisterModel(ctx context.Context, runID, modelName string) (*ModelVersion, error)

	// TransitionModelStage moves a model version to a new registry stage.
	TransitionModelStage(ctx context.Context, modelName, version, stage string) (*ModelVersion, error)

	// SearchModelVersions lists registry versions matching the filter; an
	// empty filter selects all versions of modelName.
	SearchModelVersions(ctx context.Context, modelName, filter string) ([]*ModelVersion, error)
}

// Connector is the wire-level client contract against the tracking REST API.
type Connector interface {
	CreateExperiment(ctx context.Context, name string, tags map[string]string) (*Experiment, error)
	GetExperiment(ctx context.Context, experimentID string) (*Experiment, error)
	RegisterModel(ctx context.Context, runID, modelName string) (*ModelVersion, error)
	TransitionModelStage(ctx context.Context, modelName, version, stage string) (*ModelVersion, error)
	SearchModelVersions(ctx context.Context, filter string, maxResults int) ([]*ModelVersion, error)
}

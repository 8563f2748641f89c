// Package airflow defines the entities and contracts for relaying requests
// to the workflow orchestrator.
package airflow

import "context"

// WorkflowService defines the gateway-facing orchestration operations.
type WorkflowService interface {
	// TriggerDAG starts a new run of the DAG with an optional conf payload.
	TriggerDAG(ctx context.Context, dagID string, conf map[string]interface{}) (*DAGRun, error)

	// ListDAGs pages through the DAGs registered with the orchestrator.
	ListDAGs(ctx context.Context, limit, offset int) ([]*DAG, error)

	// GetDAG fetches a single DAG.
	GetDAG(ctx context.Context, dagID string) (*DAG, error)

	// SetPaused pauses or resumes scheduling for a DAG.
	SetPaused(ctx context.Context, dagID string, paused bool) (*DAG, error)

	// ListDAGRuns lists the runs recorded for a DAG.
	ListDAGRuns(ctx context.Context, dagID string) ([]*DAGRun, error)

	// GetDAGRun fetches a single DAG run.
	GetDAGRun(ctx context.Context, dagID, runID string) (*DAGRun, error)

	// DeleteDAGRun removes a DAG run record.
	DeleteDAGRun(ctx context.Context, dagID, runID string) error
}

// Connector is the wire-level client contract against the orchestrator REST API.
type Connector interface {
	TriggerDAG(ctx context.Context, dagID string, conf map[string]interface{}) (*DAGRun, error)
	ListDAGs(ctx context.Context, limit, offset int) ([]*DAG, error)
	GetDAG(ctx context.Context, dagID string) (*DAG, error)
	SetPaused(ctx context.Context, dagID string, paused bool) (*DAG, error)
	ListDAGRuns(ctx context.Context, dagID string) ([]*DAGRun, error)
	GetDAGRun(ctx context.Context, dagID, runID string) (*DAGRun, error)
	DeleteDAGRun(ctx context.Context, dagID, runID string) error
}

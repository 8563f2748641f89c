package airflow

import "time"

// TriggerNote is attached to every run started through the gateway.
const TriggerNote = "Triggered via API"

// DAG describes a workflow registered with the orchestrator.
type DAG struct {
	ID          string
	Description string
	IsPaused    bool
	IsActive    bool
	Owners      []string
	Tags        []string
}

// DAGRun describes one execution of a DAG.
type DAGRun struct {
	DAGID       string
	RunID       string
	State       string
	LogicalDate time.Time
	StartDate   time.Time
	EndDate     time.Time
	Conf        map[string]interface{}
	Note        string
}

package mlflow

import (
	"fmt"
	"strings"
)

// Registry stages accepted by the tracking service.
const (
	StageNone       = "None"
	StageStaging    = "Staging"
	StageProduction = "Production"
	StageArchived   = "Archived"
)

// DefaultSearchMaxResults bounds version searches relayed to the backend.
const DefaultSearchMaxResults = 100

// Experiment describes a tracking-service experiment.
type Experiment struct {
	ID               string
	Name             string
	ArtifactLocation string
	LifecycleStage   string
}

// ModelVersion describes one version of a registered model.
type ModelVersion struct {
	Name    string
	Version string
	Stage   string
	RunID   string
	Source  string
	Status  string
}

// NormalizeStage canonicalizes a stage name regardless of the caller's
// casing. The registry API only accepts the capitalized forms.
func NormalizeStage(stage string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(stage)) {
	case "none":
		return StageNone, nil
	case "staging":
		return StageStaging, nil
	case "production":
		return StageProduction, nil
	case "archived":
		return StageArchived, nil
	default:
		return "", fmt.Errorf("unsupported model stage: %q", stage)
	}
}

// RunModelSource builds the artifact source URI for a run's logged model.
func RunModelSource(runID string) string {
	return fmt.Sprintf("runs:/%s/model", runID)
}

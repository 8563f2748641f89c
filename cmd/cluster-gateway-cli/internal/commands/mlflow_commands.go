package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jack0rich/BigdataServer/internal/app"
	"github.com/jack0rich/BigdataServer/internal/domain/mlflow"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/connector"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// MLflowCommandHandler encapsulates logic for model-tracking operations via CLI.
type MLflowCommandHandler struct {
	trackingService mlflow.TrackingService
	logger          logger.Logger
}

// NewMLflowCommandHandler initializes and returns an MLflowCommandHandler with
// a tracking connector built from environment settings.
func NewMLflowCommandHandler() (*MLflowCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	mlflowConnector, err := connector.NewMLflowConnector(mlflowSettingsFromEnv(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create mlflow connector: %w", err)
	}

	trackingService, err := app.NewMLflowTrackingService(mlflowConnector, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking service: %w", err)
	}

	return &MLflowCommandHandler{
		trackingService: trackingService,
		logger:          loggerInstance,
	}, nil
}

// CreateExperimentCmd creates a tracking experiment
func (commandHandler *MLflowCommandHandler) CreateExperimentCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	tags, err := cmd.Flags().GetStringToString("tag")
	if err != nil {
		commandHandler.logger.Error("invalid tag flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	experiment, err := commandHandler.trackingService.CreateExperiment(ctx, name, tags)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created experiment ", experiment.Name, " with id ", experiment.ID)
}

// RegisterModelCmd registers a finished run's model artifact in the registry
func (commandHandler *MLflowCommandHandler) RegisterModelCmd(cmd *cobra.Command, _ []string) {
	runID, err := cmd.Flags().GetString("run-id")
	if err != nil {
		commandHandler.logger.Error("invalid run-id flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	version, err := commandHandler.trackingService.RegisterModel(ctx, runID, name)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Registered ", version.Name, " version ", version.Version)
}

// TransitionStageCmd moves a model version to a new registry stage
func (commandHandler *MLflowCommandHandler) TransitionStageCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	version, err := cmd.Flags().GetString("version")
	if err != nil {
		commandHandler.logger.Error("invalid version flag ", err)
		return
	}
	stage, err := cmd.Flags().GetString("stage")
	if err != nil {
		commandHandler.logger.Error("invalid stage flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	result, err := commandHandler.trackingService.TransitionModelStage(ctx, name, version, stage)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Moved ", result.Name, " version ", result.Version, " to stage ", result.Stage)
}

// ListModelVersionsCmd lists the registry versions of a model
func (commandHandler *MLflowCommandHandler) ListModelVersionsCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		commandHandler.logger.Error("invalid filter flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	versions, err := commandHandler.trackingService.SearchModelVersions(ctx, name, filter)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, version := range versions {
		fmt.Printf("%-30s v%-6s %-12s run=%s\n", version.Name, version.Version, version.Stage, version.RunID)
	}
	commandHandler.logger.Info("Found ", len(versions), " model versions")
}

// InitMLflowCommands registers model-tracking commands
func InitMLflowCommands(rootCmd *cobra.Command) error {
	handler, err := NewMLflowCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create MLflow command handler %w", err)
	}

	var createExperimentCmd = &cobra.Command{
		Use:   "create-experiment",
		Short: "Create a tracking experiment",
		Run:   handler.CreateExperimentCmd,
	}
	createExperimentCmd.Flags().StringP("name", "", "", "Experiment name")
	createExperimentCmd.Flags().StringToStringP("tag", "", nil, "Experiment tag as key=value (repeatable)")
	rootCmd.AddCommand(createExperimentCmd)

	var registerModelCmd = &cobra.Command{
		Use:   "register-model",
		Short: "Register a run's model artifact in the registry",
		Run:   handler.RegisterModelCmd,
	}
	registerModelCmd.Flags().StringP("run-id", "", "", "Tracking run ID that produced the model")
	registerModelCmd.Flags().StringP("name", "", "", "Registered model name")
	rootCmd.AddCommand(registerModelCmd)

	var transitionStageCmd = &cobra.Command{
		Use:   "transition-stage",
		Short: "Move a model version to a new registry stage",
		Run:   handler.TransitionStageCmd,
	}
	transitionStageCmd.Flags().StringP("name", "", "", "Registered model name")
	transitionStageCmd.Flags().StringP("version", "", "", "Model version")
	transitionStageCmd.Flags().StringP("stage", "", "", "Target stage (None, Staging, Production, Archived)")
	rootCmd.AddCommand(transitionStageCmd)

	var listModelVersionsCmd = &cobra.Command{
		Use:   "list-model-versions",
		Short: "List the registry versions of a model",
		Run:   handler.ListModelVersionsCmd,
	}
	listModelVersionsCmd.Flags().StringP("name", "", "", "Registered model name")
	listModelVersionsCmd.Flags().StringP("filter", "", "", "Registry search filter overriding the name match")
	rootCmd.AddCommand(listModelVersionsCmd)

	return nil
}

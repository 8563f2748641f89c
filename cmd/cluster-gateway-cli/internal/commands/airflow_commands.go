package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jack0rich/BigdataServer/internal/app"
	"github.com/jack0rich/BigdataServer/internal/domain/airflow"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/connector"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// AirflowCommandHandler encapsulates logic for orchestration operations via CLI.
type AirflowCommandHandler struct {
	workflowService airflow.WorkflowService
	logger          logger.Logger
}

// NewAirflowCommandHandler initializes and returns an AirflowCommandHandler
// with an orchestrator connector built from environment settings.
func NewAirflowCommandHandler() (*AirflowCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	airflowConnector, err := connector.NewAirflowConnector(airflowSettingsFromEnv(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create airflow connector: %w", err)
	}

	workflowService, err := app.NewAirflowWorkflowService(airflowConnector, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow service: %w", err)
	}

	return &AirflowCommandHandler{
		workflowService: workflowService,
		logger:          loggerInstance,
	}, nil
}

// TriggerDAGCmd starts a new run of a DAG with an optional JSON conf
func (commandHandler *AirflowCommandHandler) TriggerDAGCmd(cmd *cobra.Command, _ []string) {
	dagID, err := cmd.Flags().GetString("dag-id")
	if err != nil {
		commandHandler.logger.Error("invalid dag-id flag ", err)
		return
	}
	confJSON, err := cmd.Flags().GetString("conf")
	if err != nil {
		commandHandler.logger.Error("invalid conf flag ", err)
		return
	}

	var conf map[string]interface{}
	if confJSON != "" {
		if err := json.Unmarshal([]byte(confJSON), &conf); err != nil {
			commandHandler.logger.Error("conf is not valid JSON ", err)
			return
		}
	}

	ctx, cancel := commandContext()
	defer cancel()

	run, err := commandHandler.workflowService.TriggerDAG(ctx, dagID, conf)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Triggered ", run.DAGID, " run ", run.RunID, " state=", run.State)
}

// ListDAGsCmd pages through the DAGs registered with the orchestrator
func (commandHandler *AirflowCommandHandler) ListDAGsCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}
	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		commandHandler.logger.Error("invalid offset flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	dags, err := commandHandler.workflowService.ListDAGs(ctx, limit, offset)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, dag := range dags {
		state := "active"
		if dag.IsPaused {
			state = "paused"
		}
		fmt.Printf("%-40s %-8s %s\n", dag.ID, state, dag.Description)
	}
	commandHandler.logger.Info("Listed ", len(dags), " DAGs")
}

// SetPausedCmd pauses or resumes scheduling for a DAG
func (commandHandler *AirflowCommandHandler) SetPausedCmd(paused bool) func(cmd *cobra.Command, _ []string) {
	return func(cmd *cobra.Command, _ []string) {
		dagID, err := cmd.Flags().GetString("dag-id")
		if err != nil {
			commandHandler.logger.Error("invalid dag-id flag ", err)
			return
		}

		ctx, cancel := commandContext()
		defer cancel()

		dag, err := commandHandler.workflowService.SetPaused(ctx, dagID, paused)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}

		if dag.IsPaused {
			commandHandler.logger.Info("Paused DAG ", dag.ID)
		} else {
			commandHandler.logger.Info("Resumed DAG ", dag.ID)
		}
	}
}

// ListDAGRunsCmd lists the runs recorded for a DAG
func (commandHandler *AirflowCommandHandler) ListDAGRunsCmd(cmd *cobra.Command, _ []string) {
	dagID, err := cmd.Flags().GetString("dag-id")
	if err != nil {
		commandHandler.logger.Error("invalid dag-id flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	runs, err := commandHandler.workflowService.ListDAGRuns(ctx, dagID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, run := range runs {
		fmt.Printf("%-40s %-10s %s\n", run.RunID, run.State, run.LogicalDate.Format("2006-01-02T15:04:05Z"))
	}
	commandHandler.logger.Info("Listed ", len(runs), " runs for ", dagID)
}

// InitAirflowCommands registers orchestration commands
func InitAirflowCommands(rootCmd *cobra.Command) error {
	handler, err := NewAirflowCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create Airflow command handler %w", err)
	}

	var triggerDAGCmd = &cobra.Command{
		Use:   "trigger-dag",
		Short: "Trigger a new DAG run",
		Run:   handler.TriggerDAGCmd,
	}
	triggerDAGCmd.Flags().StringP("dag-id", "", "", "DAG to trigger")
	triggerDAGCmd.Flags().StringP("conf", "", "", "Run configuration as a JSON object")
	rootCmd.AddCommand(triggerDAGCmd)

	var listDAGsCmd = &cobra.Command{
		Use:   "list-dags",
		Short: "List the DAGs registered with the orchestrator",
		Run:   handler.ListDAGsCmd,
	}
	listDAGsCmd.Flags().IntP("limit", "", 100, "Maximum number of DAGs to return")
	listDAGsCmd.Flags().IntP("offset", "", 0, "Number of DAGs to skip")
	rootCmd.AddCommand(listDAGsCmd)

	var pauseDAGCmd = &cobra.Command{
		Use:   "pause-dag",
		Short: "Pause scheduling for a DAG",
		Run:   handler.SetPausedCmd(true),
	}
	pauseDAGCmd.Flags().StringP("dag-id", "", "", "DAG to pause")
	rootCmd.AddCommand(pauseDAGCmd)

	var resumeDAGCmd = &cobra.Command{
		Use:   "resume-dag",
		Short: "Resume scheduling for a DAG",
		Run:   handler.SetPausedCmd(false),
	}
	resumeDAGCmd.Flags().StringP("dag-id", "", "", "DAG to resume")
	rootCmd.AddCommand(resumeDAGCmd)

	var listDAGRunsCmd = &cobra.Command{
		Use:   "list-dag-runs",
		Short: "List the runs recorded for a DAG",
		Run:   handler.ListDAGRunsCmd,
	}
	listDAGRunsCmd.Flags().StringP("dag-id", "", "", "DAG to inspect")
	rootCmd.AddCommand(listDAGRunsCmd)

	return nil
}

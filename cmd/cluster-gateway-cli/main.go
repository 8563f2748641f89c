// Package main is the entry point for the cluster-gateway-cli application.
// It initializes the root command and registers sub-commands for storage,
// model tracking, workflow orchestration and credential maintenance, then
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/jack0rich/BigdataServer/cmd/cluster-gateway-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cluster-gateway-cli",
		Short: "Cluster operations CLI tool",
		Long: `cluster-gateway-cli talks to the cluster backends directly.
Supports uploads and downloads against the storage namenode, experiment and
model-registry operations against the tracking service, DAG management
against the orchestrator, and credential maintenance against the gateway's
user store.

Backend endpoints are read from the same CG_-prefixed environment variables
the gateway honors, for example CG_HDFS_NAMENODE_URL and CG_AIRFLOW_BASE_URL.
Credential commands additionally need CG_DATABASE_DSN, CG_DATABASE_NAME and
CG_AUTH_ENCRYPTION_KEY; they are skipped when those are not set.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register storage commands
	if err := commands.InitHDFSCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize HDFS commands: %w", err)
	}

	// Register tracking commands
	if err := commands.InitMLflowCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize MLflow commands: %w", err)
	}

	// Register orchestration commands
	if err := commands.InitAirflowCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize Airflow commands: %w", err)
	}

	// Credential maintenance needs a database; initialization errors are ignored
	_ = commands.InitUserCommands(rootCmd)

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}

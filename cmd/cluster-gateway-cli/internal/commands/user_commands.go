package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/cryptography"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/persistence"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// UserCommandHandler encapsulates operator-side credential maintenance. It
// talks to the credential store directly, not through the gateway API.
type UserCommandHandler struct {
	userRepo users.UserRepository
	cipher   users.APIKeyCipher
	logger   logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler with a
// database connection and key cipher built from environment settings.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	dbSettings, err := databaseSettingsFromEnv()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(*dbSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	cipher, err := cryptography.NewAESKeyCipher(os.Getenv("CG_AUTH_ENCRYPTION_KEY"), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create api key cipher, set CG_AUTH_ENCRYPTION_KEY: %w", err)
	}

	return &UserCommandHandler{
		userRepo: userRepo,
		cipher:   cipher,
		logger:   loggerInstance,
	}, nil
}

// RecoverAPIKeyCmd decrypts and prints the stored API key of a user
func (commandHandler *UserCommandHandler) RecoverAPIKeyCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	user, err := commandHandler.userRepo.GetByUsername(ctx, username)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	apiKey, err := commandHandler.cipher.Decrypt(user.APIKeyEncrypted)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	// The plaintext key goes to stdout only, never the log.
	fmt.Println(string(apiKey))
	commandHandler.logger.Info("Recovered API key for ", user.Username)
}

// DeleteUserCmd removes a user from the credential store
func (commandHandler *UserCommandHandler) DeleteUserCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	user, err := commandHandler.userRepo.GetByUsername(ctx, username)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.userRepo.DeleteByID(ctx, user.ID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted user ", user.Username)
}

// InitUserCommands registers credential maintenance commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var recoverAPIKeyCmd = &cobra.Command{
		Use:   "recover-api-key",
		Short: "Decrypt and print a user's stored API key",
		Run:   handler.RecoverAPIKeyCmd,
	}
	recoverAPIKeyCmd.Flags().StringP("username", "", "", "Username to recover the key for")
	rootCmd.AddCommand(recoverAPIKeyCmd)

	var deleteUserCmd = &cobra.Command{
		Use:   "delete-user",
		Short: "Remove a user from the credential store",
		Run:   handler.DeleteUserCmd,
	}
	deleteUserCmd.Flags().StringP("username", "", "", "Username to delete")
	rootCmd.AddCommand(deleteUserCmd)

	return nil
}

package logout

import (
	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/spf13/cobra"
)

func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the active installation",
		Long:  "Logout and clear the stored session for the active account.",
		Run: func(cmd *cobra.Command, args []string) {
			apiClient := api.FromContext(cmd.Context())
			accountStore := config.AccountStoreFromContext(cmd.Context())

			activeAccount, err := accountStore.ActiveAccount()
			if err != nil {
				logger.Success("Already logged out")
				return
			}

			// Best effort: invalidate the session server-side, but clear
			// local state even if the server is unreachable.
			if err := apiClient.Logout(); err != nil {
				logger.Debug("Failed to logout from server: %v", err)
			}

			accountStore.RemoveAccount(activeAccount.UserID)
			if err := accountStore.Save(); err != nil {
				logger.Error("Failed to save account store: %v", err)
				return
			}

			logger.Success("Logged out of %s", activeAccount.Email)
		},
	}
}

package login

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/loomcms/cli/internal/utils"
	"github.com/spf13/cobra"
)

func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [hostname]",
		Short: "Login to a Loom installation",
		Long:  "Interactive login to a Loom installation. Stores the session for later commands.",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			hostname := ""
			if len(args) > 0 {
				hostname = args[0]
			}
			if err := loginMain(cmd, hostname); err != nil {
				os.Exit(1)
			}
		},
	}

	return cmd
}

func loginMain(cmd *cobra.Command, hostname string) error {
	apiClient := api.FromContext(cmd.Context())
	accountStore := config.AccountStoreFromContext(cmd.Context())

	if !utils.IsInteractive() {
		err := fmt.Errorf("login requires an interactive terminal")
		logger.Error("%v", err)
		return err
	}

	var email, password string

	var groups []*huh.Group
	if hostname == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Installation hostname").
				Placeholder("https://cms.example.com").
				Value(&hostname),
		))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Value(&email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		logger.Error("Error: %v", err)
		return err
	}

	// Normalize hostname (preserve protocol, remove trailing slash)
	hostname = strings.TrimSuffix(strings.TrimSpace(hostname), "/")
	if !strings.HasPrefix(hostname, "http://") && !strings.HasPrefix(hostname, "https://") {
		hostname = "https://" + hostname
	}

	loginClient, err := api.NewClient(api.ClientConfig{
		BaseURL:   hostname,
		AgentName: "loom-cli",
		CSRFToken: "x-csrf-protection",
	})
	if err != nil {
		logger.Error("Failed to create API client: %v", err)
		return err
	}

	response, sessionToken, err := api.LoginWithCookie(loginClient, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		logger.Error("Login failed: %v", err)
		return err
	}

	if response != nil && response.EmailVerificationRequired {
		err := fmt.Errorf("your email address must be verified before logging in")
		logger.Error("%v", err)
		return err
	}

	if sessionToken == "" {
		err := fmt.Errorf("login appeared successful but no session token was received")
		logger.Error("%v", err)
		return err
	}

	// Re-point the shared client at the authenticated installation
	apiClient.SetBaseURL(hostname + "/api/v1")
	apiClient.SetToken(sessionToken)

	user, err := apiClient.GetUser()
	if err != nil {
		logger.Error("Failed to get user information: %v", err)
		return err
	}

	networkID, err := utils.SelectNetworkForm(apiClient)
	if err != nil {
		logger.Error("Failed to select network: %v", err)
		return err
	}

	accountStore.Accounts[user.UserID] = config.Account{
		UserID:       user.UserID,
		Host:         hostname,
		Email:        user.Email,
		SessionToken: sessionToken,
		NetworkID:    networkID,
	}
	accountStore.ActiveUserID = user.UserID

	if err := accountStore.Save(); err != nil {
		logger.Error("Failed to save account store: %v", err)
		return err
	}

	logger.Success("Logged in as %s", user.Email)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/loomcms/cli/cmd/apply"
	"github.com/loomcms/cli/cmd/completion"
	"github.com/loomcms/cli/cmd/create"
	deletecmd "github.com/loomcms/cli/cmd/delete"
	"github.com/loomcms/cli/cmd/info"
	"github.com/loomcms/cli/cmd/list"
	"github.com/loomcms/cli/cmd/login"
	"github.com/loomcms/cli/cmd/logout"
	"github.com/loomcms/cli/cmd/version"
	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	versionpkg "github.com/loomcms/cli/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Initialize a root Cobra command.
//
// Set initResources to false when generating documentation to avoid
// parsing configuration files and instantiating the API client, among
// other such external resources. This is to avoid depending on external
// state when doing doc generation.
func RootCommand(initResources bool) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "loom",
		Short: "Loom multisite CLI",
		Long:  "Manage blogs (sub-sites) in a Loom multisite network.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The version command reports update availability itself
			if cmd.Name() == "version" {
				return
			}

			versionpkg.CheckForUpdateAsync(func(release *versionpkg.GitHubRelease) {
				logger.Warning("A new version is available: %s (current: %s)", release.TagName, versionpkg.Version)
				fmt.Println()
			})
		},
	}

	cmd.AddCommand(create.CreateCmd())
	cmd.AddCommand(deletecmd.DeleteCmd())
	cmd.AddCommand(info.InfoCmd())
	cmd.AddCommand(list.ListCmd())
	cmd.AddCommand(apply.ApplyCmd())
	cmd.AddCommand(login.LoginCmd())
	cmd.AddCommand(logout.LogoutCmd())
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(completion.CompletionCmd())

	if !initResources {
		return cmd, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.InitLogger(cfg.LogLevel)

	// The update check reads this through the global viper instance
	viper.Set("disable_update_check", cfg.DisableUpdateCheck)

	accountStore, err := config.LoadAccountStore()
	if err != nil {
		return nil, err
	}

	var apiBaseURL string
	var sessionToken string

	if activeAccount, _ := accountStore.ActiveAccount(); activeAccount != nil {
		apiBaseURL = activeAccount.Host + "/api/v1"
		sessionToken = activeAccount.SessionToken
	}

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:   apiBaseURL,
		AgentName: "loom-cli",
		Token:     sessionToken,
		CSRFToken: "x-csrf-protection",
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	ctx = api.WithAPIClient(ctx, client)
	ctx = config.WithAccountStore(ctx, accountStore)
	ctx = config.WithConfig(ctx, cfg)

	cmd.SetContext(ctx)

	return cmd, nil
}

// Execute is called by main.go
func Execute() {
	cmd, err := RootCommand(true)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

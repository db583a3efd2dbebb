package delete

import (
	"fmt"
	"os"

	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/loomcms/cli/internal/utils"
	"github.com/spf13/cobra"
)

type DeleteCmdOpts struct {
	NetworkID  int64
	Yes        bool
	KeepTables bool
}

func DeleteCmd() *cobra.Command {
	opts := DeleteCmdOpts{}

	cmd := &cobra.Command{
		Use:   "delete <slug|id>",
		Short: "Delete a blog",
		Long:  "Delete a blog by slug or numeric ID. This is destructive and requires confirmation.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := deleteMain(cmd, &opts, args[0]); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().Int64Var(&opts.NetworkID, "network-id", 0, "Network `ID` to resolve the slug in (defaults to the account's network)")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.KeepTables, "keep-tables", false, "Delete the blog record but keep its content tables")

	_ = cmd.RegisterFlagCompletionFunc("network-id", utils.CompleteNetworkID)

	return cmd
}

func deleteMain(cmd *cobra.Command, opts *DeleteCmdOpts, arg string) error {
	apiClient := api.FromContext(cmd.Context())
	accountStore := config.AccountStoreFromContext(cmd.Context())

	activeAccount, err := accountStore.ActiveAccount()
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	networkID := utils.ResolveNetworkID(opts.NetworkID, activeAccount)

	blog, err := utils.ResolveBlog(apiClient, networkID, arg)
	if err != nil {
		logger.Error("Failed to resolve blog '%s': %v", arg, err)
		return err
	}

	if !opts.Yes {
		title := fmt.Sprintf("Delete blog %d (%s)? This cannot be undone.", blog.BlogID, blog.URL)
		confirmed, err := utils.ConfirmDestructive(title)
		if err != nil {
			logger.Error("%v", err)
			return err
		}
		if !confirmed {
			logger.Info("Aborted")
			return nil
		}
	}

	if err := apiClient.DeleteBlog(blog.BlogID, opts.KeepTables); err != nil {
		logger.Error("Failed to delete blog %d: %v", blog.BlogID, err)
		return err
	}

	if opts.KeepTables {
		logger.Success("Deleted blog %d (%s); content tables were kept", blog.BlogID, blog.URL)
	} else {
		logger.Success("Deleted blog %d (%s)", blog.BlogID, blog.URL)
	}

	return nil
}

package list

import (
	"os"
	"strconv"

	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/loomcms/cli/internal/utils"
	"github.com/spf13/cobra"
)

type ListCmdOpts struct {
	NetworkID int64
}

func ListCmd() *cobra.Command {
	opts := ListCmdOpts{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blogs in a network",
		Run: func(cmd *cobra.Command, args []string) {
			if err := listMain(cmd, &opts); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().Int64Var(&opts.NetworkID, "network-id", 0, "Network `ID` to list (defaults to the account's network)")

	_ = cmd.RegisterFlagCompletionFunc("network-id", utils.CompleteNetworkID)

	return cmd
}

func listMain(cmd *cobra.Command, opts *ListCmdOpts) error {
	apiClient := api.FromContext(cmd.Context())
	accountStore := config.AccountStoreFromContext(cmd.Context())

	activeAccount, err := accountStore.ActiveAccount()
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	networkID := utils.ResolveNetworkID(opts.NetworkID, activeAccount)

	blogsResp, err := apiClient.ListBlogs(networkID)
	if err != nil {
		logger.Error("Failed to list blogs: %v", err)
		return err
	}

	if len(blogsResp.Blogs) == 0 {
		logger.Info("No blogs in network %d", networkID)
		return nil
	}

	rows := make([][]string, 0, len(blogsResp.Blogs))
	for _, blog := range blogsResp.Blogs {
		rows = append(rows, []string{
			strconv.FormatInt(blog.BlogID, 10),
			blog.Slug,
			blog.URL,
			blog.Title,
			strconv.FormatBool(blog.Public),
		})
	}

	utils.PrintTable(
		[]string{"ID", "SLUG", "URL", "TITLE", "PUBLIC"},
		rows,
	)

	return nil
}

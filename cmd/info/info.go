package info

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/loomcms/cli/internal/utils"
	"github.com/spf13/cobra"
)

type InfoCmdOpts struct {
	NetworkID int64
	Fields    []string
	Field     string
}

// blogFieldOrder fixes the display order of the detail record.
var blogFieldOrder = []string{
	"id",
	"network_id",
	"slug",
	"title",
	"domain",
	"path",
	"url",
	"owner_email",
	"public",
	"archived",
	"deleted",
	"language",
	"created",
	"updated",
}

func InfoCmd() *cobra.Command {
	opts := InfoCmdOpts{}

	cmd := &cobra.Command{
		Use:   "info <slug|id>",
		Short: "Show details for a blog",
		Long:  "Show the detail record for a blog, resolved by slug or numeric ID.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := infoMain(cmd, &opts, args[0]); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().Int64Var(&opts.NetworkID, "network-id", 0, "Network `ID` to resolve the slug in (defaults to the account's network)")
	cmd.Flags().StringSliceVar(&opts.Fields, "fields", nil, "Comma-separated list of fields to show")
	cmd.Flags().StringVar(&opts.Field, "field", "", "Print the bare value of a single field")

	cmd.MarkFlagsMutuallyExclusive("fields", "field")

	_ = cmd.RegisterFlagCompletionFunc("network-id", utils.CompleteNetworkID)

	return cmd
}

func infoMain(cmd *cobra.Command, opts *InfoCmdOpts, arg string) error {
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

	if opts.Field != "" {
		value, err := fieldValue(blog, opts.Field)
		if err != nil {
			logger.Error("%v", err)
			return err
		}
		fmt.Println(value)
		return nil
	}

	selected := blogFieldOrder
	if len(opts.Fields) > 0 {
		selected, err = selectFields(opts.Fields)
		if err != nil {
			logger.Error("%v", err)
			return err
		}
	}

	pairs := make([][2]string, 0, len(selected))
	for _, name := range selected {
		value, err := fieldValue(blog, name)
		if err != nil {
			logger.Error("%v", err)
			return err
		}
		pairs = append(pairs, [2]string{name, value})
	}

	utils.PrintKeyValues(pairs)
	return nil
}

// selectFields validates the requested field names and returns them in the
// canonical display order.
func selectFields(requested []string) ([]string, error) {
	want := make(map[string]bool, len(requested))
	for _, name := range requested {
		name = strings.TrimSpace(strings.ToLower(name))
		if !isKnownField(name) {
			return nil, fmt.Errorf("unknown field '%s'", name)
		}
		want[name] = true
	}

	var selected []string
	for _, name := range blogFieldOrder {
		if want[name] {
			selected = append(selected, name)
		}
	}
	return selected, nil
}

func isKnownField(name string) bool {
	for _, known := range blogFieldOrder {
		if name == known {
			return true
		}
	}
	return false
}

func fieldValue(blog *api.BlogDetails, name string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "id":
		return strconv.FormatInt(blog.BlogID, 10), nil
	case "network_id":
		return strconv.FormatInt(blog.NetworkID, 10), nil
	case "slug":
		return blog.Slug, nil
	case "title":
		return blog.Title, nil
	case "domain":
		return blog.Domain, nil
	case "path":
		return blog.Path, nil
	case "url":
		return blog.URL, nil
	case "owner_email":
		return blog.OwnerEmail, nil
	case "public":
		return strconv.FormatBool(blog.Public), nil
	case "archived":
		return strconv.FormatBool(blog.Archived), nil
	case "deleted":
		return strconv.FormatBool(blog.Deleted), nil
	case "language":
		return blog.Language, nil
	case "created":
		return blog.Created, nil
	case "updated":
		return blog.Updated, nil
	default:
		return "", fmt.Errorf("unknown field '%s'", name)
	}
}

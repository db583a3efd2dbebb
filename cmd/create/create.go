package create

import (
	"fmt"
	"os"

	"github.com/loomcms/cli/internal/address"
	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/loomcms/cli/internal/utils"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

type CreateCmdOpts struct {
	Slug      string
	Title     string
	Email     string
	NetworkID int64
	Private   bool
	Porcelain bool
	Open      bool
}

func CreateCmd() *cobra.Command {
	opts := CreateCmdOpts{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new blog",
		Long:  "Create a new blog (sub-site) in a network, resolving or creating its owning user.",
		Run: func(cmd *cobra.Command, args []string) {
			if err := createMain(cmd, &opts); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&opts.Slug, "slug", "", "Address `slug` for the new blog (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Display title for the new blog (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Email of the owning user; created if it does not exist")
	cmd.Flags().Int64Var(&opts.NetworkID, "network-id", 0, "Target network `ID` (defaults to the account's network)")
	cmd.Flags().BoolVar(&opts.Private, "private", false, "Create the blog as private (not publicly listed)")
	cmd.Flags().BoolVar(&opts.Porcelain, "porcelain", false, "Output only the new blog ID")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the new blog in your browser")

	_ = cmd.MarkFlagRequired("slug")
	_ = cmd.RegisterFlagCompletionFunc("network-id", utils.CompleteNetworkID)

	return cmd
}

func createMain(cmd *cobra.Command, opts *CreateCmdOpts) error {
	apiClient := api.FromContext(cmd.Context())
	accountStore := config.AccountStoreFromContext(cmd.Context())

	activeAccount, err := accountStore.ActiveAccount()
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	slug := address.NormalizeSlug(opts.Slug)
	if err := address.ValidateSlug(slug); err != nil {
		logger.Error("%v", err)
		return err
	}

	if opts.Title == "" {
		err := fmt.Errorf("title is required")
		logger.Error("%v", err)
		return err
	}

	networkID := utils.ResolveNetworkID(opts.NetworkID, activeAccount)

	network, err := apiClient.GetNetwork(networkID)
	if err != nil {
		logger.Error("Failed to resolve network %d: %v", networkID, err)
		return err
	}

	domain, path := address.Derive(network, slug)
	logger.Debug("Derived address %s%s (subdomains=%t)", domain, path, network.Subdomains)

	owner, err := resolveOwner(apiClient, opts.Email, opts.Porcelain)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	created, err := apiClient.CreateBlog(network.NetworkID, api.CreateBlogRequest{
		Slug:        slug,
		Title:       opts.Title,
		Domain:      domain,
		Path:        path,
		OwnerUserID: owner.UserID,
		Public:      !opts.Private,
	})
	if err != nil {
		logger.Error("Failed to create blog: %v", err)
		return err
	}

	blogURL := created.URL
	if blogURL == "" {
		blogURL = address.URL(domain, path)
	}

	if opts.Porcelain {
		fmt.Fprintln(cmd.OutOrStdout(), created.BlogID)
	} else {
		logger.Success("Created blog %d at %s", created.BlogID, blogURL)
	}

	if opts.Open {
		if err := browser.OpenURL(blogURL); err != nil {
			logger.Warning("Failed to open browser; visit %s", blogURL)
		}
	}

	return nil
}

// resolveOwner resolves the blog's owning user from an email address.
// An existing user is reused; an unknown address becomes a new user with a
// platform-generated password. A missing or invalid address falls back to
// the authenticated user.
func resolveOwner(apiClient *api.Client, email string, quiet bool) (*api.User, error) {
	if err := address.ValidateEmail(email); err != nil {
		if !quiet {
			if email == "" {
				logger.Warning("No --email given; the blog will be owned by your account")
			} else {
				logger.Warning("%v; the blog will be owned by your account", err)
			}
		}

		self, selfErr := apiClient.GetUser()
		if selfErr != nil {
			return nil, fmt.Errorf("failed to resolve fallback owner: %w", selfErr)
		}
		return self, nil
	}

	user, err := apiClient.GetUserByEmail(email)
	if err == nil {
		return user, nil
	}
	if !api.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	user, err = apiClient.CreateUser(email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	if !quiet {
		logger.Info("Created user %s; credentials were mailed to them", email)
	}

	return user, nil
}

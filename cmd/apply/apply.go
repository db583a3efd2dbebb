package apply

import (
	"fmt"
	"os"

	"github.com/loomcms/cli/internal/address"
	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/loomcms/cli/internal/logger"
	"github.com/loomcms/cli/internal/manifest"
	"github.com/spf13/cobra"
)

type ApplyCmdOpts struct {
	File string
}

func ApplyCmd() *cobra.Command {
	opts := ApplyCmdOpts{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Provision blogs from a manifest",
		Long:  "Create every blog described in a YAML manifest, stopping at the first failure.",
		Run: func(cmd *cobra.Command, args []string) {
			if err := applyMain(cmd, &opts); err != nil {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the manifest `file` (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func applyMain(cmd *cobra.Command, opts *ApplyCmdOpts) error {
	apiClient := api.FromContext(cmd.Context())
	accountStore := config.AccountStoreFromContext(cmd.Context())

	activeAccount, err := accountStore.ActiveAccount()
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	m, err := manifest.Load(opts.File)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	for i, spec := range m.Blogs {
		if err := applyBlog(apiClient, activeAccount, spec); err != nil {
			logger.Error("Manifest blog %d (%s): %v", i+1, spec.Slug, err)
			return err
		}
	}

	logger.Success("Applied %d blog(s) from %s", len(m.Blogs), opts.File)
	return nil
}

func applyBlog(apiClient *api.Client, account *config.Account, spec manifest.BlogSpec) error {
	slug := address.NormalizeSlug(spec.Slug)
	if err := address.ValidateSlug(slug); err != nil {
		return err
	}

	networkID := spec.NetworkID
	if networkID == 0 {
		networkID = account.NetworkID
	}
	if networkID == 0 {
		networkID = 1
	}

	network, err := apiClient.GetNetwork(networkID)
	if err != nil {
		return fmt.Errorf("failed to resolve network %d: %w", networkID, err)
	}

	domain, path := address.Derive(network, slug)

	ownerID := ""
	if spec.Email != "" {
		if err := address.ValidateEmail(spec.Email); err != nil {
			return err
		}

		owner, err := apiClient.GetUserByEmail(spec.Email)
		if api.IsNotFound(err) {
			owner, err = apiClient.CreateUser(spec.Email)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve owner %s: %w", spec.Email, err)
		}
		ownerID = owner.UserID
	} else {
		self, err := apiClient.GetUser()
		if err != nil {
			return fmt.Errorf("failed to resolve fallback owner: %w", err)
		}
		ownerID = self.UserID
	}

	created, err := apiClient.CreateBlog(network.NetworkID, api.CreateBlogRequest{
		Slug:        slug,
		Title:       spec.Title,
		Domain:      domain,
		Path:        path,
		OwnerUserID: ownerID,
		Public:      !spec.Private,
	})
	if err != nil {
		return err
	}

	url := created.URL
	if url == "" {
		url = address.URL(domain, path)
	}
	logger.Info("Created blog %d at %s", created.BlogID, url)

	return nil
}

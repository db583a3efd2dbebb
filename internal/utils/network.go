package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/loomcms/cli/internal/api"
	"github.com/loomcms/cli/internal/config"
	"github.com/spf13/cobra"
)

// ResolveNetworkID picks the target network: the explicit flag wins, then
// the account's stored default, then network 1 (the primary network on
// every installation).
func ResolveNetworkID(flagValue int64, account *config.Account) int64 {
	if flagValue != 0 {
		return flagValue
	}
	if account.NetworkID != 0 {
		return account.NetworkID
	}
	return 1
}

// CompleteNetworkID is a cobra flag completion function for --network-id
// flags, offering the networks visible to the current user.
func CompleteNetworkID(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	apiClient := api.FromContext(cmd.Context())

	networksResp, err := apiClient.ListNetworks()
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}

	var candidates []string
	for _, network := range networksResp.Networks {
		id := strconv.FormatInt(network.NetworkID, 10)
		if strings.HasPrefix(id, toComplete) {
			candidates = append(candidates, fmt.Sprintf("%s\t%s", id, network.Domain))
		}
	}

	return candidates, cobra.ShellCompDirectiveNoFileComp
}

// SelectNetworkForm lists the networks visible to the user and prompts them
// to select one. If there is only one network, it is selected automatically.
func SelectNetworkForm(client *api.Client) (int64, error) {
	networksResp, err := client.ListNetworks()
	if err != nil {
		return 0, fmt.Errorf("failed to list networks: %w", err)
	}

	if len(networksResp.Networks) == 0 {
		return 0, fmt.Errorf("no networks found for this user")
	}

	if len(networksResp.Networks) == 1 {
		return networksResp.Networks[0].NetworkID, nil
	}

	var options []huh.Option[int64]
	for _, network := range networksResp.Networks {
		label := fmt.Sprintf("%s (%d)", network.Domain, network.NetworkID)
		options = append(options, huh.NewOption(label, network.NetworkID))
	}

	var selected int64
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Select a network").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("error selecting network: %w", err)
	}

	return selected, nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdata/application"
	"github.com/rios0rios0/gitdata/config"
	"github.com/rios0rios0/gitdata/domain"
)

var (
	proposeBaseTree string
	proposeKeepBase bool
)

var proposeCmd = &cobra.Command{
	Use:   "propose <tree-listing.json>",
	Short: "Derive a tree-creation request from a tree listing",
	Long: `Decode a tree listing (the response of GET /repos/:owner/:repo/git/trees/:sha)
and emit a tree-creation request that re-proposes every entry by sha.

Without --base-tree or --keep-base the request's base_tree is null, and
submitting it makes the server delete every existing path not re-listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPropose,
}

func init() {
	proposeCmd.Flags().StringVar(&proposeBaseTree, "base-tree", "", "Explicit base tree sha for the request")
	proposeCmd.Flags().BoolVar(&proposeKeepBase, "keep-base", false, "Use the listing's own sha as the base tree")
	rootCmd.AddCommand(proposeCmd)
}

func runPropose(_ *cobra.Command, args []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(cfg *config.Config, service *application.ProposeService) error {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return fmt.Errorf("failed to read tree listing: %w", readErr)
		}

		var tree domain.Tree
		if decodeErr := json.Unmarshal(data, &tree); decodeErr != nil {
			return fmt.Errorf("failed to decode tree listing: %w", decodeErr)
		}

		request := service.Propose(tree, application.ProposeOptions{
			BaseTree:         proposeBaseTree,
			UseListingAsBase: proposeKeepBase,
		})

		return printJSON(cfg, request)
	})
}

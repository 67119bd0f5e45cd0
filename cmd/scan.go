package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdata/config"
	"github.com/rios0rios0/gitdata/domain"
	"github.com/rios0rios0/gitdata/infrastructure/workdir"
)

var (
	scanInline   bool
	scanBaseTree string
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Build a tree-creation request from a local directory",
	Long: `Walk a local directory (default: the current one, skipping .git) and emit
a tree-creation request covering every file. By default each entry references
a locally computed Git blob sha; with --inline the file content travels inside
the entries instead. Symlinks are expressed as blobs of their target path and
cannot be inlined.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanInline, "inline", false, "Embed file content in the entries instead of shas")
	scanCmd.Flags().StringVar(&scanBaseTree, "base-tree", "", "Base tree sha for the request")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(cfg *config.Config, scanner *workdir.Scanner) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		entries, scanErr := scanner.Scan(dir, workdir.ScanOptions{Inline: scanInline})
		if scanErr != nil {
			return scanErr
		}

		request := domain.CreateTree{Entries: entries}
		if scanBaseTree != "" {
			base := scanBaseTree
			request.BaseTree = &base
		}

		return printJSON(cfg, request)
	})
}

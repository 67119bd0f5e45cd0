package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdata/infrastructure/codec"
)

var verifyKind string

var verifyCmd = &cobra.Command{
	Use:   "verify <document.json>",
	Short: "Decode a Git Data document and report whether it is well-formed",
	Long: `Decode a wire JSON document of the given kind against the exact upstream
shape: required fields, enum literal tables, and nested entry lists. The
first deviation is reported with the offending type and field.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyKind, "kind", "k", "tree", "Document kind: tree, blob or new-blob")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(registry *codec.Registry) error {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return fmt.Errorf("failed to read document: %w", readErr)
		}

		if !slices.Contains(registry.Names(), verifyKind) {
			return fmt.Errorf(
				"unknown document kind %q (known kinds: %s)",
				verifyKind, strings.Join(registry.Names(), ", "),
			)
		}

		decoded, decodeErr := registry.Decode(verifyKind, data)
		if decodeErr != nil {
			return fmt.Errorf("document is not a valid %s: %w", verifyKind, decodeErr)
		}

		fmt.Printf("✅ %s is a valid %s document (%T)\n", args[0], verifyKind, decoded)
		return nil
	})
}

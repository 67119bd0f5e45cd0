package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdata/application"
	"github.com/rios0rios0/gitdata/config"
	"github.com/rios0rios0/gitdata/domain"
)

var blobEncoding string

var blobCmd = &cobra.Command{
	Use:   "blob <file>",
	Short: "Build a blob-upload request from a local file",
	Long: `Read a local file and emit the request body for
POST /repos/:owner/:repo/git/blobs, transcoding the content per the chosen
encoding. Uploads of up to 100 MB of decoded content are accepted upstream.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlob,
}

func init() {
	blobCmd.Flags().StringVarP(&blobEncoding, "encoding", "e", "", "Content encoding: base64 or utf-8 (default: from config)")
	rootCmd.AddCommand(blobCmd)
}

func runBlob(_ *cobra.Command, args []string) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(cfg *config.Config, service *application.BlobService) error {
		encoding := cfg.DefaultEncoding()
		if blobEncoding != "" {
			parsed, parseErr := domain.ParseEncoding(blobEncoding)
			if parseErr != nil {
				return fmt.Errorf("invalid --encoding: %w", parseErr)
			}
			encoding = parsed
		}

		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return fmt.Errorf("failed to read file: %w", readErr)
		}

		request, buildErr := service.BuildCreateBlob(data, encoding)
		if buildErr != nil {
			return fmt.Errorf("failed to build blob request: %w", buildErr)
		}

		return printJSON(cfg, request)
	})
}

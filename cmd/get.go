package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <remote-path> [local-dir]",
	Short: "Download an object",
	Long: `Downloads one object into a local directory (the working directory when
omitted), named after the object's leaf. Single-shot transfer intended for
small objects.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, _, err := openBucket(ctx)
		if err != nil {
			return err
		}

		localDir := "."
		if len(args) == 2 {
			localDir = args[1]
		}

		if err := b.Download(ctx, args[0], localDir); err != nil {
			return err
		}
		fmt.Printf("Downloaded %s to %s\n", args[0], localDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// mkdirCmd represents the mkdir command
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>",
	Short: "Create a directory in the bucket",
	Long: `Creates a directory by writing its zero-byte marker key. Creating a
directory that already exists succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, _, err := openBucket(ctx)
		if err != nil {
			return err
		}

		if err := b.Mkdir(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Created dir %s in bucket %s\n", args[0], b.Name())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mkdirCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url <remote-path>",
	Short: "Print an object's public URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, _, err := openBucket(ctx)
		if err != nil {
			return err
		}

		u, err := b.URL(ctx, args[0])
		if err != nil {
			return err
		}
		if u == "" {
			return fmt.Errorf("object %s not in bucket %s", args[0], b.Name())
		}
		fmt.Println(u)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(urlCmd)
}

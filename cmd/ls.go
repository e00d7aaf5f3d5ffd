package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsDirs bool
var lsAll bool

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List bucket contents",
	Long: `Lists files in the bucket. With a dir argument, lists the entries of that
directory. --dirs lists directories instead; --all lists every key,
directory markers included.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, _, err := openBucket(ctx)
		if err != nil {
			return err
		}

		var entries []string
		switch {
		case len(args) == 1:
			entries, err = b.ListDirFiles(ctx, args[0])
		case lsDirs:
			entries, err = b.ListAllDirs(ctx)
		case lsAll:
			entries, err = b.ListAllObjects(ctx, "")
		default:
			entries, err = b.ListAllFiles(ctx)
		}
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fmt.Println(entry)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsDirs, "dirs", false, "List directories instead of files")
	lsCmd.Flags().BoolVar(&lsAll, "all", false, "List every key, directory markers included")
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var rmDir bool
var rmAll bool

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm [path]",
	Short: "Delete files from the bucket",
	Long: `Deletes one file by path. Deleting a path that is not present succeeds.
With --dir the argument is a directory whose entries are all deleted (its
marker survives). With --all every object in the bucket is deleted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if rmAll && len(args) != 0 {
			return errors.New("--all takes no path")
		}
		if !rmAll && len(args) != 1 {
			return errors.New("path required unless --all is set")
		}

		b, _, err := openBucket(ctx)
		if err != nil {
			return err
		}

		switch {
		case rmAll:
			if err := b.DeleteAllFiles(ctx); err != nil {
				return err
			}
			fmt.Printf("Emptied bucket %s\n", b.Name())
		case rmDir:
			if err := b.DeleteDirFiles(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted files under %s\n", args[0])
		default:
			if err := b.DeleteFile(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVar(&rmDir, "dir", false, "Treat path as a directory and delete its files")
	rmCmd.Flags().BoolVar(&rmAll, "all", false, "Delete every object in the bucket")
}

package cmd

import (
	"fmt"

	"cos-manager/feature/bucket"

	"github.com/spf13/cobra"
)

var md5Local bool

// md5Cmd represents the md5 command
var md5Cmd = &cobra.Command{
	Use:   "md5 <remote-path>",
	Short: "Print an object's recorded checksum",
	Long: `Prints the MD5 recorded in the object's metadata at upload time. With
--local the argument is a local file to hash instead, which makes comparing
a local copy against the bucket a two-command affair.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if md5Local {
			sum, err := bucket.ChecksumFile(args[0])
			if err != nil {
				return err
			}
			fmt.Println(sum)
			return nil
		}

		ctx := cmd.Context()
		b, _, err := openBucket(ctx)
		if err != nil {
			return err
		}

		sum, err := b.Checksum(ctx, args[0])
		if err != nil {
			return err
		}
		if sum == "" {
			return fmt.Errorf("no checksum recorded for %s", args[0])
		}
		fmt.Println(sum)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(md5Cmd)
	md5Cmd.Flags().BoolVar(&md5Local, "local", false, "Hash a local file instead of a remote object")
}

package cmd

import (
	"fmt"

	"cos-manager/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var putOverwrite bool

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <local-file> [remote-dir]",
	Short: "Upload a local file",
	Long: `Uploads a local file into the bucket under remote-dir (the bucket root
when omitted), keyed by the file's base name. The local MD5 is recorded in
the object's metadata and verified in transit. When another object anywhere
in the bucket already uses the same name, the upload overwrites it unless
--overwrite=false, in which case it is skipped.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, logg, err := openBucket(ctx)
		if err != nil {
			return err
		}

		remoteDir := ""
		if len(args) == 2 {
			remoteDir = args[1]
		}

		res, err := b.Upload(ctx, args[0], remoteDir, putOverwrite)
		if err != nil {
			if code := storage.ErrorCode(err); code != "" {
				logg.Error("upload refused by provider", zap.String("code", code))
			}
			return err
		}

		if res.Skipped {
			fmt.Printf("Skipped: %s already in bucket %s\n", res.Key, b.Name())
			return nil
		}
		fmt.Printf("Uploaded %s (md5 %s)\n", res.Key, res.Checksum)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(putCmd)
	putCmd.Flags().BoolVar(&putOverwrite, "overwrite", true, "Overwrite when the name is already taken")
}

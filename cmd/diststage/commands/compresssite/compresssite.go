package compresssite

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diststage/diststage/pkg/config"
	"github.com/diststage/diststage/pkg/workflow"
)

// NewCommand creates the compress-site command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "compress-site",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	archive, err := workflow.CompressSite(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "site archive written to %s\n", archive)
	return nil
}

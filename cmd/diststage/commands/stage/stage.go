package stage

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diststage/diststage/pkg/config"
	"github.com/diststage/diststage/pkg/output"
	"github.com/diststage/diststage/pkg/workflow"
)

// NewCommand creates the stage command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stage",
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
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		cfg.Distribution.DryRun = true
	}

	result, err := workflow.Stage(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}

	summary := output.NewRenderer().StageSummary(result)
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(summary, "\n"))
	return nil
}

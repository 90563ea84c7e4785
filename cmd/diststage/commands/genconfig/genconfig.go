package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diststage/diststage/pkg/config"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	cmd.Flags().BoolP("write", "w", false, "Write config to diststage.toml instead of stdout")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	content, err := config.GenerateConfigContent()
	if err != nil {
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	dir, _ := cmd.Flags().GetString("dir")
	path := filepath.Join(dir, "diststage.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

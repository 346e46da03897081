package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/duplink/pkg/display"
	"github.com/arthur-debert/duplink/pkg/linker"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link ROOT",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			r, err := prepareRun(cmd, args[0])
			if err != nil {
				return err
			}

			plan, err := linker.Plan(r.idx.Groups)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				linker.Report(out, plan)
				return nil
			}

			if len(r.idx.Groups) == 0 {
				display.NothingToDo(out, r.idx.Stats)
				return nil
			}

			if err := linker.Apply(cmd.Context(), r.fsys, plan, r.settings.Index.Workers); err != nil {
				return err
			}

			display.Summary(out, r.idx.Stats)
			return nil
		},
	}

	addMatchFlags(cmd)
	return cmd
}

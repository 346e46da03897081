package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/duplink/pkg/display"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scan ROOT",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")

			r, err := prepareRun(cmd, args[0])
			if err != nil {
				return err
			}

			format := display.FormatAuto
			if formatName != "" {
				if format, err = display.ParseFormat(formatName); err != nil {
					return err
				}
			} else if format, err = display.ParseFormat(r.settings.Output.Format); err != nil {
				return err
			}
			if format == display.FormatAuto {
				format = display.DetectFormat(os.Stdout)
			}

			report := display.NewReport(r.root, r.idx.Groups, r.idx.Stats)
			return report.Render(cmd.OutOrStdout(), format)
		},
	}

	addMatchFlags(cmd)
	cmd.Flags().String("format", "", "Report format: auto, term, text, json, or yaml")

	return cmd
}

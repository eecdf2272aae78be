package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/texttable"
)

// layoutCommand creates the layout command, which reports the column widths
// computed for a document.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts docOpts

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Show the computed column widths of a table document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.table(&opts, args[0])
			if err != nil {
				return err
			}
			widths, err := t.Widths()
			if err != nil {
				return err
			}

			report := texttable.New()
			report.SetHeader("Column", "Label", "Width")
			for i, w := range widths {
				label, _ := t.HeaderLabel(i)
				report.AddRow(i, label, w)
			}
			if err := report.Configure(func(h *texttable.Hints) {
				h.Border(texttable.BorderSingleLine)
				h.Align(texttable.Label("Label"), texttable.AlignLeft)
			}); err != nil {
				return err
			}
			c.Logger.Debug("computed layout", "path", args[0], "columns", len(widths))
			return report.Render(cmd.OutOrStdout())
		},
	}

	opts.register(cmd)

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/texttable"
)

// bordersCommand creates the borders command, which lists the built-in
// border styles with a sample table for each.
func (c *CLI) bordersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "borders",
		Short: "List the built-in border styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, b := range texttable.Borders() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printTitle(out, b.Name())
				t, err := borderSample(b)
				if err != nil {
					return fmt.Errorf("sample %s: %w", b.Name(), err)
				}
				if err := t.Render(out); err != nil {
					return err
				}
			}
			printInfo(cmd.ErrOrStderr(), "Use --border NAME with render or layout")
			return nil
		},
	}
}

func borderSample(b texttable.Border) (*texttable.Table, error) {
	t := texttable.New()
	t.SetHeader("Name", "Qty", "Price")
	t.AddRow("apple", 3, 1.25)
	t.AddRow("pear", 12, 0.8)
	err := t.Configure(func(h *texttable.Hints) {
		h.Border(b)
		h.LeftMargin("  ")
		h.Align(texttable.Index(0), texttable.AlignLeft)
		h.Precision(texttable.Index(2), 2)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/texttable"
)

// docOpts holds the flags that override document settings.
type docOpts struct {
	format string // document format; empty means detect from the extension
	border string // border style name
	margin string // left margin
	align  string // default alignment
}

func (o *docOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "document format: yaml, toml, json (default: from extension)")
	cmd.Flags().StringVar(&o.border, "border", "", "border style: none, single, double, heavy")
	cmd.Flags().StringVar(&o.margin, "margin", "", "left margin prepended to every table line")
	cmd.Flags().StringVar(&o.align, "align", "", "default alignment: left, right")
}

// load reads the document at path and applies the flag overrides.
func (o *docOpts) load(path string) (*texttable.Document, error) {
	var doc *texttable.Document
	if o.format == "" {
		d, err := texttable.LoadDocument(path)
		if err != nil {
			return nil, err
		}
		doc = d
	} else {
		f, err := texttable.ParseDocFormat(o.format)
		if err != nil {
			return nil, err
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		defer file.Close()
		d, err := texttable.DecodeDocument(file, f)
		if err != nil {
			return nil, err
		}
		doc = d
	}
	if o.border != "" {
		doc.Border = o.border
	}
	if o.margin != "" {
		doc.Margin = o.margin
	}
	if o.align != "" {
		doc.Align = o.align
	}
	return doc, nil
}

// table loads the document at path and builds its table.
func (c *CLI) table(opts *docOpts, path string) (*texttable.Table, error) {
	doc, err := opts.load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t, err := doc.Table()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Logger.Debug("loaded document", "path", path, "columns", len(t.Header()), "rows", t.Len())
	return t, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts docOpts
	var output string

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render table documents as text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			for i, path := range args {
				t, err := c.table(&opts, path)
				if err != nil {
					return err
				}
				if i > 0 {
					buf.WriteByte('\n')
				}
				if err := t.Render(&buf); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printSuccess(cmd.ErrOrStderr(), "Rendered %d table(s)", len(args))
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

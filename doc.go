// Package texttable renders tabular data as aligned, fixed-width plain text.
//
// A [Table] holds header labels, rows of typed values and formatting
// [Hints]. Rendering runs three passes: column widths are measured from the
// header and every data row, a render directive per column is derived from
// the first data row, and then the header, the optional separator rule and
// the rows are written.
//
//	t := texttable.New()
//	t.SetHeader("A", "C")
//	t.AddRow(10, 2.5)
//	err := t.Configure(func(h *texttable.Hints) {
//	    h.Align(texttable.Label("A"), texttable.AlignLeft)
//	    h.Precision(texttable.Label("C"), 2)
//	    h.Postfix(texttable.Label("C"), "%")
//	})
//	err = t.Render(os.Stdout)
//
// prints
//
//	A      C
//	10 2.50%
//
// # Values
//
// Cells may be strings (Text), signed integers or uint8..uint32 (Integer),
// floats (Real) or [time.Time] (Timestamp). Any other type fails the render
// with [ErrUnsupportedValueType]. Real columns need an explicit precision;
// without one the render fails with [ErrMissingPrecision].
//
// Widths are counted in code points, not display cells.
//
// # Hints
//
// Hints are keyed by column, selected with [Index], [Label] or the wildcard
// [All]. A column hint overrides the wildcard; a later hint for the same key
// overrides an earlier one.
//
//   - Align — left or right justification (default right)
//   - Precision — decimal places of Real cells
//   - Prefix, Postfix — text around every cell of the column
//   - LeftMargin — text before every header, separator and data line
//   - DefaultAlignment — AlignLeft forces every column left
//   - Border — column separators and header rule
//
// # Rows
//
// [Table.AddRow] appends a data row. The first data row is the example row:
// its value kinds fix the directive of each column, and a later row holding
// a different kind fails with [ErrFormatMismatch]. [Table.AddLine] appends a
// literal line, written verbatim without margin and ignored when measuring.
//
// # Borders
//
// [BorderNone] separates columns with one space. [BorderSingleLine] uses
// " | " and rules the header with dashes joined by "-|-". [BorderDouble]
// and [BorderHeavy] use box-drawing glyphs. Implement [Border] for custom
// styles.
//
// # Documents
//
// A [Document] describes a table in YAML, TOML or JSON. Use [LoadDocument]
// and [Document.Table] to build a table from a file.
//
// # Items
//
// [FromItems], [Collect] and [Write] build tables from values implementing
// [Rower], with the optional [Headed], [Bordered], [Aligned], [Precise] and
// [Margined] interfaces.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling. Failures
// tied to a cell are returned as [*CellError], which carries the row,
// column, value and directive and unwraps to the sentinel.
package texttable

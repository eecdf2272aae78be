package texttable

import (
	"fmt"
	"io"
	"strings"
)

func (t *Table) render(w io.Writer, widths []int, formats []columnFormat) error {
	h := t.hints
	margin := h.leftMargin()
	if len(t.header) > 0 {
		if err := t.writeHeader(w, margin, widths); err != nil {
			return err
		}
		if h.border.HasRowSeparator() {
			if err := writeSeparator(w, margin, widths, h.border); err != nil {
				return err
			}
		}
	}
	for r, row := range t.rows {
		if row.isLine {
			if _, err := fmt.Fprintln(w, row.line); err != nil {
				return err
			}
			continue
		}
		line, err := t.formatRow(r, row.values, formats, margin)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) writeHeader(w io.Writer, margin string, widths []int) error {
	h := t.hints
	var sb strings.Builder
	sb.WriteString(margin)
	for i, label := range t.header {
		if i > 0 {
			sb.WriteString(h.border.Vertical())
		}
		sb.WriteString(alignCell(label, widths[i], h.alignmentOf(i)))
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func writeSeparator(w io.Writer, margin string, widths []int, b Border) error {
	var sb strings.Builder
	sb.WriteString(margin)
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(b.Connect())
		}
		sb.WriteString(b.Horizontal(width))
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// formatRow renders the cells of data row r with the directives derived
// from the example row.
func (t *Table) formatRow(r int, values []any, formats []columnFormat, margin string) (string, error) {
	h := t.hints
	var sb strings.Builder
	sb.WriteString(margin)
	for col, v := range values {
		if col >= len(formats) {
			return "", &CellError{Row: r, Column: col, Value: v, Err: ErrIndexOutOfRange}
		}
		f := formats[col]
		c, ok := classify(v)
		if !ok {
			return "", &CellError{Row: r, Column: col, Value: v, Directive: f.directive, Err: ErrUnsupportedValueType}
		}
		if !f.accepts(c.kind) {
			return "", &CellError{Row: r, Column: col, Value: v, Directive: f.directive, Err: ErrFormatMismatch}
		}
		if col > 0 {
			sb.WriteString(h.border.Vertical())
		}
		fmt.Fprintf(&sb, f.directive, c.arg(h.timeLayout))
	}
	return sb.String(), nil
}

// arg is the operand passed to a column directive.
func (c cell) arg(layout string) any {
	switch c.kind {
	case KindInteger:
		return c.num
	case KindReal:
		return c.real
	case KindTimestamp:
		return c.time.Format(layout)
	default:
		return c.text
	}
}

// alignCell pads s to width code points.
func alignCell(s string, width int, align Alignment) string {
	if align == AlignLeft {
		return fmt.Sprintf("%-*s", width, s)
	}
	return fmt.Sprintf("%*s", width, s)
}

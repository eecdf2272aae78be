package texttable

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func colCount(header []string, rows []*Row, isLine func(int) bool) int {
	n := len(header)
	for i, row := range rows {
		if isLine(i) {
			continue
		}
		if len(row.values) > n {
			n = len(row.values)
		}
	}
	return n
}

// computeWidths returns, per column, the widest of the header label and
// every data cell including its prefix, postfix and decimal places.
// Literal lines do not contribute.
func (t *Table) computeWidths() ([]int, error) {
	h := t.hints
	widths := make([]int, colCount(t.header, t.rows, h.isLine))
	for i, label := range t.header {
		widths[i] = utf8.RuneCountInString(label)
	}
	for r, row := range t.rows {
		if h.isLine(r) {
			continue
		}
		for col, v := range row.values {
			c, ok := classify(v)
			if !ok {
				return nil, &CellError{Row: r, Column: col, Value: v, Err: ErrUnsupportedValueType}
			}
			w := c.naturalLength(h.timeLayout) + h.extraWidthOf(col)
			if c.kind == KindReal {
				p, ok := h.precisionOf(col)
				if !ok {
					return nil, &CellError{Row: r, Column: col, Value: v, Err: ErrMissingPrecision}
				}
				// Rounding can carry into a new integer digit.
				if n := realFormattedLength(c.real, p) + h.affixWidthOf(col); n > w {
					w = n
				}
			}
			if w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths, nil
}

func realFormattedLength(f float64, precision int) int {
	return len(strconv.FormatFloat(f, 'f', precision, 64))
}

// columnFormat is the render directive of one column, derived from the
// example row.
type columnFormat struct {
	kind      Kind
	directive string
}

// accepts reports whether a cell of kind k can be rendered by f.
func (f columnFormat) accepts(k Kind) bool {
	switch f.kind {
	case KindText, KindTimestamp:
		return k == KindText || k == KindTimestamp
	default:
		return k == f.kind
	}
}

// exampleRow returns the index of the first data row, or -1.
func (t *Table) exampleRow() int {
	for i := range t.rows {
		if !t.hints.isLine(i) {
			return i
		}
	}
	return -1
}

// buildFormats derives one directive per column of the example row. A table
// without rows has no directives.
func (t *Table) buildFormats(widths []int) ([]columnFormat, error) {
	if len(t.rows) == 0 {
		return nil, nil
	}
	r := t.exampleRow()
	if r < 0 {
		return nil, ErrNoExampleRow
	}
	h := t.hints
	example := t.rows[r].values
	formats := make([]columnFormat, len(example))
	for col, v := range example {
		c, ok := classify(v)
		if !ok {
			return nil, &CellError{Row: r, Column: col, Value: v, Err: ErrUnsupportedValueType}
		}
		var verb string
		switch c.kind {
		case KindInteger:
			verb = "d"
		case KindReal:
			p, ok := h.precisionOf(col)
			if !ok {
				return nil, &CellError{Row: r, Column: col, Value: v, Err: ErrMissingPrecision}
			}
			verb = "." + strconv.Itoa(p) + "f"
		default:
			verb = "s"
		}

		var sb strings.Builder
		sb.WriteString(escapeDirective(h.prefixOf(col)))
		sb.WriteByte('%')
		if h.alignmentOf(col) == AlignLeft {
			sb.WriteByte('-')
		}
		if field := widths[col] - h.affixWidthOf(col); field > 0 {
			sb.WriteString(strconv.Itoa(field))
		}
		sb.WriteString(verb)
		sb.WriteString(escapeDirective(h.postfixOf(col)))
		formats[col] = columnFormat{kind: c.kind, directive: sb.String()}
	}
	return formats, nil
}

// escapeDirective makes s safe to embed in a format directive.
func escapeDirective(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

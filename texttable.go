package texttable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedValueType = errors.New("unsupported value type")
	ErrUnknownHeaderLabel   = errors.New("unknown header label")
	ErrNoExampleRow         = errors.New("no example row")
	ErrFormatMismatch       = errors.New("format mismatch")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrMissingPrecision     = errors.New("missing precision")
	ErrNegativePrecision    = errors.New("negative precision")
	ErrUnknownBorder        = errors.New("unknown border style")
	ErrUnknownAlignment     = errors.New("unknown alignment")
	ErrMissingInterface     = errors.New("missing required interface")
)

// CellError reports a failure tied to one cell. It unwraps to one of the
// sentinel errors.
type CellError struct {
	Row       int
	Column    int
	Value     any
	Directive string
	Err       error
}

func (e *CellError) Error() string {
	msg := fmt.Sprintf("%v: row %d column %d: %T(%v)", e.Err, e.Row, e.Column, e.Value, e.Value)
	if e.Directive != "" {
		msg += fmt.Sprintf(" with directive %q", e.Directive)
	}
	return msg
}

func (e *CellError) Unwrap() error { return e.Err }

// Row is a table row: either a sequence of values or a literal line that
// is written verbatim.
type Row struct {
	index  int
	values []any
	line   string
	isLine bool
}

// Index returns the position of the row in its table.
func (r *Row) Index() int { return r.index }

// IsLine reports whether the row is a literal line.
func (r *Row) IsLine() bool { return r.isLine }

// Values returns the cell values of a data row.
func (r *Row) Values() []any { return r.values }

// Line returns the text of a literal line.
func (r *Row) Line() string { return r.line }

// Table collects a header, rows and formatting hints, and renders them as
// aligned fixed-width text. A Table must not be modified while it renders.
type Table struct {
	header []string
	rows   []*Row
	hints  *Hints
}

// New returns an empty table with default hints.
func New() *Table {
	return &Table{hints: newHints()}
}

// SetHeader sets the column labels and returns the stored slice.
func (t *Table) SetHeader(labels ...string) []string {
	t.header = append([]string(nil), labels...)
	return t.header
}

// Header returns a copy of the column labels.
func (t *Table) Header() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}

// HeaderLabel returns the label of column i.
func (t *Table) HeaderLabel(i int) (string, error) {
	if i < 0 || i >= len(t.header) {
		return "", fmt.Errorf("%w: header %d of %d", ErrIndexOutOfRange, i, len(t.header))
	}
	return t.header[i], nil
}

// AddRow appends a data row. Values must be strings, integers, floats or
// [time.Time]; other kinds fail when the table is rendered.
func (t *Table) AddRow(values ...any) *Row {
	r := &Row{index: len(t.rows), values: append([]any(nil), values...)}
	t.rows = append(t.rows, r)
	return r
}

// AddLine appends a literal line spanning the whole table.
func (t *Table) AddLine(text string) *Row {
	r := &Row{index: len(t.rows), line: text, isLine: true}
	t.rows = append(t.rows, r)
	t.hints.markLine(r.index)
	return r
}

// Len returns the number of rows, literal lines included.
func (t *Table) Len() int { return len(t.rows) }

// Configure applies fn to the table hints. Label selectors resolve against
// the current header, so set the header first. The first invalid hint is
// returned; hints applied before it are kept.
func (t *Table) Configure(fn func(h *Hints)) error {
	t.hints.header = t.header
	t.hints.err = nil
	fn(t.hints)
	err := t.hints.err
	t.hints.err = nil
	return err
}

// Widths returns the rendered width of every column.
func (t *Table) Widths() ([]int, error) {
	return t.computeWidths()
}

// Render writes the table to w. On error, w may already hold part of the
// output.
func (t *Table) Render(w io.Writer) error {
	widths, err := t.computeWidths()
	if err != nil {
		return err
	}
	formats, err := t.buildFormats(widths)
	if err != nil {
		return err
	}
	return t.render(w, widths, formats)
}

// Append renders the table and appends the text to dst.
func (t *Table) Append(dst []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	err := t.Render(buf)
	return buf.Bytes(), err
}

// Marshal renders the table and returns the text.
func (t *Table) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

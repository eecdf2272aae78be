package texttable

import (
	"fmt"
	"unicode/utf8"
)

// Alignment controls how a column is justified within its width.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
)

// String returns the alignment name.
func (a Alignment) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "right"
}

// ParseAlignment parses "left" or "right".
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignRight, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

const wildcard = -1

// Column selects the column a hint applies to.
type Column struct {
	index   int
	label   string
	byLabel bool
	all     bool
}

// All is the wildcard column. Its hints apply to every column that has no
// hint of its own.
var All = Column{all: true}

// Index selects a column by zero-based position.
func Index(i int) Column { return Column{index: i} }

// Label selects the first column whose header label equals s.
func Label(s string) Column { return Column{label: s, byLabel: true} }

func (c Column) resolve(header []string) (int, error) {
	if c.all {
		return wildcard, nil
	}
	if c.byLabel {
		return resolveColumnIndex(header, c.label)
	}
	if c.index < 0 {
		return 0, fmt.Errorf("%w: column %d", ErrIndexOutOfRange, c.index)
	}
	return c.index, nil
}

func resolveColumnIndex(header []string, label string) (int, error) {
	for i, h := range header {
		if h == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeaderLabel, label)
}

type hintAttr int

const (
	attrAlign hintAttr = iota
	attrPrecision
	attrPrefix
	attrPostfix
	attrMargin
	attrLine
)

type hintKey struct {
	attr hintAttr
	col  int
}

// Hints holds the formatting overrides of a table. Later writes to the same
// key replace earlier ones. Use [Table.Configure] to modify them.
type Hints struct {
	values       map[hintKey]any
	defaultAlign Alignment
	border       Border
	timeLayout   string

	header []string
	err    error
}

func newHints() *Hints {
	return &Hints{
		values:     make(map[hintKey]any),
		border:     BorderNone,
		timeLayout: DefaultTimeLayout,
	}
}

func (h *Hints) fail(err error) {
	if h.err == nil {
		h.err = err
	}
}

func (h *Hints) set(attr hintAttr, c Column, v any) *Hints {
	col, err := c.resolve(h.header)
	if err != nil {
		h.fail(err)
		return h
	}
	h.values[hintKey{attr: attr, col: col}] = v
	return h
}

// DefaultAlignment sets the table-wide alignment. AlignLeft forces every
// column left regardless of per-column hints.
func (h *Hints) DefaultAlignment(a Alignment) *Hints {
	h.defaultAlign = a
	return h
}

// Border sets the border style. A nil style restores [BorderNone].
func (h *Hints) Border(b Border) *Hints {
	if b == nil {
		b = BorderNone
	}
	h.border = b
	return h
}

// TimeLayout sets the layout used to render Timestamp cells.
func (h *Hints) TimeLayout(layout string) *Hints {
	h.timeLayout = layout
	return h
}

// Align sets the alignment of column c.
func (h *Hints) Align(c Column, a Alignment) *Hints {
	return h.set(attrAlign, c, a)
}

// Precision sets the number of decimal places of Real cells in column c.
func (h *Hints) Precision(c Column, digits int) *Hints {
	if digits < 0 {
		h.fail(fmt.Errorf("%w: %d", ErrNegativePrecision, digits))
		return h
	}
	return h.set(attrPrecision, c, digits)
}

// Prefix sets text written before every cell of column c.
func (h *Hints) Prefix(c Column, s string) *Hints {
	return h.set(attrPrefix, c, s)
}

// Postfix sets text written after every cell of column c.
func (h *Hints) Postfix(c Column, s string) *Hints {
	return h.set(attrPostfix, c, s)
}

// LeftMargin sets text written at the start of the header, the separator
// and every data row. Literal lines are not indented.
func (h *Hints) LeftMargin(s string) *Hints {
	h.values[hintKey{attr: attrMargin, col: wildcard}] = s
	return h
}

// lookup returns the hint for col, falling back to the wildcard.
func (h *Hints) lookup(attr hintAttr, col int) (any, bool) {
	if v, ok := h.values[hintKey{attr: attr, col: col}]; ok {
		return v, true
	}
	v, ok := h.values[hintKey{attr: attr, col: wildcard}]
	return v, ok
}

func (h *Hints) alignmentOf(col int) Alignment {
	if h.defaultAlign == AlignLeft {
		return AlignLeft
	}
	if v, ok := h.lookup(attrAlign, col); ok && v.(Alignment) == AlignLeft {
		return AlignLeft
	}
	return AlignRight
}

func (h *Hints) precisionOf(col int) (int, bool) {
	v, ok := h.lookup(attrPrecision, col)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (h *Hints) stringOf(attr hintAttr, col int) string {
	if v, ok := h.lookup(attr, col); ok {
		return v.(string)
	}
	return ""
}

func (h *Hints) prefixOf(col int) string  { return h.stringOf(attrPrefix, col) }
func (h *Hints) postfixOf(col int) string { return h.stringOf(attrPostfix, col) }
func (h *Hints) leftMargin() string       { return h.stringOf(attrMargin, wildcard) }

func (h *Hints) affixWidthOf(col int) int {
	return utf8.RuneCountInString(h.prefixOf(col)) + utf8.RuneCountInString(h.postfixOf(col))
}

// extraWidthOf is the room column col needs beyond a cell's natural length.
func (h *Hints) extraWidthOf(col int) int {
	n := h.affixWidthOf(col)
	if p, _ := h.precisionOf(col); p > 0 {
		n += p + 1
	}
	return n
}

func (h *Hints) markLine(row int) {
	h.values[hintKey{attr: attrLine, col: row}] = true
}

func (h *Hints) isLine(row int) bool {
	_, ok := h.values[hintKey{attr: attrLine, col: row}]
	return ok
}

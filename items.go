package texttable

import (
	"fmt"
	"io"
	"iter"
)

// --- Core Interface ---

// Rower provides the cell values of one data row. Required by [FromItems].
type Rower interface {
	Row() []any
}

// --- Optional Interfaces ---
//
// Optional interfaces are read from the first item only.

// Headed provides column labels.
// Without it, the table renders without a header line.
type Headed interface {
	Header() []string
}

// Bordered controls the border style.
// Default: [BorderNone].
type Bordered interface {
	Border() Border
}

// Aligned sets per-column alignment.
// Default: AlignRight.
type Aligned interface {
	Alignments() []Alignment
}

// Precise sets the decimal places of Real columns. Negative entries leave
// the column unset.
type Precise interface {
	Precisions() []int
}

// Margined prepends text to every rendered line except literal lines.
type Margined interface {
	Margin() string
}

// FromItems builds a table with one data row per item.
func FromItems[T any](items ...T) (*Table, error) {
	t := New()
	if len(items) == 0 {
		return t, nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return nil, fmt.Errorf("%w: requires Rower, not implemented by %T", ErrMissingInterface, items[0])
	}
	if h, ok := first.(Headed); ok {
		t.SetHeader(h.Header()...)
	}
	for _, item := range items {
		t.AddRow(any(item).(Rower).Row()...)
	}
	err := t.Configure(func(h *Hints) {
		if b, ok := first.(Bordered); ok {
			h.Border(b.Border())
		}
		if a, ok := first.(Aligned); ok {
			for i, align := range a.Alignments() {
				h.Align(Index(i), align)
			}
		}
		if p, ok := first.(Precise); ok {
			for i, digits := range p.Precisions() {
				if digits >= 0 {
					h.Precision(Index(i), digits)
				}
			}
		}
		if m, ok := first.(Margined); ok {
			h.LeftMargin(m.Margin())
		}
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Collect builds a table from the items of seq. See [FromItems].
func Collect[T any](seq iter.Seq[T]) (*Table, error) {
	var items []T
	seq(func(item T) bool {
		items = append(items, item)
		return true
	})
	return FromItems(items...)
}

// Write renders items as a table to w.
func Write[T any](w io.Writer, items ...T) error {
	t, err := FromItems(items...)
	if err != nil {
		return err
	}
	return t.Render(w)
}

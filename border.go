package texttable

import (
	"fmt"
	"strings"
)

// Border renders the column separators and the optional rule between the
// header and the body. Implement it to supply a custom style.
type Border interface {
	// Name identifies the style.
	Name() string
	// Vertical is written between adjacent columns of the header and of
	// every data row.
	Vertical() string
	// HasRowSeparator reports whether a rule is drawn below the header.
	HasRowSeparator() bool
	// Horizontal returns the rule segment spanning a column of width cells.
	Horizontal(width int) string
	// Connect joins two rule segments at a column boundary.
	Connect() string
}

// borderChars is a Border described by its glyphs.
type borderChars struct {
	name       string
	vertical   string
	horizontal string
	connect    string
}

func (b borderChars) Name() string          { return b.name }
func (b borderChars) Vertical() string      { return b.vertical }
func (b borderChars) HasRowSeparator() bool { return b.horizontal != "" }
func (b borderChars) Connect() string       { return b.connect }

func (b borderChars) Horizontal(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(b.horizontal, width)
}

// Built-in border styles.
var (
	// BorderNone separates columns with a single space and draws no rule.
	BorderNone Border = borderChars{name: "none", vertical: " "}
	// BorderSingleLine separates columns with " | " and rules the header
	// with dashes crossed by "-|-".
	BorderSingleLine Border = borderChars{name: "single", vertical: " | ", horizontal: "-", connect: "-|-"}
	// BorderDouble uses box-drawing double lines.
	BorderDouble Border = borderChars{name: "double", vertical: " ║ ", horizontal: "═", connect: "═╬═"}
	// BorderHeavy uses box-drawing heavy lines.
	BorderHeavy Border = borderChars{name: "heavy", vertical: " ┃ ", horizontal: "━", connect: "━╋━"}
)

var borders = []Border{BorderNone, BorderSingleLine, BorderDouble, BorderHeavy}

// Borders returns the built-in border styles.
func Borders() []Border {
	out := make([]Border, len(borders))
	copy(out, borders)
	return out
}

// ParseBorder returns the built-in border style with the given name.
func ParseBorder(name string) (Border, error) {
	for _, b := range borders {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
}

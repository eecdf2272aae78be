package texttable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document errors.
var (
	ErrUnsupportedDocFormat = errors.New("unsupported document format")
	ErrInvalidDocument      = errors.New("invalid document")
)

// DocFormat is the encoding of a table document.
type DocFormat string

const (
	DocYAML DocFormat = "yaml"
	DocTOML DocFormat = "toml"
	DocJSON DocFormat = "json"
)

var docFormats = []DocFormat{DocYAML, DocTOML, DocJSON}

// String returns the format name.
func (f DocFormat) String() string { return string(f) }

// ParseDocFormat parses a document format name. "yml" is accepted as YAML.
func ParseDocFormat(s string) (DocFormat, error) {
	if s == "yml" {
		return DocYAML, nil
	}
	for _, f := range docFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDocFormat, s)
}

// DocFormatFromPath picks the document format from the file extension.
func DocFormatFromPath(path string) (DocFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseDocFormat(ext)
}

// Document is a declarative table description.
//
//	border: single
//	margin: "  "
//	header: [Name, Share]
//	columns:
//	  - label: Share
//	    precision: 2
//	    postfix: "%"
//	rows:
//	  - [alpha, 12.5]
//	  - line: "-- end --"
type Document struct {
	Border     string      `yaml:"border,omitempty" toml:"border,omitempty" json:"border,omitempty"`
	Align      string      `yaml:"align,omitempty" toml:"align,omitempty" json:"align,omitempty"`
	Margin     string      `yaml:"margin,omitempty" toml:"margin,omitempty" json:"margin,omitempty"`
	TimeLayout string      `yaml:"time_layout,omitempty" toml:"time_layout,omitempty" json:"time_layout,omitempty"`
	Header     []string    `yaml:"header,omitempty" toml:"header,omitempty" json:"header,omitempty"`
	Columns    []ColumnDoc `yaml:"columns,omitempty" toml:"columns,omitempty" json:"columns,omitempty"`
	Rows       []any       `yaml:"rows,omitempty" toml:"rows,omitempty" json:"rows,omitempty"`
}

// ColumnDoc holds the hints of one column, selected by Label or Index.
// The label "*" selects every column.
type ColumnDoc struct {
	Label     string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Index     *int   `yaml:"index,omitempty" toml:"index,omitempty" json:"index,omitempty"`
	Align     string `yaml:"align,omitempty" toml:"align,omitempty" json:"align,omitempty"`
	Precision *int   `yaml:"precision,omitempty" toml:"precision,omitempty" json:"precision,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" toml:"prefix,omitempty" json:"prefix,omitempty"`
	Postfix   string `yaml:"postfix,omitempty" toml:"postfix,omitempty" json:"postfix,omitempty"`
	// Type "timestamp" parses string cells of the column as RFC 3339 times.
	Type string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
}

func (c ColumnDoc) column() (Column, error) {
	switch {
	case c.Label == "*":
		return All, nil
	case c.Label != "":
		return Label(c.Label), nil
	case c.Index != nil:
		return Index(*c.Index), nil
	default:
		return Column{}, fmt.Errorf("%w: column needs a label or an index", ErrInvalidDocument)
	}
}

// DecodeDocument reads a document encoded as f.
func DecodeDocument(r io.Reader, f DocFormat) (*Document, error) {
	var doc Document
	switch f {
	case DocYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case DocTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case DocJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDocFormat, f)
	}
	return &doc, nil
}

// LoadDocument reads the document at path, choosing the decoder from the
// file extension.
func LoadDocument(path string) (*Document, error) {
	f, err := DocFormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()
	return DecodeDocument(file, f)
}

// Table builds the table the document describes.
func (d *Document) Table() (*Table, error) {
	t := New()
	t.SetHeader(d.Header...)

	var border Border
	if d.Border != "" {
		b, err := ParseBorder(d.Border)
		if err != nil {
			return nil, err
		}
		border = b
	}
	defaultAlign := AlignRight
	if d.Align != "" {
		a, err := ParseAlignment(d.Align)
		if err != nil {
			return nil, err
		}
		defaultAlign = a
	}

	type columnHints struct {
		sel   Column
		align *Alignment
		doc   ColumnDoc
	}
	cols := make([]columnHints, len(d.Columns))
	timestamps := make(map[int]bool)
	for i, cd := range d.Columns {
		sel, err := cd.column()
		if err != nil {
			return nil, err
		}
		cols[i] = columnHints{sel: sel, doc: cd}
		if cd.Align != "" {
			a, err := ParseAlignment(cd.Align)
			if err != nil {
				return nil, err
			}
			cols[i].align = &a
		}
		switch cd.Type {
		case "", "text", "integer", "real":
		case "timestamp":
			idx, err := sel.resolve(d.Header)
			if err != nil {
				return nil, err
			}
			timestamps[idx] = true
		default:
			return nil, fmt.Errorf("%w: column type %q", ErrInvalidDocument, cd.Type)
		}
	}

	for r, raw := range d.Rows {
		switch row := raw.(type) {
		case []any:
			values := make([]any, len(row))
			for col, v := range row {
				nv, err := normalizeValue(v, timestamps[col] || timestamps[wildcard])
				if err != nil {
					return nil, fmt.Errorf("row %d column %d: %w", r, col, err)
				}
				values[col] = nv
			}
			t.AddRow(values...)
		case map[string]any:
			line, ok := row["line"].(string)
			if !ok {
				return nil, fmt.Errorf("%w: row %d: mapping rows need a string \"line\"", ErrInvalidDocument, r)
			}
			t.AddLine(line)
		default:
			return nil, fmt.Errorf("%w: row %d: unexpected %T", ErrInvalidDocument, r, raw)
		}
	}

	err := t.Configure(func(h *Hints) {
		h.DefaultAlignment(defaultAlign)
		if border != nil {
			h.Border(border)
		}
		if d.Margin != "" {
			h.LeftMargin(d.Margin)
		}
		if d.TimeLayout != "" {
			h.TimeLayout(d.TimeLayout)
		}
		for _, c := range cols {
			if c.align != nil {
				h.Align(c.sel, *c.align)
			}
			if c.doc.Precision != nil {
				h.Precision(c.sel, *c.doc.Precision)
			}
			if c.doc.Prefix != "" {
				h.Prefix(c.sel, c.doc.Prefix)
			}
			if c.doc.Postfix != "" {
				h.Postfix(c.sel, c.doc.Postfix)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

var timestampLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// normalizeValue maps decoder output onto the kinds a table accepts.
func normalizeValue(v any, timestamp bool) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrInvalidDocument, x)
		}
		return f, nil
	case string:
		if !timestamp {
			return x, nil
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, x); err == nil {
				return ts, nil
			}
		}
		return nil, fmt.Errorf("%w: timestamp %q", ErrInvalidDocument, x)
	default:
		return v, nil
	}
}

package texttable

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := map[string]struct {
		in   any
		kind Kind
		ok   bool
	}{
		"string":  {in: "x", kind: KindText, ok: true},
		"int":     {in: 1, kind: KindInteger, ok: true},
		"int8":    {in: int8(1), kind: KindInteger, ok: true},
		"int16":   {in: int16(1), kind: KindInteger, ok: true},
		"int32":   {in: int32(1), kind: KindInteger, ok: true},
		"int64":   {in: int64(1), kind: KindInteger, ok: true},
		"uint8":   {in: uint8(1), kind: KindInteger, ok: true},
		"uint16":  {in: uint16(1), kind: KindInteger, ok: true},
		"uint32":  {in: uint32(1), kind: KindInteger, ok: true},
		"float32": {in: float32(1), kind: KindReal, ok: true},
		"float64": {in: 1.0, kind: KindReal, ok: true},
		"time":    {in: ts, kind: KindTimestamp, ok: true},
		"bool":    {in: true, kind: KindInvalid, ok: false},
		"nil":     {in: nil, kind: KindInvalid, ok: false},
		"pointer": {in: new(int), kind: KindInvalid, ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, ok := classify(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, c.kind)
		})
	}
}

func TestNaturalLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want int
	}{
		"text":             {in: "héllo", want: 5},
		"empty text":       {in: "", want: 0},
		"zero":             {in: 0, want: 1},
		"integer":          {in: 12345, want: 5},
		"negative integer": {in: -123, want: 4},
		"small real":       {in: 0.5, want: 1},
		"negative real":    {in: -0.5, want: 2},
		"ten":              {in: 10.0, want: 2},
		"below thousand":   {in: 999.9, want: 3},
		"thousand":         {in: 1000.0, want: 4},
		"negative million": {in: -1e6, want: 8},
		"nan":              {in: math.NaN(), want: 0},
		"negative inf":     {in: math.Inf(-1), want: 0},
		"timestamp":        {in: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: 19},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, ok := classify(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, c.naturalLength(DefaultTimeLayout))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "real", KindReal.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestAlignmentOfPrecedence(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		defaultAlign Alignment
		column       *Alignment
		want         Alignment
	}{
		"defaults":                  {defaultAlign: AlignRight, want: AlignRight},
		"column left":               {defaultAlign: AlignRight, column: ptr(AlignLeft), want: AlignLeft},
		"column right":              {defaultAlign: AlignRight, column: ptr(AlignRight), want: AlignRight},
		"default left":              {defaultAlign: AlignLeft, want: AlignLeft},
		"default left column right": {defaultAlign: AlignLeft, column: ptr(AlignRight), want: AlignLeft},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := newHints()
			h.DefaultAlignment(tt.defaultAlign)
			if tt.column != nil {
				h.Align(Index(0), *tt.column)
			}
			assert.Equal(t, tt.want, h.alignmentOf(0))
		})
	}
}

func TestExtraWidthOf(t *testing.T) {
	t.Parallel()
	h := newHints()
	h.Prefix(Index(0), "€")
	h.Postfix(Index(0), "/kg")
	h.Precision(Index(0), 2)
	h.Precision(Index(1), 0)
	assert.Equal(t, 1+3+3, h.extraWidthOf(0))
	assert.Equal(t, 0, h.extraWidthOf(1))
	assert.Equal(t, 0, h.extraWidthOf(2))
}

func TestHintsWildcardFallback(t *testing.T) {
	t.Parallel()
	h := newHints()
	h.Postfix(All, "!")
	h.Postfix(Index(1), "?")
	assert.Equal(t, "!", h.postfixOf(0))
	assert.Equal(t, "?", h.postfixOf(1))
	_, ok := h.precisionOf(0)
	assert.False(t, ok)
}

func TestMarkLine(t *testing.T) {
	t.Parallel()
	h := newHints()
	assert.False(t, h.isLine(3))
	h.markLine(3)
	h.markLine(3)
	assert.True(t, h.isLine(3))
	assert.False(t, h.isLine(2))
}

func TestLeftMargin(t *testing.T) {
	t.Parallel()
	h := newHints()
	assert.Empty(t, h.leftMargin())
	h.LeftMargin("  ")
	assert.Equal(t, "  ", h.leftMargin())
}

func TestBuildFormats(t *testing.T) {
	t.Parallel()
	tbl := New()
	tbl.SetHeader("A", "C", "S", "T")
	tbl.AddLine("skipped")
	tbl.AddRow(10, 2.5, "x", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, tbl.Configure(func(h *Hints) {
		h.Align(Label("A"), AlignLeft)
		h.Precision(Label("C"), 2)
		h.Postfix(Label("C"), "%")
		h.Prefix(Label("S"), "<")
		h.Postfix(Label("S"), ">")
	}))

	widths, err := tbl.computeWidths()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 3, 19}, widths)

	formats, err := tbl.buildFormats(widths)
	require.NoError(t, err)
	assert.Equal(t, []columnFormat{
		{kind: KindInteger, directive: "%-2d"},
		{kind: KindReal, directive: "%4.2f%%"},
		{kind: KindText, directive: "<%1s>"},
		{kind: KindTimestamp, directive: "%19s"},
	}, formats)
}

func TestBuildFormatsZeroWidth(t *testing.T) {
	t.Parallel()
	tbl := New()
	tbl.AddRow("")
	formats, err := tbl.buildFormats([]int{0})
	require.NoError(t, err)
	assert.Equal(t, "%s", formats[0].directive)
}

func TestColumnFormatAccepts(t *testing.T) {
	t.Parallel()
	text := columnFormat{kind: KindText}
	assert.True(t, text.accepts(KindText))
	assert.True(t, text.accepts(KindTimestamp))
	assert.False(t, text.accepts(KindInteger))

	integer := columnFormat{kind: KindInteger}
	assert.True(t, integer.accepts(KindInteger))
	assert.False(t, integer.accepts(KindReal))
}

func TestColCountSkipsLines(t *testing.T) {
	t.Parallel()
	rows := []*Row{{values: []any{1}}, {isLine: true}, {values: []any{1, 2, 3}}}
	isLine := func(i int) bool { return i == 1 }
	assert.Equal(t, 3, colCount([]string{"A"}, rows, isLine))
	assert.Equal(t, 4, colCount([]string{"A", "B", "C", "D"}, rows, isLine))
}

func TestEscapeDirective(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "%%", escapeDirective("%"))
	assert.Equal(t, "a%%b%%%%", escapeDirective("a%b%%"))
	assert.Equal(t, "plain", escapeDirective("plain"))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, AlignRight))
	assert.Equal(t, "  äö", alignCell("äö", 4, AlignRight))
	assert.Equal(t, "abc", alignCell("abc", 2, AlignRight))
}

func ptr[T any](v T) *T { return &v }

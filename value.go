package texttable

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// Kind classifies a cell value.
type Kind int

const (
	KindInvalid Kind = iota
	KindText
	KindInteger
	KindReal
	KindTimestamp
)

// DefaultTimeLayout is the canonical rendering of Timestamp cells unless a
// table overrides it with [Hints.TimeLayout].
const DefaultTimeLayout = "2006-01-02 15:04:05"

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindText:      "text",
	KindInteger:   "integer",
	KindReal:      "real",
	KindTimestamp: "timestamp",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// cell is a classified value. Only the field matching kind is meaningful.
type cell struct {
	kind Kind
	text string
	num  int64
	real float64
	time time.Time
}

// classify maps a Go value onto one of the supported kinds.
func classify(v any) (cell, bool) {
	switch x := v.(type) {
	case string:
		return cell{kind: KindText, text: x}, true
	case int:
		return cell{kind: KindInteger, num: int64(x)}, true
	case int8:
		return cell{kind: KindInteger, num: int64(x)}, true
	case int16:
		return cell{kind: KindInteger, num: int64(x)}, true
	case int32:
		return cell{kind: KindInteger, num: int64(x)}, true
	case int64:
		return cell{kind: KindInteger, num: x}, true
	case uint8:
		return cell{kind: KindInteger, num: int64(x)}, true
	case uint16:
		return cell{kind: KindInteger, num: int64(x)}, true
	case uint32:
		return cell{kind: KindInteger, num: int64(x)}, true
	case float32:
		return cell{kind: KindReal, real: float64(x)}, true
	case float64:
		return cell{kind: KindReal, real: x}, true
	case time.Time:
		return cell{kind: KindTimestamp, time: x}, true
	default:
		return cell{}, false
	}
}

// naturalLength is the unpadded rendered length of c in code points.
// For Real cells only the integer part (and sign) is counted; the
// fractional part depends on the column precision.
func (c cell) naturalLength(layout string) int {
	switch c.kind {
	case KindText:
		return utf8.RuneCountInString(c.text)
	case KindInteger:
		return len(strconv.FormatInt(c.num, 10))
	case KindReal:
		return realIntegerLength(c.real)
	case KindTimestamp:
		return utf8.RuneCountInString(c.time.Format(layout))
	default:
		return 0
	}
}

// realIntegerLength is zero for NaN and infinities; their width comes from
// the formatted text.
func realIntegerLength(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	a := math.Abs(f)
	n := 1
	if a >= 10 {
		// math.Log10 is inexact near powers of ten.
		n = len(strconv.FormatFloat(math.Trunc(a), 'f', 0, 64))
	}
	if f < 0 {
		n++
	}
	return n
}

package textbuf

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// formatValue returns the textual form of v. nil, nil pointers and nil
// slices are absent.
func formatValue(v any) Text {
	if v == nil {
		return None()
	}
	if rv := reflect.ValueOf(v); (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Slice) && rv.IsNil() {
		return None()
	}

	switch x := v.(type) {
	case string:
		return Some(x)
	case Text:
		return x
	case []rune:
		return Some(string(x))
	case []byte:
		return Some(string(x))
	case *Builder:
		return Some(x.String())
	case bool:
		return Some(strconv.FormatBool(x))
	case int:
		return Some(strconv.Itoa(x))
	case int8:
		return Some(strconv.FormatInt(int64(x), 10))
	case int16:
		return Some(strconv.FormatInt(int64(x), 10))
	case int32:
		return Some(strconv.FormatInt(int64(x), 10))
	case int64:
		return Some(strconv.FormatInt(x, 10))
	case uint:
		return Some(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return Some(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return Some(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return Some(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return Some(strconv.FormatUint(x, 10))
	case float32:
		return Some(formatFloat(float64(x), 32))
	case float64:
		return Some(formatFloat(x, 64))
	case error:
		return Some(x.Error())
	case fmt.Stringer:
		return Some(x.String())
	default:
		return Some(fmt.Sprint(x))
	}
}

// formatFloat renders f the way the buffer's textual conversion does:
// plain decimal notation with at least one fractional digit for magnitudes
// in [1e-3, 1e7), scientific notation ("1.0E7") otherwise.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); f == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

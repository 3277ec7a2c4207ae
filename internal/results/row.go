package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is one raw benchmark run record, decoded from a results document.
// Values keep their JSON types: strings, float64 numbers, bools, and nested
// objects as map[string]any. Rows are read-only input to the profile engine;
// nothing downstream mutates them.
type Row map[string]any

// Field looks up a value by name. Dotted names descend into nested objects,
// so "benchmark.time" reads the "time" field of the "benchmark" object.
// The second return is false when any path segment is absent.
func (r Row) Field(name string) (any, bool) {
	parts := strings.Split(name, ".")
	var cur any = map[string]any(r)
	for _, p := range parts {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Float reads a numeric field. NaN counts as missing, matching the engine's
// treatment of unevaluable metrics.
func (r Row) Float(name string) (float64, bool) {
	v, ok := r.Field(name)
	if !ok {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Bool reads a boolean field; missing or non-boolean values read as false.
func (r Row) Bool(name string) bool {
	v, ok := r.Field(name)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// String reads a field and renders it for display. Missing fields render
// as the empty string.
func (r Row) String(name string) string {
	v, ok := r.Field(name)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// FormatValue renders a decoded JSON value for use in instance and combo
// labels. Integral floats drop the fractional part so a grid size decoded
// as 200.0 renders as "200".
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

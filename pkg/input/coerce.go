package input

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// AsString casts v to a string.
// Int is base-10, Float uses the shortest decimal form, Bool is
// "true"/"false", DateTime is RFC 3339 and Array elements are joined by ",".
func AsString(v Value) string {
	switch x := v.(type) {
	case Text:
		return string(x)
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case Float:
		return strconv.FormatFloat(float64(x), 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(x))
	case DateTime:
		return x.Format(time.RFC3339Nano)
	case Array:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = AsString(item)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// AsInt casts v to an integer.
// Text yields its leading numeric prefix (0 when there is none), Float is
// truncated toward zero and saturates at the int64 bounds, Bool is 1 or 0,
// Array is 0 when empty and 1 otherwise, DateTime is Unix seconds.
func AsInt(v Value) int64 {
	switch x := v.(type) {
	case Text:
		return parseIntPrefix(string(x))
	case Int:
		return int64(x)
	case Float:
		return truncate(float64(x))
	case Bool:
		if x {
			return 1
		}
		return 0
	case DateTime:
		return x.Unix()
	case Array:
		if len(x) == 0 {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// AsFloat casts v to a float using the same rules as AsInt, without
// truncation. DateTime yields Unix seconds with a fractional part.
func AsFloat(v Value) float64 {
	switch x := v.(type) {
	case Text:
		return parseFloatPrefix(string(x))
	case Int:
		return float64(x)
	case Float:
		return float64(x)
	case Bool:
		if x {
			return 1
		}
		return 0
	case DateTime:
		return float64(x.UnixNano()) / float64(time.Second)
	case Array:
		if len(x) == 0 {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// AsBool casts v to a boolean.
// Text accepts anything strconv.ParseBool does; otherwise "" and "0" are
// false and every other string is true. Numbers are true when non-zero,
// arrays when non-empty and instants when non-zero.
func AsBool(v Value) bool {
	switch x := v.(type) {
	case Text:
		s := strings.TrimSpace(string(x))
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s != "" && s != "0"
	case Int:
		return x != 0
	case Float:
		return x != 0
	case Bool:
		return bool(x)
	case DateTime:
		return !x.IsZero()
	case Array:
		return len(x) > 0
	default:
		return false
	}
}

// AsArray returns v unchanged when it is an Array, otherwise a one-element
// Array holding v. Absent values yield an empty Array.
func AsArray(v Value) Array {
	switch x := v.(type) {
	case nil:
		return Array{}
	case Array:
		return x
	default:
		return Array{v}
	}
}

// AsDateTime returns a DateTime as is and parses Text with ParseDateTime.
// Any other kind is a *TypeError.
func AsDateTime(v Value) (time.Time, error) {
	switch x := v.(type) {
	case DateTime:
		return x.Time, nil
	case Text:
		t, err := ParseDateTime(string(x))
		if err != nil {
			return time.Time{}, &TypeError{Expected: KindDateTime.String(), Actual: KindText, Err: err}
		}
		return t, nil
	default:
		return time.Time{}, &TypeError{Expected: "datetime or text", Actual: KindOf(v)}
	}
}

// numericPrefix returns the longest prefix of s that looks like a decimal
// number, and whether it has a fraction or exponent.
func numericPrefix(s string) (string, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	isFloat := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
			isFloat = frac > 0
		}
	}
	if digits == 0 {
		return "", false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
			isFloat = true
		}
	}
	return strings.TrimSuffix(s[:i], "."), isFloat
}

func parseIntPrefix(s string) int64 {
	prefix, isFloat := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	if isFloat {
		return truncate(parseFloatPrefix(prefix))
	}
	// ParseInt returns the saturated value alongside a range error.
	n, _ := strconv.ParseInt(prefix, 10, 64)
	return n
}

func parseFloatPrefix(s string) float64 {
	prefix, _ := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

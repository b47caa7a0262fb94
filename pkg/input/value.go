package input

import (
	"fmt"
	"math"
	"time"
)

// Kind identifies the semantic type of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText
	KindInt
	KindFloat
	KindBool
	KindArray
	KindDateTime
)

// String returns the name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindDateTime:
		return "datetime"
	default:
		return "invalid"
	}
}

// Value is a dynamically typed input value. The set of implementations is
// closed: Text, Int, Float, Bool, Array and DateTime.
// A nil Value means "absent".
type Value interface {
	Kind() Kind
	inputValue()
}

// Text is a string value.
type Text string

// Int is a signed integer value.
type Int int64

// Float is a floating-point value.
type Float float64

// Bool is a boolean value.
type Bool bool

// Array is an ordered container of values.
type Array []Value

// DateTime is an instant with calendar representation.
type DateTime struct {
	time.Time
}

// At wraps t into a DateTime value.
func At(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (Text) Kind() Kind     { return KindText }
func (Int) Kind() Kind      { return KindInt }
func (Float) Kind() Kind    { return KindFloat }
func (Bool) Kind() Kind     { return KindBool }
func (Array) Kind() Kind    { return KindArray }
func (DateTime) Kind() Kind { return KindDateTime }

func (Text) inputValue()     {}
func (Int) inputValue()      {}
func (Float) inputValue()    {}
func (Bool) inputValue()     {}
func (Array) inputValue()    {}
func (DateTime) inputValue() {}

// KindOf returns the kind of v, or KindInvalid for an absent value.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}

// Of lifts a plain Go value into the Value union.
// Supported: Value, string, signed and unsigned integers, float32/64, bool,
// time.Time, []string, []int, []int64, []float64, []bool, []any and []Value.
// A nil input yields a nil Value; nil elements of []any are dropped.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case bool:
		return Bool(x), nil
	case time.Time:
		return At(x), nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}
		return At(*x), nil
	case []Value:
		return Array(x), nil
	case []string:
		return liftSlice(x), nil
	case []int:
		return liftSlice(x), nil
	case []int64:
		return liftSlice(x), nil
	case []float64:
		return liftSlice(x), nil
	case []bool:
		return liftSlice(x), nil
	case []any:
		arr := make(Array, 0, len(x))
		for i, item := range x {
			lifted, err := Of(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			if lifted != nil {
				arr = append(arr, lifted)
			}
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// MustOf is like Of but panics on unsupported types.
func MustOf(v any) Value {
	val, err := Of(v)
	if err != nil {
		panic(err)
	}
	return val
}

func liftSlice[T string | int | int64 | float64 | bool](items []T) Array {
	arr := make(Array, 0, len(items))
	for _, item := range items {
		arr = append(arr, MustOf(item))
	}
	return arr
}

func fromUint(x uint64) (Value, error) {
	if x > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedValue, x)
	}
	return Int(x), nil
}

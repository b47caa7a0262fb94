package input

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Wire is the kind-preserving serialized form of a Value.
// Exactly one payload field is set, selected by K. Floats and instants are
// carried as text so NaN, infinities and nanoseconds survive every encoding.
type Wire struct {
	K string  `json:"k" cbor:"k" bson:"k"`
	S *string `json:"s,omitempty" cbor:"s,omitempty" bson:"s,omitempty"`
	I *int64  `json:"i,omitempty" cbor:"i,omitempty" bson:"i,omitempty"`
	B *bool   `json:"b,omitempty" cbor:"b,omitempty" bson:"b,omitempty"`
	A []Wire  `json:"a,omitempty" cbor:"a,omitempty" bson:"a,omitempty"`
}

// ToWire converts v into its serialized form.
func ToWire(v Value) Wire {
	w := Wire{K: KindOf(v).String()}
	switch x := v.(type) {
	case Text:
		s := string(x)
		w.S = &s
	case Int:
		i := int64(x)
		w.I = &i
	case Float:
		s := strconv.FormatFloat(float64(x), 'g', -1, 64)
		w.S = &s
	case Bool:
		b := bool(x)
		w.B = &b
	case DateTime:
		s := x.Format(time.RFC3339Nano)
		w.S = &s
	case Array:
		w.A = make([]Wire, len(x))
		for i, item := range x {
			w.A[i] = ToWire(item)
		}
	}
	return w
}

// FromWire converts a serialized value back into a Value.
func FromWire(w Wire) (Value, error) {
	switch w.K {
	case "text":
		if w.S == nil {
			return nil, fmt.Errorf("%w: text without payload", ErrUnsupportedValue)
		}
		return Text(*w.S), nil
	case "int":
		if w.I == nil {
			return Int(0), nil
		}
		return Int(*w.I), nil
	case "float":
		if w.S == nil {
			return nil, fmt.Errorf("%w: float without payload", ErrUnsupportedValue)
		}
		f, err := strconv.ParseFloat(*w.S, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		return Float(f), nil
	case "bool":
		return Bool(w.B != nil && *w.B), nil
	case "datetime":
		if w.S == nil {
			return nil, fmt.Errorf("%w: datetime without payload", ErrUnsupportedValue)
		}
		t, err := time.Parse(time.RFC3339Nano, *w.S)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		return At(t), nil
	case "array":
		arr := make(Array, 0, len(w.A))
		for i, item := range w.A {
			v, err := FromWire(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrUnsupportedValue, w.K)
	}
}

// Values is a key/value map that serializes without losing kinds.
type Values map[string]Value

// Clone returns a copy of vs. Arrays are copied, scalars are immutable.
func (vs Values) Clone() Values {
	if vs == nil {
		return nil
	}
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = cloneValue(v)
	}
	return out
}

// Wire converts every value into its serialized form.
func (vs Values) Wire() map[string]Wire {
	out := make(map[string]Wire, len(vs))
	for k, v := range vs {
		if v != nil {
			out[k] = ToWire(v)
		}
	}
	return out
}

// ValuesFromWire is the inverse of Values.Wire.
func ValuesFromWire(in map[string]Wire) (Values, error) {
	out := make(Values, len(in))
	for k, w := range in {
		v, err := FromWire(w)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func (vs Values) MarshalJSON() ([]byte, error) {
	return json.Marshal(vs.Wire())
}

func (vs *Values) UnmarshalJSON(data []byte) error {
	var in map[string]Wire
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	return vs.fromWire(in)
}

func (vs Values) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(vs.Wire())
}

func (vs *Values) UnmarshalCBOR(data []byte) error {
	var in map[string]Wire
	if err := cbor.Unmarshal(data, &in); err != nil {
		return err
	}
	return vs.fromWire(in)
}

func (vs *Values) fromWire(in map[string]Wire) error {
	out, err := ValuesFromWire(in)
	if err != nil {
		return err
	}
	*vs = out
	return nil
}

func cloneValue(v Value) Value {
	arr, ok := v.(Array)
	if !ok {
		return v
	}
	out := make(Array, len(arr))
	for i, item := range arr {
		out[i] = cloneValue(item)
	}
	return out
}

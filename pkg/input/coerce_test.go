package input_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

var epoch = input.At(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

func TestAsString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   input.Value
		want string
	}{
		{input.Text("abc"), "abc"},
		{input.Int(-12), "-12"},
		{input.Float(1.5), "1.5"},
		{input.Float(1e21), "1000000000000000000000"},
		{input.Bool(true), "true"},
		{input.Bool(false), "false"},
		{input.Array{input.Int(1), input.Text("b")}, "1,b"},
		{epoch, "2024-01-15T00:00:00Z"},
		{nil, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, input.AsString(tt.in), "%#v", tt.in)
	}
}

func TestAsInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   input.Value
		want int64
	}{
		{input.Text("42"), 42},
		{input.Text("  -7 apples"), -7},
		{input.Text("3.99"), 3},
		{input.Text("1e3"), 1000},
		{input.Text("abc"), 0},
		{input.Text(""), 0},
		{input.Text("99999999999999999999"), math.MaxInt64},
		{input.Float(-2.7), -2},
		{input.Float(math.NaN()), 0},
		{input.Float(1e30), math.MaxInt64},
		{input.Bool(true), 1},
		{input.Bool(false), 0},
		{input.Array{}, 0},
		{input.Array{input.Int(5)}, 1},
		{epoch, epoch.Unix()},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, input.AsInt(tt.in), "%#v", tt.in)
	}
}

func TestAsFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   input.Value
		want float64
	}{
		{input.Text("3.14xyz"), 3.14},
		{input.Text(".5"), 0.5},
		{input.Text("1."), 1},
		{input.Text("x"), 0},
		{input.Int(4), 4},
		{input.Bool(true), 1},
		{input.Array{input.Int(1)}, 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, input.AsFloat(tt.in), 1e-9, "%#v", tt.in)
	}
}

func TestAsBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   input.Value
		want bool
	}{
		{input.Text("true"), true},
		{input.Text("FALSE"), false},
		{input.Text("0"), false},
		{input.Text(""), false},
		{input.Text(" "), false},
		{input.Text("no"), true},
		{input.Text("1"), true},
		{input.Int(0), false},
		{input.Int(-1), true},
		{input.Float(0), false},
		{input.Array{}, false},
		{input.Array{input.Bool(false)}, true},
		{input.At(time.Time{}), false},
		{epoch, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, input.AsBool(tt.in), "%#v", tt.in)
	}
}

func TestAsArray(t *testing.T) {
	t.Parallel()

	assert.Equal(t, input.Array{}, input.AsArray(nil))
	assert.Equal(t, input.Array{input.Text("x")}, input.AsArray(input.Text("x")))

	arr := input.Array{input.Int(1)}
	assert.Equal(t, arr, input.AsArray(arr))
}

func TestAsDateTime(t *testing.T) {
	t.Parallel()

	got, err := input.AsDateTime(epoch)
	require.NoError(t, err)
	assert.Equal(t, epoch.Time, got)

	got, err = input.AsDateTime(input.Text("2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, epoch.Time, got)

	_, err = input.AsDateTime(input.Text("garbage"))
	assert.ErrorIs(t, err, input.ErrTypeMismatch)

	_, err = input.AsDateTime(input.Float(1))
	assert.ErrorIs(t, err, input.ErrTypeMismatch)
}

// Package host adapts host-side values to ndarray.Value.
package host

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/numcrab/numcrab/internal/ndarray"
)

var numberType = reflect.TypeOf(json.Number(""))

// goValue wraps an arbitrary Go value.
// Slices and arrays are sequences; integer, unsigned and float kinds and
// json.Number are numeric. Everything else is a non-numeric scalar.
type goValue struct {
	v reflect.Value
}

// FromGo wraps a Go value such as []any, [][]float64 or [3]int.
func FromGo(x any) ndarray.Value {
	return goValue{v: deref(reflect.ValueOf(x))}
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func (g goValue) IsSequence() bool {
	if !g.v.IsValid() {
		return false
	}
	k := g.v.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func (g goValue) Len() int {
	if !g.IsSequence() {
		return 0
	}
	return g.v.Len()
}

func (g goValue) Index(i int) ndarray.Value {
	return goValue{v: deref(g.v.Index(i))}
}

func (g goValue) Float64() (float64, bool) {
	if !g.v.IsValid() {
		return 0, false
	}
	if g.v.Type() == numberType {
		f, err := json.Number(g.v.String()).Float64()
		if errors.Is(err, strconv.ErrRange) {
			// Out-of-range literals saturate to ±Inf or 0 and stay numeric.
			return f, true
		}
		return f, err == nil
	}
	switch g.v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(g.v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(g.v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return g.v.Float(), true
	default:
		return 0, false
	}
}

// ParseJSON decodes one JSON document into a Value.
// Numbers keep their textual form until Float64 is called.
func ParseJSON(data []byte) (ndarray.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("failed to parse JSON input: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON input: unexpected data after document")
	}
	return FromGo(x), nil
}

package ndarray

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pack encodes data as little-endian elements of dtype d.
// Integer dtypes truncate toward zero and then narrow to the element width,
// wrapping like a native integer conversion. The result is exactly
// len(data) * d.ItemSize() bytes.
func Pack(data []float64, d Dtype) ([]byte, error) {
	variant, err := d.Variant()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(data)*d.ItemSize())
	for i, v := range data {
		if variant == Float64 {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
			continue
		}

		n, err := truncate(v)
		if err != nil {
			return nil, fmt.Errorf("pack element %d as %s: %w", i, d, err)
		}
		switch variant {
		case Int8:
			buf = append(buf, byte(int8(n)))
		case Int16:
			buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(n)))
		case Int32:
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(n)))
		}
	}
	return buf, nil
}

// truncate converts v to an integer, rounding toward zero.
func truncate(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrUnsupportedInput, v)
	}
	t := math.Trunc(v)
	if t < math.MinInt64 || t >= 1<<63 {
		return 0, fmt.Errorf("%w: %v is out of integer range", ErrUnsupportedInput, v)
	}
	return int64(t), nil
}

// Unpack decodes a little-endian buffer of dtype d.
// The buffer length must be a multiple of the item size.
func Unpack(buf []byte, d Dtype) ([]float64, error) {
	variant, err := d.Variant()
	if err != nil {
		return nil, err
	}
	size := d.ItemSize()
	if len(buf)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %s item size %d",
			ErrMalformedBuffer, len(buf), d, size)
	}

	out := make([]float64, 0, len(buf)/size)
	for off := 0; off < len(buf); off += size {
		elem := buf[off : off+size]
		switch variant {
		case Int8:
			out = append(out, float64(int8(elem[0])))
		case Int16:
			out = append(out, float64(int16(binary.LittleEndian.Uint16(elem))))
		case Int32:
			out = append(out, float64(int32(binary.LittleEndian.Uint32(elem))))
		case Float64:
			out = append(out, math.Float64frombits(binary.LittleEndian.Uint64(elem)))
		}
	}
	return out, nil
}

// Format decodes buf and renders it as "[1, 2, 3]".
// Floats use the shortest decimal that round-trips, without an exponent,
// so 1.0 renders as "1".
func Format(buf []byte, d Dtype) (string, error) {
	values, err := Unpack(buf, d)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatValue(v, d.Kind()))
	}
	b.WriteByte(']')
	return b.String(), nil
}

func formatValue(v float64, k Kind) string {
	if k == Integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

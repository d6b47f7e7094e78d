package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeFeatures encodes a feature vector into a BLOB representation
// suitable for storage in SQLite: a little-endian sequence of IEEE 754
// float64 values without a length prefix. The length is derived from the
// BLOB size on decode.
func EncodeFeatures(vec []float64) []byte {
	if len(vec) == 0 {
		return nil
	}
	b := make([]byte, len(vec)*8)
	for i, v := range vec {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

// DecodeFeatures decodes a BLOB produced by EncodeFeatures.
func DecodeFeatures(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("vector: invalid features blob length %d (not multiple of 8)", len(b))
	}
	n := len(b) / 8
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return vec, nil
}

// ABOUTME: Vector BLOB codec for embedding storage
// ABOUTME: Encodes float64 slices as little-endian byte blobs
package sqlite

import (
	"encoding/binary"
	"math"
)

func vectorToBlob(vector []float64) []byte {
	if len(vector) == 0 {
		return nil
	}
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

func blobToVector(blob []byte) []float64 {
	if len(blob) == 0 {
		return nil
	}
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

// Package features turns a grid into a numeric vector for model input.
package features

import (
	"goban/internal/grid"
)

const (
	valueBits = 64 // float64 values
	indexBits = 32 // int32 indices
)

// Vector is either dense (Dense set) or sparse (Indices/Values set).
// Cells follow grid.Flatten order.
type Vector struct {
	Size    int
	Dense   []float64
	Indices []int32
	Values  []float64
}

func (v Vector) IsSparse() bool {
	return v.Dense == nil
}

// ToDense expands a sparse vector; dense vectors are returned as is.
func (v Vector) ToDense() []float64 {
	if !v.IsSparse() {
		return v.Dense
	}
	out := make([]float64, v.Size)
	for i, idx := range v.Indices {
		out[idx] = v.Values[i]
	}
	return out
}

// SparseThreshold is the non-zero count below which (index, value) pairs
// take fewer bits than a dense array of cells values: N < (L*D - I)/(I + D).
func SparseThreshold(cells int) float64 {
	return float64(cells*valueBits-indexBits) / float64(indexBits+valueBits)
}

func Dense(g grid.Grid) (Vector, error) {
	values, err := grid.FlattenFloats(g)
	if err != nil {
		return Vector{}, err
	}
	return Vector{Size: len(values), Dense: values}, nil
}

func Sparse(g grid.Grid) (Vector, error) {
	values, err := grid.FlattenFloats(g)
	if err != nil {
		return Vector{}, err
	}
	return sparseOf(values), nil
}

func sparseOf(values []float64) Vector {
	v := Vector{Size: len(values), Indices: []int32{}, Values: []float64{}}
	for i, x := range values {
		if x != 0 {
			v.Indices = append(v.Indices, int32(i))
			v.Values = append(v.Values, x)
		}
	}
	return v
}

// Encode picks the cheaper of the dense and sparse encodings.
func Encode(g grid.Grid) (Vector, error) {
	values, err := grid.FlattenFloats(g)
	if err != nil {
		return Vector{}, err
	}
	nonZero := 0
	for _, x := range values {
		if x != 0 {
			nonZero++
		}
	}
	if float64(nonZero) < SparseThreshold(len(values)) {
		return sparseOf(values), nil
	}
	return Vector{Size: len(values), Dense: values}, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Tensor: dense 3-D storage for pairwise distance results.
//
// Layout is row-major over (i, j, k) with k fastest, so the fiber [i,j,:]
// is a contiguous slice. Writers that own disjoint fibers may fill the
// tensor concurrently without locks.
package matrix

import (
	"fmt"
	"math"
)

// Tensor is a d0×d1×d2 array of float64 values.
type Tensor struct {
	d0, d1, d2 int
	data       []float64
}

// tensorErrorf wraps err with the method name and the offending coordinates.
func tensorErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Tensor.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// NewTensor allocates a zero tensor of shape d0×d1×d2.
//
// Errors: ErrInvalidDimensions if any dimension is <= 0.
// Complexity: O(d0*d1*d2).
func NewTensor(d0, d1, d2 int) (*Tensor, error) {
	if d0 <= 0 || d1 <= 0 || d2 <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Tensor{d0: d0, d1: d1, d2: d2, data: make([]float64, d0*d1*d2)}, nil
}

// Shape returns the three dimensions.
func (t *Tensor) Shape() (d0, d1, d2 int) { return t.d0, t.d1, t.d2 }

func (t *Tensor) offset(i, j, k int) (int, error) {
	if i < 0 || i >= t.d0 || j < 0 || j >= t.d1 || k < 0 || k >= t.d2 {
		return 0, ErrOutOfRange
	}

	return (i*t.d1+j)*t.d2 + k, nil
}

// At returns t[i,j,k].
func (t *Tensor) At(i, j, k int) (float64, error) {
	off, err := t.offset(i, j, k)
	if err != nil {
		return 0, tensorErrorf("At", i, j, k, err)
	}

	return t.data[off], nil
}

// Set writes t[i,j,k] = v. NaN is rejected.
func (t *Tensor) Set(i, j, k int, v float64) error {
	off, err := t.offset(i, j, k)
	if err != nil {
		return tensorErrorf("Set", i, j, k, err)
	}
	if math.IsNaN(v) {
		return tensorErrorf("Set", i, j, k, ErrNaN)
	}
	t.data[off] = v

	return nil
}

// Fiber returns the [i,j,:] fiber as a slice sharing the tensor storage.
// Mutations through the slice are visible in t.
func (t *Tensor) Fiber(i, j int) ([]float64, error) {
	off, err := t.offset(i, j, 0)
	if err != nil {
		return nil, tensorErrorf("Fiber", i, j, 0, err)
	}

	return t.data[off : off+t.d2 : off+t.d2], nil
}

// Plane copies the [:,:,k] plane into a fresh d0×d1 *Dense.
//
// Complexity: O(d0*d1).
func (t *Tensor) Plane(k int) (*Dense, error) {
	if k < 0 || k >= t.d2 {
		return nil, tensorErrorf("Plane", 0, 0, k, ErrOutOfRange)
	}
	out, err := NewDense(t.d0, t.d1)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < t.d0; i++ {
		for j = 0; j < t.d1; j++ {
			out.data[i*t.d1+j] = t.data[(i*t.d1+j)*t.d2+k]
		}
	}

	return out, nil
}

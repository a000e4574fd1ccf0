// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/pgm/tensor"
	"github.com/stretchr/testify/require"
)

// MustFromSlice builds a tensor over data or fails the test.
func MustFromSlice(t *testing.T, data []float64, shape ...int) *tensor.Dense {
	t.Helper()
	d, err := tensor.NewFromSlice(data, shape)
	require.NoError(t, err)

	return d
}

// MustAt reads idx or fails the test.
func MustAt(t *testing.T, d *tensor.Dense, idx ...int) float64 {
	t.Helper()
	v, err := d.At(idx...)
	require.NoError(t, err)

	return v
}

// seq returns [1, 2, ..., n] as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}
